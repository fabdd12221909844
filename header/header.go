// Copyright Amazon.com Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may
// not use this file except in compliance with the License. A copy of the
// License is located at
//
//	http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
// express or implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package header assembles the header map of a signed request in the order
// signing requires: payload description first, Authorization last.
package header

import (
	"net/http"

	"golang.org/x/net/http/httpguts"

	"github.com/sabi/sabi-s3/apierrors"
	"github.com/sabi/sabi-s3/authv4/canonical"
	"github.com/sabi/sabi-s3/authv4/chrono"
	"github.com/sabi/sabi-s3/authv4/request"
)

const (
	ContentTypeName      = "Content-Type"
	AmzContentSha256Name = "X-Amz-Content-Sha256"
	AmzDateName          = "X-Amz-Date"
	SecurityTokenName    = "X-Amz-Security-Token"
)

// Fragment is a single typed header.
type Fragment interface {
	Name() string
	Value() string
}

type ContentType string

func (ContentType) Name() string    { return ContentTypeName }
func (c ContentType) Value() string { return string(c) }

type AmzContentSha256 canonical.HashedPayload

func (AmzContentSha256) Name() string    { return AmzContentSha256Name }
func (a AmzContentSha256) Value() string { return string(a) }

type AmzDate chrono.AmzTimestamp

func (AmzDate) Name() string    { return AmzDateName }
func (a AmzDate) Value() string { return string(a) }

type SecurityToken string

func (SecurityToken) Name() string    { return SecurityTokenName }
func (s SecurityToken) Value() string { return string(s) }

// Authorizer produces the Authorization of a request from its headers.
type Authorizer interface {
	Create(header http.Header) (request.Authorization, error)
}

// Headers is an insertion-ordered header map. Once authorized it refuses
// further fragments, since they would not be covered by the signature.
type Headers struct {
	header     http.Header
	order      []string
	authorized bool
}

func New() *Headers {
	return &Headers{header: http.Header{}}
}

// Push validates f and sets it, replacing any previous value.
func (h *Headers) Push(f Fragment) error {
	return h.set(f.Name(), f.Value())
}

// AuthorizeWith signs the headers pushed so far and appends Authorization.
func (h *Headers) AuthorizeWith(authorizer Authorizer) error {
	if h.authorized {
		return &apierrors.InvalidHeaderValueError{Name: request.AuthorizationHeader, Value: "already set"}
	}
	authz, err := authorizer.Create(h.Header())
	if err != nil {
		return err
	}
	value, err := authz.ToHeaderValue()
	if err != nil {
		return err
	}
	if err := h.set(request.AuthorizationHeader, value); err != nil {
		return err
	}
	h.authorized = true
	return nil
}

func (h *Headers) set(name, value string) error {
	if h.authorized {
		return &apierrors.InvalidHeaderValueError{Name: name, Value: value}
	}
	if !httpguts.ValidHeaderFieldName(name) || !httpguts.ValidHeaderFieldValue(value) {
		return &apierrors.InvalidHeaderValueError{Name: name, Value: value}
	}
	key := http.CanonicalHeaderKey(name)
	if _, ok := h.header[key]; !ok {
		h.order = append(h.order, key)
	}
	h.header.Set(key, value)
	return nil
}

// Names returns the header names in insertion order.
func (h *Headers) Names() []string {
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

// Header returns a copy of the header map.
func (h *Headers) Header() http.Header {
	return h.header.Clone()
}

func (h *Headers) Get(name string) string {
	return h.header.Get(name)
}

func (h *Headers) Authorized() bool {
	return h.authorized
}
