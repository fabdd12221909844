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

// Package canonical builds the canonical form of a request that is hashed
// into the string to sign.
package canonical

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/sabi/sabi-s3/apierrors"
)

const (
	HostHeader          = "host"
	AmzDateHeader       = "x-amz-date"
	AmzContentSHAHeader = "x-amz-content-sha256"
)

// ignoredHeaders are never signed. Proxies and transports are free to
// rewrite them.
var ignoredHeaders = map[string]struct{}{
	"authorization":     {},
	"user-agent":        {},
	"x-amzn-trace-id":   {},
	"expect":            {},
	"transfer-encoding": {},
	"content-length":    {},
}

// DefaultRequiredHeaders must be present in every signed request.
var DefaultRequiredHeaders = []string{AmzDateHeader}

// Builder holds the inputs of a canonical request. Build validates them.
type Builder struct {
	Method string
	URL    *url.URL
	Header http.Header
	// Host overrides the host taken from URL.
	Host    string
	Payload HashedPayload
	// Required lists lower-case header names whose absence fails Build.
	// DefaultRequiredHeaders is used when nil.
	Required []string
}

// CanonicalRequest is the validated, immutable canonical form of a request.
type CanonicalRequest struct {
	method        string
	uri           string
	query         string
	headers       string
	signedHeaders []string
	payload       HashedPayload
}

// Build renders the canonical request. A missing method, URL, payload hash
// or required header is an error; nothing is silently omitted.
func (b Builder) Build() (*CanonicalRequest, error) {
	if b.Method == "" {
		return nil, apierrors.NewRequiredValueMissingError("method")
	}
	if b.URL == nil {
		return nil, apierrors.NewRequiredValueMissingError("url")
	}
	if b.Payload == "" {
		return nil, apierrors.NewRequiredValueMissingError("payload hash")
	}
	host := b.Host
	if host == "" {
		host = stripDefaultPort(b.URL)
	}
	if host == "" {
		return nil, apierrors.NewRequiredValueMissingError(HostHeader)
	}

	values := map[string][]string{HostHeader: {host}}
	keys := make([]string, 0, len(b.Header))
	for name := range b.Header {
		keys = append(keys, name)
	}
	// Keys differing only in case merge in a stable order.
	sort.Strings(keys)
	for _, name := range keys {
		vs := b.Header[name]
		lower := strings.ToLower(strings.TrimSpace(name))
		if _, ignored := ignoredHeaders[lower]; ignored || lower == HostHeader {
			continue
		}
		values[lower] = append(values[lower], vs...)
	}

	required := b.Required
	if required == nil {
		required = DefaultRequiredHeaders
	}
	for _, name := range required {
		if vs, ok := values[name]; !ok || len(vs) == 0 {
			return nil, apierrors.NewRequiredValueMissingError(name)
		}
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var headers strings.Builder
	for _, name := range names {
		vs := values[name]
		trimmed := make([]string, len(vs))
		for i, v := range vs {
			trimmed[i] = HeaderValue(v)
		}
		headers.WriteString(name)
		headers.WriteByte(':')
		headers.WriteString(strings.Join(trimmed, ","))
		headers.WriteByte('\n')
	}

	return &CanonicalRequest{
		method:        strings.ToUpper(b.Method),
		uri:           URI(b.URL),
		query:         Query(b.URL),
		headers:       headers.String(),
		signedHeaders: names,
		payload:       b.Payload,
	}, nil
}

func stripDefaultPort(u *url.URL) string {
	port := u.Port()
	if (port == "80" && u.Scheme == "http") || (port == "443" && u.Scheme == "https") {
		return u.Hostname()
	}
	return u.Host
}

func (c *CanonicalRequest) String() string {
	return strings.Join([]string{
		c.method,
		c.uri,
		c.query,
		c.headers,
		c.SignedHeadersString(),
		c.payload.String(),
	}, "\n")
}

// SignedHeaders returns the sorted, lower-case names covered by the
// signature, in the order they appear in the canonical headers.
func (c *CanonicalRequest) SignedHeaders() []string {
	out := make([]string, len(c.signedHeaders))
	copy(out, c.signedHeaders)
	return out
}

func (c *CanonicalRequest) SignedHeadersString() string {
	return strings.Join(c.signedHeaders, ";")
}

func (c *CanonicalRequest) Payload() HashedPayload {
	return c.payload
}

// Hash returns the hex encoded SHA-256 of the canonical request.
func (c *CanonicalRequest) Hash() string {
	sum := sha256.Sum256([]byte(c.String()))
	return hex.EncodeToString(sum[:])
}
