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

package request

import (
	"net/http"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/sabi/sabi-s3/apierrors"
	"github.com/sabi/sabi-s3/auth/credentials"
	"github.com/sabi/sabi-s3/authv4/canonical"
	"github.com/sabi/sabi-s3/authv4/chrono"
	"github.com/sabi/sabi-s3/authv4/sign"
	"github.com/sabi/sabi-s3/logger"
	"github.com/sabi/sabi-s3/logger/field"
)

const AuthorizationHeader = "Authorization"

// AuthorizationFactory signs exactly one request. The timestamp and scope
// are fixed at construction so a factory must not be reused for another
// request.
type AuthorizationFactory struct {
	credentials credentials.Credentials
	parts       RequestParts
	timestamp   chrono.AmzTimestamp
	scope       sign.CredentialScope
}

func NewAuthorizationFactory(creds credentials.Credentials, parts RequestParts) *AuthorizationFactory {
	timestamp := chrono.NewAmzTimestamp(parts.RequestedAt)
	return &AuthorizationFactory{
		credentials: creds,
		parts:       parts,
		timestamp:   timestamp,
		scope:       sign.NewCredentialScope(timestamp.DateStamp(), parts.Region, parts.Service),
	}
}

// AmzDate is the value the X-Amz-Date header must carry.
func (f *AuthorizationFactory) AmzDate() chrono.AmzTimestamp {
	return f.timestamp
}

func (f *AuthorizationFactory) Scope() sign.CredentialScope {
	return f.scope
}

// Create signs the request described by the factory's parts and header. The
// header must already carry every header to be signed, Authorization aside.
func (f *AuthorizationFactory) Create(header http.Header) (Authorization, error) {
	if f.credentials.IsZero() {
		return Authorization{}, apierrors.NewRequiredValueMissingError("credentials")
	}
	if f.parts.Region.IsZero() {
		return Authorization{}, &apierrors.RegionNotSpecifiedError{}
	}
	if f.parts.Service.IsZero() {
		return Authorization{}, apierrors.NewRequiredValueMissingError("service")
	}
	for name, values := range header {
		if !strings.EqualFold(name, canonical.AmzDateHeader) {
			continue
		}
		for _, date := range values {
			at, err := chrono.ParseAmzTimestamp(date)
			if err != nil || chrono.NewAmzTimestamp(at) != f.timestamp {
				return Authorization{}, &apierrors.InvalidHeaderValueError{Name: name, Value: date}
			}
		}
	}

	cr, err := canonical.Builder{
		Method:   f.parts.Method,
		URL:      f.parts.URL,
		Header:   header,
		Host:     f.parts.Host,
		Payload:  f.parts.Payload,
		Required: f.parts.requiredHeaders(),
	}.Build()
	if err != nil {
		return Authorization{}, err
	}

	signature := sign.DeriveSigningKey(string(f.credentials.SecretKey()), f.scope).
		Sign(sign.NewStringToSign(f.timestamp, f.scope, cr))

	logger.Debug("Signed request", logger.Fields{
		field.Method:               f.parts.Method,
		field.CredentialScope:      f.scope.String(),
		field.SignedHeaders:        cr.SignedHeadersString(),
		field.CanonicalRequestHash: cr.Hash(),
	})

	return Authorization{
		accessKeyID:   f.credentials.AccessKeyID(),
		scope:         f.scope,
		signedHeaders: cr.SignedHeaders(),
		signature:     signature,
	}, nil
}

// Authorization is the signed result of an AuthorizationFactory.
type Authorization struct {
	accessKeyID   string
	scope         sign.CredentialScope
	signedHeaders []string
	signature     sign.Signature
}

func (a Authorization) Signature() sign.Signature {
	return a.signature
}

func (a Authorization) SignedHeaders() []string {
	out := make([]string, len(a.signedHeaders))
	copy(out, a.signedHeaders)
	return out
}

func (a Authorization) String() string {
	return sign.Algorithm +
		" Credential=" + a.accessKeyID + "/" + a.scope.String() +
		", SignedHeaders=" + strings.Join(a.signedHeaders, ";") +
		", Signature=" + a.signature.String()
}

// ToHeaderValue renders the Authorization header value and checks that it is
// a legal header field value.
func (a Authorization) ToHeaderValue() (string, error) {
	if a.signature == "" {
		return "", apierrors.NewRequiredValueMissingError("signature")
	}
	value := a.String()
	if !httpguts.ValidHeaderFieldValue(value) {
		return "", &apierrors.InvalidHeaderValueError{Name: AuthorizationHeader, Value: value}
	}
	return value, nil
}
