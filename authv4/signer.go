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

// Package authv4 signs arbitrary HTTP requests with AWS Signature Version 4.
package authv4

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/sabi/sabi-s3/apierrors"
	"github.com/sabi/sabi-s3/auth/credentials"
	"github.com/sabi/sabi-s3/authv4/canonical"
	"github.com/sabi/sabi-s3/authv4/chrono"
	"github.com/sabi/sabi-s3/authv4/request"
	"github.com/sabi/sabi-s3/authv4/signable"
	"github.com/sabi/sabi-s3/header"
	"github.com/sabi/sabi-s3/index"
)

func newDefaultSigner(region index.RegionCode, service index.ServiceCode, provider credentials.Provider) *DefaultSigner {
	return &DefaultSigner{
		Provider: provider,
		Region:   region,
		Service:  service,
	}
}

func NewSigner(region index.RegionCode, service index.ServiceCode, provider credentials.Provider) Signer {
	return newDefaultSigner(region, service, provider)
}

func NewHttpSigner(region index.RegionCode, service index.ServiceCode, provider credentials.Provider) HttpSigner {
	return newDefaultSigner(region, service, provider)
}

func NewRoundtripSigner(signer HttpSigner, transport http.RoundTripper) RoundTripperSigner {
	return &DefaultRoundTripSigner{
		HttpSigner: signer,
		Transport:  transport,
	}
}

// Sign normalizes the escaping of the request path, then sets X-Amz-Date,
// the payload hash header when the service needs it, the session token if
// any, and finally Authorization.
func (signer *DefaultSigner) Sign(s signable.Signable) error {
	if signer.Provider == nil {
		return apierrors.NewRequiredValueMissingError("credential provider")
	}
	creds, err := signer.Provider.Credentials()
	if err != nil {
		return errors.Wrap(err, "authv4: unable to resolve credentials")
	}
	payload, err := s.PayloadHash()
	if err != nil {
		return err
	}

	// The canonical URI is built from the decoded path, so the path on the
	// wire is re-encoded the same way.
	if u := s.ReqURL(); u != nil && u.Opaque == "" {
		u.RawPath = canonical.EscapePath(u.Path)
	}

	parts := request.NewRequestParts(s.ReqURL(), s.ReqMethod(), signer.Region, payload, chrono.Now(),
		request.WithService(signer.Service), request.WithHost(s.GetHost()))
	factory := request.NewAuthorizationFactory(creds, parts)

	s.SetHeader(header.AmzDateName, factory.AmzDate().String())
	if signer.Service == index.S3 || s.Headers().Get(canonical.AmzContentSHAHeader) != "" {
		s.SetHeader(header.AmzContentSha256Name, payload.String())
	}
	if token := creds.SessionToken(); token != "" {
		s.SetHeader(header.SecurityTokenName, token)
	}

	authz, err := factory.Create(s.Headers())
	if err != nil {
		return err
	}
	value, err := authz.ToHeaderValue()
	if err != nil {
		return err
	}
	s.SetHeader(request.AuthorizationHeader, value)
	return nil
}

func (signer *DefaultSigner) SignHttpRequest(req *http.Request) error {
	if req.Header == nil {
		req.Header = http.Header{}
	}
	return signer.Sign(signable.HttpRequest{Request: req})
}

// RoundTrip signs a clone of req so the caller's request is left untouched.
func (signer *DefaultRoundTripSigner) RoundTrip(req *http.Request) (*http.Response, error) {
	if signer.Transport == nil {
		return nil, errors.New("authv4: invalid transport provided")
	}

	reqCopy := req.Clone(req.Context())
	if err := signer.SignHttpRequest(reqCopy); err != nil {
		return nil, err
	}
	return signer.Transport.RoundTrip(reqCopy)
}
