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

// Package request turns the parts of an outgoing request into its
// Authorization header value.
package request

import (
	"net/url"
	"time"

	"github.com/sabi/sabi-s3/authv4/canonical"
	"github.com/sabi/sabi-s3/index"
)

// RequestParts is everything about a request that the signature covers,
// apart from its headers.
type RequestParts struct {
	URL         *url.URL
	Method      string
	Host        string
	Region      index.RegionCode
	Service     index.ServiceCode
	Payload     canonical.HashedPayload
	RequestedAt time.Time
}

type Option func(*RequestParts)

// WithService overrides the default s3 service code.
func WithService(service index.ServiceCode) Option {
	return func(p *RequestParts) {
		p.Service = service
	}
}

// WithHost signs host instead of the host of the URL.
func WithHost(host string) Option {
	return func(p *RequestParts) {
		p.Host = host
	}
}

func NewRequestParts(u *url.URL, method string, region index.RegionCode, payload canonical.HashedPayload, requestedAt time.Time, opts ...Option) RequestParts {
	parts := RequestParts{
		URL:         u,
		Method:      method,
		Region:      region,
		Service:     index.S3,
		Payload:     payload,
		RequestedAt: requestedAt,
	}
	for _, opt := range opts {
		opt(&parts)
	}
	return parts
}

// requiredHeaders returns the headers that must be present before signing.
// S3 refuses requests whose payload hash is not signed.
func (p RequestParts) requiredHeaders() []string {
	if p.Service == index.S3 {
		return []string{canonical.AmzDateHeader, canonical.AmzContentSHAHeader}
	}
	return canonical.DefaultRequiredHeaders
}
