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

package s3

import (
	"io"

	"github.com/pkg/errors"

	"github.com/sabi/sabi-s3/apierrors"
	"github.com/sabi/sabi-s3/auth/credentials"
	"github.com/sabi/sabi-s3/authv4/request"
	"github.com/sabi/sabi-s3/header"
	"github.com/sabi/sabi-s3/index"
	"github.com/sabi/sabi-s3/logger"
	"github.com/sabi/sabi-s3/logger/field"
)

// RequestProvider turns one operation into a signed InternalRequest.
type RequestProvider struct {
	method        string
	credentials   credentials.Credentials
	bucket        Bucket
	loader        ResourceLoader
	defaultRegion index.RegionCode
}

func NewRequestProvider(method string, creds credentials.Credentials, bucket Bucket, loader ResourceLoader, defaultRegion index.RegionCode) *RequestProvider {
	return &RequestProvider{
		method:        method,
		credentials:   creds,
		bucket:        bucket,
		loader:        loader,
		defaultRegion: defaultRegion,
	}
}

// Provide loads the resource, picks the region, resolves the endpoint and
// signs. Headers are added in the order Content-Type, X-Amz-Content-Sha256,
// X-Amz-Date and Authorization last.
func (p *RequestProvider) Provide() (*InternalRequest, error) {
	resource, err := p.loader.Load()
	if err != nil {
		return nil, err
	}
	internal, err := p.sign(resource)
	if err != nil {
		if closer, ok := resource.Body.(io.Closer); ok {
			closer.Close()
		}
		return nil, err
	}
	return internal, nil
}

func (p *RequestProvider) sign(resource *RequestResource) (*InternalRequest, error) {
	region := p.region(resource)
	if region.IsZero() {
		return nil, &apierrors.RegionNotSpecifiedError{}
	}
	u, err := p.bucket.ObjectURL(region, p.loader.GetObjectKey())
	if err != nil {
		return nil, err
	}

	parts := request.NewRequestParts(u, p.method, region, resource.Hash, resource.RequestedAt)
	factory := request.NewAuthorizationFactory(p.credentials, parts)

	headers := header.New()
	fragments := []header.Fragment{}
	if resource.ContentType != "" {
		fragments = append(fragments, header.ContentType(resource.ContentType))
	}
	fragments = append(fragments,
		header.AmzContentSha256(resource.Hash),
		header.AmzDate(factory.AmzDate()))
	if token := p.credentials.SessionToken(); token != "" {
		fragments = append(fragments, header.SecurityToken(token))
	}
	for _, f := range fragments {
		if err := headers.Push(f); err != nil {
			return nil, errors.Wrapf(err, "%s: unable to set %s", p.loader.Kind(), f.Name())
		}
	}
	if err := headers.AuthorizeWith(factory); err != nil {
		return nil, errors.Wrapf(err, "%s: unable to authorize request", p.loader.Kind())
	}

	logger.Debug("Provided signed request", logger.Fields{
		field.Operation:       string(p.loader.Kind()),
		field.Method:          p.method,
		field.Endpoint:        u.Host,
		field.Region:          region.String(),
		field.CredentialScope: factory.Scope().String(),
		field.ContentLength:   resource.ContentLength,
		field.Headers:         headers.Names(),
	})

	return &InternalRequest{
		method:        p.method,
		url:           u,
		header:        headers.Header(),
		body:          resource.Body,
		contentLength: resource.ContentLength,
	}, nil
}

func (p *RequestProvider) region(resource *RequestResource) index.RegionCode {
	if !resource.Region.IsZero() {
		return resource.Region
	}
	return p.defaultRegion
}
