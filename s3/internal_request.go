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
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// InternalRequest is a signed request ready to be dispatched. It is not
// modified after the provider returns it.
type InternalRequest struct {
	method        string
	url           *url.URL
	header        http.Header
	body          io.ReadSeeker
	contentLength int64
}

func (r *InternalRequest) Method() string {
	return r.method
}

func (r *InternalRequest) URL() *url.URL {
	u := *r.url
	return &u
}

func (r *InternalRequest) Header() http.Header {
	return r.header.Clone()
}

func (r *InternalRequest) Body() io.ReadSeeker {
	return r.body
}

func (r *InternalRequest) ContentLength() int64 {
	return r.contentLength
}

// HTTPRequest builds the *http.Request that carries r. The body is rewound
// on every GetBody so redirects resend the same bytes.
func (r *InternalRequest) HTTPRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, r.method, r.url.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "s3: unable to build http request")
	}
	req.Header = r.header.Clone()
	if r.body == nil || r.contentLength == 0 {
		req.Body = http.NoBody
		req.ContentLength = 0
		return req, nil
	}
	req.ContentLength = r.contentLength
	req.Body = io.NopCloser(r.body)
	req.GetBody = func() (io.ReadCloser, error) {
		if _, err := r.body.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		return io.NopCloser(r.body), nil
	}
	return req, nil
}

// Close releases the body if it holds a resource.
func (r *InternalRequest) Close() error {
	if closer, ok := r.body.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
