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
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/aws/smithy-go"
	smithyxml "github.com/aws/smithy-go/encoding/xml"
	"github.com/pkg/errors"

	"github.com/sabi/sabi-s3/apierrors"
	"github.com/sabi/sabi-s3/logger"
	"github.com/sabi/sabi-s3/logger/field"
)

//go:generate mockgen -destination=mocks/dispatcher_mocks.go -copyright_file=../scripts/copyright_file github.com/sabi/sabi-s3/s3 Dispatcher

// maxErrorBody bounds how much of an error response is decoded.
const maxErrorBody = 64 * 1024

// Response is what the caller of a dispatch needs from the reply.
type Response struct {
	StatusCode int
	Header     http.Header
}

// Dispatcher delivers an InternalRequest.
type Dispatcher interface {
	Dispatch(ctx context.Context, req *InternalRequest) (*Response, error)
}

type httpDispatcher struct {
	client *http.Client
}

func NewHTTPDispatcher(client *http.Client) Dispatcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpDispatcher{client: client}
}

// Dispatch sends req. Non-2xx replies become UpstreamFailure carrying the
// code and message of the S3 XML error body when there is one.
func (d *httpDispatcher) Dispatch(ctx context.Context, req *InternalRequest) (*Response, error) {
	httpReq, err := req.HTTPRequest(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := d.client.Do(httpReq)
	if err != nil {
		return nil, apierrors.NewIoError(errors.Wrapf(err, "s3: %s %s", req.Method(), req.URL().Redacted()))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, upstreamFailure(resp)
	}
	// A 2xx status means the object is stored, whatever follows it.
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		logger.Warn("Unable to drain response body", logger.Fields{
			field.Method:     req.Method(),
			field.StatusCode: resp.StatusCode,
			field.Error:      err,
		})
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header.Clone()}, nil
}

func upstreamFailure(resp *http.Response) error {
	failure := &apierrors.UpstreamFailureError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		failure.Err = apierrors.NewIoError(err)
		return failure
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return failure
	}
	components, err := smithyxml.GetErrorResponseComponents(bytes.NewReader(body), true)
	if err != nil {
		failure.Err = apierrors.NewEncodingError(errors.Wrap(err, "s3: undecodable error response"))
		return failure
	}
	if components.Code != "" {
		failure.Code = components.Code
	}
	if components.Message != "" {
		failure.Message = components.Message
	}
	failure.Err = &smithy.GenericAPIError{Code: components.Code, Message: components.Message}
	return failure
}
