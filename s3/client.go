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
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/sabi/sabi-s3/apierrors"
	"github.com/sabi/sabi-s3/auth/credentials"
	"github.com/sabi/sabi-s3/index"
	"github.com/sabi/sabi-s3/logger"
	"github.com/sabi/sabi-s3/logger/field"
	"github.com/sabi/sabi-s3/utils/ttime"
)

// Client runs operations against one bucket.
type Client struct {
	Credentials   credentials.Credentials
	Bucket        Bucket
	DefaultRegion index.RegionCode
	Dispatcher    Dispatcher
}

// PutObject uploads a file and returns the ETag of the stored object.
func (c *Client) PutObject(ctx context.Context, req *FileRequest) (ETag, error) {
	if c.Dispatcher == nil {
		return "", apierrors.NewRequiredValueMissingError("dispatcher")
	}
	fields := logger.Fields{
		field.Operation:   string(PutObject),
		field.OperationID: uuid.New().String(),
		field.Bucket:      c.Bucket.Name,
		field.ObjectKey:   req.ObjectKey,
		field.Path:        req.FilePath,
	}
	start := ttime.Now()

	internal, err := NewRequestProvider(http.MethodPut, c.Credentials, c.Bucket, req, c.DefaultRegion).Provide()
	if err != nil {
		c.logFailure(fields, err)
		return "", err
	}
	defer internal.Close()

	resp, err := c.Dispatcher.Dispatch(ctx, internal)
	if err != nil {
		c.logFailure(fields, err)
		return "", errors.Wrapf(err, "%s: s3://%s/%s", PutObject, c.Bucket.Name, req.ObjectKey)
	}
	etag, err := ETagFromHeader(resp.Header)
	if err != nil {
		c.logFailure(fields, err)
		return "", errors.Wrapf(err, "%s: response without entity tag", PutObject)
	}

	fields[field.StatusCode] = resp.StatusCode
	fields[field.ETag] = etag.Unquoted()
	fields[field.Elapsed] = ttime.Since(start).Round(time.Millisecond).String()
	logger.Info("Object uploaded", fields)
	return etag, nil
}

func (c *Client) logFailure(fields logger.Fields, err error) {
	failed := logger.Fields{
		field.Error:     err,
		field.ErrorName: apierrors.NameOf(err),
	}
	logger.Error("Operation failed", fields, failed)
}
