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
	"time"

	"github.com/sabi/sabi-s3/authv4/canonical"
	"github.com/sabi/sabi-s3/index"
)

// Kind names an operation in errors and logs.
type Kind string

const PutObject Kind = "PutObject"

// RequestResource is what an operation contributes to its request.
type RequestResource struct {
	Body          io.ReadSeeker
	ContentLength int64
	Hash          canonical.HashedPayload
	ContentType   string
	// Region overrides the default region of the client when set.
	Region      index.RegionCode
	RequestedAt time.Time
}

// ResourceLoader loads the resource of a single operation.
type ResourceLoader interface {
	Kind() Kind
	GetObjectKey() string
	Load() (*RequestResource, error)
}
