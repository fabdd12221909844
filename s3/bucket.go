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

// Package s3 turns object storage operations into signed requests and
// dispatches them.
package s3

import (
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws/endpoints"
	"github.com/pkg/errors"

	"github.com/sabi/sabi-s3/apierrors"
	"github.com/sabi/sabi-s3/authv4/canonical"
	"github.com/sabi/sabi-s3/index"
)

// Bucket names the target bucket and how to reach it. With an Endpoint
// override or ForcePathStyle the bucket goes in the path; otherwise it is
// the first label of the regional host.
type Bucket struct {
	Name           string
	Endpoint       string
	ForcePathStyle bool
}

func NewBucket(name string) Bucket {
	return Bucket{Name: name}
}

// ObjectURL resolves the URL of key in region.
func (b Bucket) ObjectURL(region index.RegionCode, key string) (*url.URL, error) {
	if strings.TrimSpace(b.Name) == "" {
		return nil, apierrors.NewRequiredValueMissingError("bucket")
	}
	if region.IsZero() {
		return nil, &apierrors.RegionNotSpecifiedError{}
	}
	// A PUT on the bucket root is CreateBucket, not an object upload.
	if strings.TrimSpace(strings.TrimPrefix(key, "/")) == "" {
		return nil, apierrors.NewRequiredValueMissingError("object key")
	}
	base, err := b.baseURL(region)
	if err != nil {
		return nil, err
	}

	path := "/" + strings.TrimPrefix(key, "/")
	if b.pathStyle() {
		path = "/" + b.Name + path
	} else {
		base.Host = b.Name + "." + base.Host
	}
	base.Path = path
	base.RawPath = canonical.EscapePath(path)
	return base, nil
}

func (b Bucket) pathStyle() bool {
	// Dotted names do not match the wildcard certificate of the regional host.
	return b.ForcePathStyle || b.Endpoint != "" || strings.Contains(b.Name, ".")
}

func (b Bucket) baseURL(region index.RegionCode) (*url.URL, error) {
	raw := b.Endpoint
	if raw == "" {
		resolved, err := endpoints.DefaultResolver().EndpointFor(endpoints.S3ServiceID, region.String())
		if err != nil {
			return nil, errors.Wrapf(err, "s3: unable to resolve endpoint for region %s", region)
		}
		raw = resolved.URL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "s3: invalid endpoint %q", raw)
	}
	if u.Host == "" {
		return nil, errors.Errorf("s3: endpoint %q has no host", raw)
	}
	return &url.URL{Scheme: u.Scheme, Host: u.Host}, nil
}
