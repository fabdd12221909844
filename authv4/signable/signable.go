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

// Package signable adapts requests of various shapes to the signer.
package signable

import (
	"net/http"
	"net/url"

	"github.com/sabi/sabi-s3/authv4/canonical"
)

type Signable interface {
	GetHost() string
	Headers() http.Header
	SetHeader(string, string)
	ReqURL() *url.URL
	ReqMethod() string
	// PayloadHash hashes the body and leaves it ready to be sent.
	PayloadHash() (canonical.HashedPayload, error)
}
