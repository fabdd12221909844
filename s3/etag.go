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
	"net/http"
	"strings"

	"github.com/sabi/sabi-s3/apierrors"
)

const etagHeader = "ETag"

// ETag identifies the stored version of an object. It is kept exactly as
// returned, quotes included.
type ETag string

func ETagFromHeader(h http.Header) (ETag, error) {
	value := h.Get(etagHeader)
	if value == "" {
		return "", apierrors.NewRequiredValueMissingError(etagHeader)
	}
	return ETag(value), nil
}

func (e ETag) String() string {
	return string(e)
}

func (e ETag) Unquoted() string {
	return strings.Trim(string(e), `"`)
}
