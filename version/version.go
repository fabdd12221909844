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

// Package version reports the build of the s3api tooling.
package version

import "fmt"

// Version and GitShortHash are overridden at link time with -ldflags -X.
var (
	Version      = "0.1.0"
	GitShortHash = "UNKNOWN"
)

const Name = "sabi-s3"

// String renders the product token used in User-Agent headers.
func String() string {
	return fmt.Sprintf("%s/%s (%s)", Name, Version, GitShortHash)
}
