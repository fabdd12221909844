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

// Package index holds the canonical region and service codes used to scope
// a signing key.
// Ref: https://docs.aws.amazon.com/general/latest/gr/rande.html
package index

import "strings"

// RegionCode is the canonical lower-case token of a region, e.g. us-east-1.
// Codes not listed below are accepted as-is so new regions need no change.
type RegionCode struct {
	code string
}

// ServiceCode is the canonical lower-case token of a service, e.g. s3.
type ServiceCode struct {
	code string
}

var (
	UsEast1      = RegionCode{"us-east-1"}
	UsEast2      = RegionCode{"us-east-2"}
	UsWest1      = RegionCode{"us-west-1"}
	UsWest2      = RegionCode{"us-west-2"}
	EuWest1      = RegionCode{"eu-west-1"}
	EuCentral1   = RegionCode{"eu-central-1"}
	ApNortheast1 = RegionCode{"ap-northeast-1"}
	ApSoutheast1 = RegionCode{"ap-southeast-1"}

	Iam = ServiceCode{"iam"}
	S3  = ServiceCode{"s3"}
)

func normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// NewRegionCode normalizes the case of code. An empty result is a zero
// RegionCode, see IsZero.
func NewRegionCode(code string) RegionCode {
	return RegionCode{normalize(code)}
}

func (r RegionCode) String() string {
	return r.code
}

func (r RegionCode) AsBytes() []byte {
	return []byte(r.code)
}

func (r RegionCode) IsZero() bool {
	return r.code == ""
}

func NewServiceCode(code string) ServiceCode {
	return ServiceCode{normalize(code)}
}

func (s ServiceCode) String() string {
	return s.code
}

func (s ServiceCode) AsBytes() []byte {
	return []byte(s.code)
}

func (s ServiceCode) IsZero() bool {
	return s.code == ""
}
