//go:build unit
// +build unit

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

package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRegionCodeNormalizes(t *testing.T) {
	assert.Equal(t, UsEast1, NewRegionCode("US-EAST-1"))
	assert.Equal(t, EuWest1, NewRegionCode("  eu-west-1\n"))
	assert.Equal(t, "me-central-1", NewRegionCode("Me-Central-1").String())
	assert.Equal(t, []byte("us-west-2"), UsWest2.AsBytes())
}

func TestZeroCodes(t *testing.T) {
	assert.True(t, NewRegionCode("   ").IsZero())
	assert.True(t, RegionCode{}.IsZero())
	assert.False(t, ApSoutheast1.IsZero())
	assert.True(t, NewServiceCode("").IsZero())
}

func TestNewServiceCodeNormalizes(t *testing.T) {
	assert.Equal(t, S3, NewServiceCode("S3"))
	assert.Equal(t, Iam, NewServiceCode(" iam "))
	assert.Equal(t, "s3", S3.String())
}
