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

package utils

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIfBlank(t *testing.T) {
	assert.Equal(t, "default", DefaultIfBlank("  ", "default"))
	assert.Equal(t, "value", DefaultIfBlank("value", "default"))
}

func TestZeroOrNil(t *testing.T) {
	type zeroTest struct {
		testInt int
		TestStr string
	}
	var nilPtr *zeroTest

	testCases := []struct {
		param    interface{}
		expected bool
	}{
		{nil, true},
		{"", true},
		{0, true},
		{time.Duration(0), true},
		{false, true},
		{[]string{}, true},
		{map[string]string{}, true},
		{nilPtr, true},
		{zeroTest{}, true},
		{"a", false},
		{1, false},
		{true, false},
		{[]string{"a"}, false},
		{&zeroTest{}, false},
		{zeroTest{TestStr: "x"}, false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ZeroOrNil(tc.param), "%#v", tc.param)
	}
}

func TestParseBool(t *testing.T) {
	assert.True(t, ParseBool(" true ", false))
	assert.False(t, ParseBool("0", true))
	assert.True(t, ParseBool("maybe", true))
	assert.False(t, ParseBool("", false))
}

func TestFirstNonBlank(t *testing.T) {
	assert.Equal(t, "b", FirstNonBlank("", "  ", "b", "c"))
	assert.Equal(t, "", FirstNonBlank("", " "))
}

func TestProxyFollowsEnvironment(t *testing.T) {
	t.Setenv("NO_PROXY", "")
	t.Setenv("no_proxy", "")
	req, err := http.NewRequest(http.MethodGet, "http://examplebucket.s3.amazonaws.com/key", nil)
	require.NoError(t, err)

	t.Setenv("HTTP_PROXY", "")
	t.Setenv("http_proxy", "")
	proxy, err := Proxy(req)
	require.NoError(t, err)
	assert.Nil(t, proxy)

	t.Setenv("HTTP_PROXY", "10.0.0.1:3128")
	proxy, err = Proxy(req)
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.1:3128", proxy.String())

	t.Setenv("NO_PROXY", ".amazonaws.com")
	proxy, err = Proxy(req)
	require.NoError(t, err)
	assert.Nil(t, proxy)
}
