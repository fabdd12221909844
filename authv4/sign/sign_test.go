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

package sign

import (
	"encoding/hex"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabi/sabi-s3/authv4/canonical"
	"github.com/sabi/sabi-s3/authv4/chrono"
	"github.com/sabi/sabi-s3/index"
)

const (
	exampleSecretKey   = "wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY"
	exampleS3SecretKey = "wJalrXUtnFEMI/K7MDENG/bPxRfiCYEXAMPLEKEY"
)

func TestCredentialScope(t *testing.T) {
	scope := NewCredentialScope("20150830", index.UsEast1, index.S3)
	assert.Equal(t, "20150830/us-east-1/s3/aws4_request", scope.String())
}

func TestCredentialScopeUnknownRegion(t *testing.T) {
	scope := NewCredentialScope("20240101", index.NewRegionCode("EU-South-9"), index.NewServiceCode("S3"))
	assert.Equal(t, "20240101/eu-south-9/s3/aws4_request", scope.String())
}

func TestDeriveSigningKey(t *testing.T) {
	scope := NewCredentialScope("20120215", index.UsEast1, index.Iam)
	key := DeriveSigningKey(exampleSecretKey, scope)
	assert.Equal(t, "f4780e2d9f65fa895f9c67b32ce1baf0b0d8a43505a000a1a9e090d414db404d", hex.EncodeToString(key))
}

func TestSignGetVanilla(t *testing.T) {
	at := time.Date(2015, time.August, 30, 12, 36, 0, 0, time.UTC)
	u, err := url.Parse("https://example.amazonaws.com/")
	require.NoError(t, err)
	cr, err := canonical.Builder{
		Method:  http.MethodGet,
		URL:     u,
		Header:  http.Header{"X-Amz-Date": {chrono.NewAmzTimestamp(at).String()}},
		Payload: canonical.EmptyPayload,
	}.Build()
	require.NoError(t, err)

	scope := NewCredentialScope(chrono.NewDateStamp(at), index.UsEast1, index.NewServiceCode("service"))
	sts := NewStringToSign(chrono.NewAmzTimestamp(at), scope, cr)
	assert.Equal(t, "AWS4-HMAC-SHA256\n"+
		"20150830T123600Z\n"+
		"20150830/us-east-1/service/aws4_request\n"+
		"bb579772317eb040ac9ed261061d46c1f17a8133879d6129b6e1c25292927e63", sts.String())

	signature := DeriveSigningKey(exampleSecretKey, scope).Sign(sts)
	assert.Equal(t, Signature("5fa00fa31553b73ebf1942676e86291e8372ff2a2260956d9b8aae1d763fbf31"), signature)
}

func TestSignS3GetObject(t *testing.T) {
	at := time.Date(2013, time.May, 24, 0, 0, 0, 0, time.UTC)
	u, err := url.Parse("https://examplebucket.s3.amazonaws.com/test.txt")
	require.NoError(t, err)
	header := http.Header{}
	header.Set("Range", "bytes=0-9")
	header.Set("X-Amz-Content-Sha256", canonical.EmptyPayload.String())
	header.Set("X-Amz-Date", chrono.NewAmzTimestamp(at).String())
	cr, err := canonical.Builder{Method: http.MethodGet, URL: u, Header: header, Payload: canonical.EmptyPayload}.Build()
	require.NoError(t, err)

	scope := NewCredentialScope(chrono.NewDateStamp(at), index.UsEast1, index.S3)
	signature := DeriveSigningKey(exampleS3SecretKey, scope).Sign(NewStringToSign(chrono.NewAmzTimestamp(at), scope, cr))
	assert.Equal(t, "f0e8bdb87c964420e857bd35b5d6ed310bd44f0170aba48dd91039c6036bdb41", signature.String())
}

func TestSignatureChangesWithDate(t *testing.T) {
	first := DeriveSigningKey(exampleSecretKey, NewCredentialScope("20150830", index.UsEast1, index.S3))
	second := DeriveSigningKey(exampleSecretKey, NewCredentialScope("20150831", index.UsEast1, index.S3))
	assert.NotEqual(t, first, second)
	assert.NotEqual(t, first.Sign("x"), second.Sign("x"))
}
