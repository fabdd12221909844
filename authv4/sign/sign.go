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

// Package sign implements the credential scope, string to sign and HMAC key
// chain of AWS Signature Version 4.
package sign

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/sabi/sabi-s3/authv4/canonical"
	"github.com/sabi/sabi-s3/authv4/chrono"
	"github.com/sabi/sabi-s3/index"
)

const (
	Algorithm      = "AWS4-HMAC-SHA256"
	TerminationTag = "aws4_request"

	keyPrefix = "AWS4"
)

// CredentialScope bounds where and when a derived key is valid:
// date/region/service/aws4_request.
type CredentialScope struct {
	date    chrono.DateStamp
	region  index.RegionCode
	service index.ServiceCode
}

func NewCredentialScope(date chrono.DateStamp, region index.RegionCode, service index.ServiceCode) CredentialScope {
	return CredentialScope{date: date, region: region, service: service}
}

func (s CredentialScope) Date() chrono.DateStamp     { return s.date }
func (s CredentialScope) Region() index.RegionCode   { return s.region }
func (s CredentialScope) Service() index.ServiceCode { return s.service }

func (s CredentialScope) String() string {
	return strings.Join([]string{s.date.String(), s.region.String(), s.service.String(), TerminationTag}, "/")
}

// StringToSign is the exact input of the final HMAC.
type StringToSign string

func NewStringToSign(ts chrono.AmzTimestamp, scope CredentialScope, cr *canonical.CanonicalRequest) StringToSign {
	return StringToSign(Algorithm + "\n" + ts.String() + "\n" + scope.String() + "\n" + cr.Hash())
}

func (s StringToSign) String() string {
	return string(s)
}

// SigningKey is derived per request and must not outlive the signature it
// produces.
type SigningKey []byte

// DeriveSigningKey runs the four step HMAC chain over the scope.
func DeriveSigningKey(secretKey string, scope CredentialScope) SigningKey {
	kDate := hmacSHA256([]byte(keyPrefix+secretKey), scope.date.AsBytes())
	kRegion := hmacSHA256(kDate, scope.region.AsBytes())
	kService := hmacSHA256(kRegion, scope.service.AsBytes())
	return hmacSHA256(kService, []byte(TerminationTag))
}

// Signature is the hex encoded HMAC of a string to sign.
type Signature string

func (key SigningKey) Sign(s StringToSign) Signature {
	return Signature(hex.EncodeToString(hmacSHA256(key, []byte(s))))
}

func (s Signature) String() string {
	return string(s)
}

func hmacSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}
