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

package signable

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/sabi/sabi-s3/apierrors"
	"github.com/sabi/sabi-s3/authv4/canonical"
)

// HttpRequest exposes an *http.Request to the signer. Mutations go to the
// wrapped request.
type HttpRequest struct{ *http.Request }

func (hr HttpRequest) GetHost() string {
	if hr.Host != "" {
		return hr.Host
	}
	if hr.URL.Host != "" {
		return hr.URL.Host
	}
	return hr.Header.Get("host")
}

func (hr HttpRequest) Headers() http.Header {
	return hr.Header
}

func (hr HttpRequest) SetHeader(name, value string) {
	hr.Header.Set(name, value)
}

func (hr HttpRequest) ReqURL() *url.URL {
	return hr.URL
}

func (hr HttpRequest) ReqMethod() string {
	return hr.Method
}

// PayloadHash honors an X-Amz-Content-Sha256 header set by the caller, which
// is how UNSIGNED-PAYLOAD is requested. Otherwise a seekable body is hashed
// in place, a body with GetBody is hashed from a fresh copy, and any other
// body is buffered in memory and replaced.
func (hr HttpRequest) PayloadHash() (canonical.HashedPayload, error) {
	if preset := hr.Header.Get(canonical.AmzContentSHAHeader); preset != "" {
		return canonical.HashedPayload(preset), nil
	}
	if hr.Body == nil || hr.Body == http.NoBody {
		return canonical.EmptyPayload, nil
	}
	if seeker, ok := hr.Body.(io.ReadSeeker); ok {
		return canonical.FromReadSeeker(seeker)
	}
	if hr.GetBody != nil {
		body, err := hr.GetBody()
		if err != nil {
			return "", apierrors.NewIoError(errors.Wrap(err, "signable: unable to copy request body"))
		}
		defer body.Close()
		hasher := sha256.New()
		if _, err := io.Copy(hasher, body); err != nil {
			return "", apierrors.NewIoError(errors.Wrap(err, "signable: unable to hash request body"))
		}
		return canonical.HashedPayload(hex.EncodeToString(hasher.Sum(nil))), nil
	}
	payload, err := io.ReadAll(hr.Body)
	hr.Body.Close()
	if err != nil {
		return "", apierrors.NewIoError(errors.Wrap(err, "signable: unable to read request body"))
	}
	hr.Body = io.NopCloser(bytes.NewReader(payload))
	return canonical.HashBytes(payload), nil
}
