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

package canonical

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/sabi/sabi-s3/apierrors"
)

// HashedPayload is the hex encoded SHA-256 of a request body, or the
// UnsignedPayload sentinel.
type HashedPayload string

const (
	// UnsignedPayload marks a body that is not covered by the signature.
	UnsignedPayload HashedPayload = "UNSIGNED-PAYLOAD"

	// EmptyPayload is the digest of a zero length body.
	EmptyPayload HashedPayload = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)

func (p HashedPayload) String() string {
	return string(p)
}

func (p HashedPayload) IsUnsigned() bool {
	return p == UnsignedPayload
}

// HashBytes hashes an in-memory body.
func HashBytes(b []byte) HashedPayload {
	sum := sha256.Sum256(b)
	return HashedPayload(hex.EncodeToString(sum[:]))
}

// FromReadSeeker hashes everything from the current position of r to EOF and
// then seeks r back to that position, whether or not hashing succeeded. When
// both fail the read error is returned with the seek error attached.
func FromReadSeeker(r io.ReadSeeker) (payload HashedPayload, err error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return "", apierrors.NewIoError(errors.Wrap(err, "payload: unable to record read position"))
	}
	defer func() {
		if _, seekErr := r.Seek(start, io.SeekStart); seekErr != nil {
			seekErr = apierrors.NewIoError(errors.Wrap(seekErr, "payload: unable to rewind"))
			if err != nil {
				err = multierror.Append(err, seekErr)
			} else {
				err = seekErr
			}
			payload = ""
		}
	}()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return "", apierrors.NewIoError(errors.Wrap(err, "payload: unable to hash body"))
	}
	return HashedPayload(hex.EncodeToString(hasher.Sum(nil))), nil
}
