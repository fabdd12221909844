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

package canonical

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabi/sabi-s3/apierrors"
)

func TestHashBytesEmpty(t *testing.T) {
	assert.Equal(t, EmptyPayload, HashBytes(nil))
	assert.Equal(t, EmptyPayload, HashBytes([]byte{}))
}

func TestHashBytesDeterministic(t *testing.T) {
	body := []byte("Welcome to Amazon S3.")
	assert.Equal(t, HashBytes(body), HashBytes(body))
	assert.Equal(t, HashedPayload("44ce7dd67c959e0d3524ffac1771dfbba87d2b6b4b4e99e42034a8b803f8b072"), HashBytes(body))
	assert.Len(t, HashBytes(body).String(), 64)
}

func TestUnsignedPayload(t *testing.T) {
	assert.True(t, UnsignedPayload.IsUnsigned())
	assert.False(t, EmptyPayload.IsUnsigned())
	assert.Equal(t, "UNSIGNED-PAYLOAD", UnsignedPayload.String())
}

func TestFromReadSeekerRewindsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "object.txt")
	content := []byte("Welcome to Amazon S3.")
	require.NoError(t, os.WriteFile(path, content, 0600))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	payload, err := FromReadSeeker(f)
	require.NoError(t, err)
	assert.Equal(t, HashBytes(content), payload)

	again, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, content, again)
}

func TestFromReadSeekerRestoresMidStreamPosition(t *testing.T) {
	r := bytes.NewReader([]byte("0123456789"))
	_, err := r.Seek(4, io.SeekStart)
	require.NoError(t, err)

	payload, err := FromReadSeeker(r)
	require.NoError(t, err)
	assert.Equal(t, HashBytes([]byte("456789")), payload)

	pos, err := r.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(4), pos)
}

type failingReadSeeker struct {
	readErr  error
	seekErr  error
	seeks    int
	position int64
}

func (f *failingReadSeeker) Read(p []byte) (int, error) {
	return 0, f.readErr
}

func (f *failingReadSeeker) Seek(offset int64, whence int) (int64, error) {
	f.seeks++
	if whence == io.SeekCurrent {
		return f.position, nil
	}
	if f.seekErr != nil {
		return 0, f.seekErr
	}
	f.position = offset
	return offset, nil
}

func TestFromReadSeekerRewindsOnReadFailure(t *testing.T) {
	r := &failingReadSeeker{readErr: errors.New("disk on fire")}
	_, err := FromReadSeeker(r)
	require.Error(t, err)
	assert.Equal(t, apierrors.IoErrorName, apierrors.NameOf(err))
	assert.Equal(t, 2, r.seeks, "position recorded once and restored exactly once")
}

func TestFromReadSeekerReportsBothErrors(t *testing.T) {
	r := &failingReadSeeker{readErr: errors.New("disk on fire"), seekErr: errors.New("cannot seek")}
	payload, err := FromReadSeeker(r)
	require.Error(t, err)
	assert.Empty(t, payload)
	assert.Contains(t, err.Error(), "disk on fire")
	assert.Contains(t, err.Error(), "cannot seek")
}

func TestFromReadSeekerRewindFailure(t *testing.T) {
	r := &failingReadSeeker{readErr: io.EOF, seekErr: errors.New("cannot seek")}
	payload, err := FromReadSeeker(r)
	require.Error(t, err)
	assert.Empty(t, payload)
	assert.Contains(t, err.Error(), "unable to rewind")
}
