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
	"os"

	"github.com/pkg/errors"

	"github.com/sabi/sabi-s3/apierrors"
	"github.com/sabi/sabi-s3/authv4/canonical"
	"github.com/sabi/sabi-s3/authv4/chrono"
	"github.com/sabi/sabi-s3/index"
	"github.com/sabi/sabi-s3/utils"
)

const DefaultContentType = "application/octet-stream"

// FileRequest uploads the file at FilePath as ObjectKey.
type FileRequest struct {
	FilePath    string
	ObjectKey   string
	ContentType string
	Region      index.RegionCode
}

func (r *FileRequest) Kind() Kind {
	return PutObject
}

func (r *FileRequest) GetObjectKey() string {
	return r.ObjectKey
}

// Load opens the file, hashes it and rewinds it so the same handle can be
// sent as the body. The request time is taken here, after hashing.
func (r *FileRequest) Load() (*RequestResource, error) {
	f, err := r.open()
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, apierrors.NewIoError(errors.Wrapf(err, "%s: unable to stat %s", PutObject, r.FilePath))
	}
	if info.IsDir() {
		f.Close()
		return nil, apierrors.NewIoError(errors.Errorf("%s: %s is a directory", PutObject, r.FilePath))
	}
	hash, err := canonical.FromReadSeeker(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "%s: unable to hash %s", PutObject, r.FilePath)
	}
	return &RequestResource{
		Body:          f,
		ContentLength: info.Size(),
		Hash:          hash,
		ContentType:   utils.DefaultIfBlank(r.ContentType, DefaultContentType),
		Region:        r.Region,
		RequestedAt:   chrono.Now(),
	}, nil
}

func (r *FileRequest) open() (*os.File, error) {
	f, err := os.Open(r.FilePath)
	if err == nil {
		return f, nil
	}
	if os.IsNotExist(err) {
		return nil, &apierrors.FileNotFoundError{Operation: string(PutObject), Path: r.FilePath, Err: err}
	}
	return nil, apierrors.NewIoError(errors.Wrapf(err, "%s: unable to open %s", PutObject, r.FilePath))
}
