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

// Package apierrors defines the named error kinds surfaced by the signing
// engine and the s3 request layer.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	RequiredValueMissingName = "RequiredValueMissing"
	FileNotFoundName         = "FileNotFound"
	IoErrorName              = "GenericIo"
	RegionNotSpecifiedName   = "RegionNotSpecified"
	InvalidHeaderValueName   = "InvalidHeaderValue"
	UpstreamFailureName      = "UpstreamFailure"
	EncodingErrorName        = "EncodingError"

	redacted = "<redacted>"
)

type NamedError interface {
	error
	ErrorName() string
}

// RequiredValueMissingError is returned when a credential, environment value
// or request parameter that must be present is absent.
type RequiredValueMissingError struct {
	Name string
}

func NewRequiredValueMissingError(name string) *RequiredValueMissingError {
	return &RequiredValueMissingError{Name: name}
}

func (err *RequiredValueMissingError) Error() string {
	return fmt.Sprintf("required value missing: %s", err.Name)
}

func (err *RequiredValueMissingError) ErrorName() string { return RequiredValueMissingName }

// FileNotFoundError identifies the operation and the path that could not be
// opened because it does not exist.
type FileNotFoundError struct {
	Operation string
	Path      string
	Err       error
}

func (err *FileNotFoundError) Error() string {
	return fmt.Sprintf("%s: file not found: %s: %v", err.Operation, err.Path, err.Err)
}

func (err *FileNotFoundError) ErrorName() string { return FileNotFoundName }
func (err *FileNotFoundError) Unwrap() error     { return err.Err }

// IoError wraps every I/O failure other than a missing file.
type IoError struct {
	Err error
}

func NewIoError(err error) *IoError {
	return &IoError{Err: err}
}

func (err *IoError) Error() string     { return "io error: " + err.Err.Error() }
func (err *IoError) ErrorName() string { return IoErrorName }
func (err *IoError) Unwrap() error     { return err.Err }

type RegionNotSpecifiedError struct{}

func (err *RegionNotSpecifiedError) Error() string {
	return "region not specified: no explicit region and no default region configured"
}

func (err *RegionNotSpecifiedError) ErrorName() string { return RegionNotSpecifiedName }

// InvalidHeaderValueError is returned when a header name or value does not
// satisfy the HTTP wire format. The value of sensitive headers is never
// rendered.
type InvalidHeaderValueError struct {
	Name  string
	Value string
}

func (err *InvalidHeaderValueError) Error() string {
	value := err.Value
	if http.CanonicalHeaderKey(err.Name) == "Authorization" {
		value = redacted
	}
	return fmt.Sprintf("invalid header value: %s: %q", err.Name, value)
}

func (err *InvalidHeaderValueError) ErrorName() string { return InvalidHeaderValueName }

// UpstreamFailureError carries a non-success response from the store.
type UpstreamFailureError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (err *UpstreamFailureError) Error() string {
	summary := err.Message
	if err.Code != "" {
		summary = err.Code + ": " + summary
	}
	return fmt.Sprintf("upstream failure: status %d: %s", err.StatusCode, summary)
}

func (err *UpstreamFailureError) ErrorName() string { return UpstreamFailureName }
func (err *UpstreamFailureError) Unwrap() error     { return err.Err }

// EncodingError wraps malformed UTF-8, XML or JSON where structured decoding
// was required.
type EncodingError struct {
	Err error
}

func NewEncodingError(err error) *EncodingError {
	return &EncodingError{Err: err}
}

func (err *EncodingError) Error() string     { return "encoding error: " + err.Err.Error() }
func (err *EncodingError) ErrorName() string { return EncodingErrorName }
func (err *EncodingError) Unwrap() error     { return err.Err }

// NameOf returns the name of the first NamedError found in the chain of err.
func NameOf(err error) string {
	var named NamedError
	if errors.As(err, &named) {
		return named.ErrorName()
	}
	return "UnknownError"
}
