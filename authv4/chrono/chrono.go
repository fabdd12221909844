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

// Package chrono formats the two clock representations used while signing.
package chrono

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sabi/sabi-s3/utils/ttime"
)

const (
	dateStampLayout    = "20060102"
	amzTimestampLayout = "20060102T150405Z"
)

// DateStamp is a calendar date in UTC, rendered as YYYYMMDD.
type DateStamp string

// AmzTimestamp is an ISO 8601 basic date-time in UTC with second precision,
// rendered as YYYYMMDDTHHMMSSZ.
type AmzTimestamp string

func NewDateStamp(t time.Time) DateStamp {
	return DateStamp(t.UTC().Format(dateStampLayout))
}

func NewAmzTimestamp(t time.Time) AmzTimestamp {
	return AmzTimestamp(t.UTC().Format(amzTimestampLayout))
}

// ParseAmzTimestamp parses the value of an X-Amz-Date header.
func ParseAmzTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(amzTimestampLayout, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "chrono: invalid amz timestamp %q", value)
	}
	return t, nil
}

// Now returns the current instant in UTC, truncated to the second.
func Now() time.Time {
	return ttime.Now().UTC().Truncate(time.Second)
}

func (d DateStamp) String() string {
	return string(d)
}

func (d DateStamp) AsBytes() []byte {
	return []byte(d)
}

func (ts AmzTimestamp) String() string {
	return string(ts)
}

// DateStamp returns the date part of the timestamp.
func (ts AmzTimestamp) DateStamp() DateStamp {
	if len(ts) < len(dateStampLayout) {
		return DateStamp(ts)
	}
	return DateStamp(ts[:len(dateStampLayout)])
}
