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

// Package ttime implements a testable alternative to the Go "time" package.
package ttime

import (
	"sync"
	"time"
)

//go:generate mockgen -destination=mocks/ttime_mocks.go -copyright_file=../../scripts/copyright_file github.com/sabi/sabi-s3/utils/ttime Time

// Time represents an implementation for this package's methods
type Time interface {
	Now() time.Time
}

// DefaultTime is a Time that behaves normally
type DefaultTime struct{}

var (
	_time Time = &DefaultTime{}
	lock  sync.RWMutex
)

// Now returns the current time
func (*DefaultTime) Now() time.Time {
	return time.Now()
}

// SetTime configures what 'Time' implementation to use for each of the
// package-level methods. It returns a function restoring the previous one.
func SetTime(t Time) func() {
	lock.Lock()
	defer lock.Unlock()
	previous := _time
	_time = t
	return func() {
		lock.Lock()
		defer lock.Unlock()
		_time = previous
	}
}

// Now returns the implementation's current time
func Now() time.Time {
	lock.RLock()
	defer lock.RUnlock()
	return _time.Now()
}

// Since returns the time different from Now and the given time t
func Since(t time.Time) time.Duration {
	return Now().Sub(t)
}
