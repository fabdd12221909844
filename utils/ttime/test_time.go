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

package ttime

import (
	"sync"
	"time"
)

// TestTime is a frozen clock. It only moves when Warp is called.
type TestTime struct {
	mu  sync.Mutex
	now time.Time
}

// NewTestTime returns a TestTime stopped at the given instant.
func NewTestTime(at time.Time) *TestTime {
	return &TestTime{now: at}
}

// Warp moves the mock time forwards by the given duration.
func (t *TestTime) Warp(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = t.now.Add(d)
}

// Now returns the frozen time, including any time-warping that has occurred.
func (t *TestTime) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.now
}
