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
	"net/url"
	"sort"
	"strings"
)

const upperhex = "0123456789ABCDEF"

func shouldEscape(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return false
	case c == '-', c == '.', c == '_', c == '~':
		return false
	}
	return true
}

// Escape percent-encodes every byte of s outside the RFC 3986 unreserved set.
func Escape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// EscapePath escapes each segment of a decoded path and keeps the
// separators. An empty path becomes "/".
func EscapePath(path string) string {
	if path == "" {
		return "/"
	}
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = Escape(s)
	}
	return strings.Join(segments, "/")
}

// URI returns the canonical URI of u.
func URI(u *url.URL) string {
	path := u.Path
	if path == "" && u.Opaque != "" {
		if p, err := url.PathUnescape(u.Opaque); err == nil {
			path = p
		}
	}
	return EscapePath(path)
}

// Query returns the canonical query string of u: every key and value
// escaped, sorted by key and then by value, joined with '&'.
func Query(u *url.URL) string {
	if u.RawQuery == "" {
		return ""
	}
	type pair struct{ key, value string }
	values := u.Query()
	pairs := make([]pair, 0, len(values))
	for k, vs := range values {
		key := Escape(k)
		for _, v := range vs {
			pairs = append(pairs, pair{key, Escape(v)})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].key != pairs[j].key {
			return pairs[i].key < pairs[j].key
		}
		return pairs[i].value < pairs[j].value
	})
	rendered := make([]string, len(pairs))
	for i, p := range pairs {
		rendered[i] = p.key + "=" + p.value
	}
	return strings.Join(rendered, "&")
}

// HeaderValue trims v and collapses inner runs of whitespace to one space.
func HeaderValue(v string) string {
	return strings.Join(strings.Fields(v), " ")
}
