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

// Package httpclient builds the http.Client used to reach S3. It stamps a
// User-Agent on every request and never follows redirects.
package httpclient

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"runtime"
	"time"

	"github.com/sabi/sabi-s3/utils"
	"github.com/sabi/sabi-s3/version"
)

// Ref: https://docs.aws.amazon.com/sdk-for-go/v1/developer-guide/custom-http.html
const (
	DefaultDialTimeout         = 30 * time.Second
	DefaultDialKeepalive       = 30 * time.Second
	DefaultTLSHandshakeTimeout = 10 * time.Second
	DefaultIdleConnTimeout     = 90 * time.Second
	DefaultMaxIdleConnsPerHost = 4

	userAgentHeader = "User-Agent"
)

//go:generate mockgen -destination=mock/$GOFILE -copyright_file=../scripts/copyright_file net/http RoundTripper

// userAgentRoundTripper sets User-Agent on a copy of every request.
// User-Agent is never signed, so it may be set after signing.
type userAgentRoundTripper struct {
	userAgent string
	transport http.RoundTripper
}

func newUserAgentRoundTripper(transport http.RoundTripper) *userAgentRoundTripper {
	return &userAgentRoundTripper{
		userAgent: fmt.Sprintf("%s (%s; %s)", version.String(), runtime.GOOS, runtime.Version()),
		transport: transport,
	}
}

func (rt *userAgentRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	stamped := req.Clone(req.Context())
	stamped.Header.Set(userAgentHeader, rt.userAgent)
	return rt.transport.RoundTrip(stamped)
}

// noRedirect hands 3xx replies back to the caller. A signature covers the
// host, so a request redirected to another endpoint could only fail.
func noRedirect(req *http.Request, via []*http.Request) error {
	return http.ErrUseLastResponse
}

// New returns an http.Client whose requests time out after timeout. A zero
// timeout means no timeout.
func New(timeout time.Duration, insecureSkipVerify bool) *http.Client {
	transport := &http.Transport{
		Proxy: utils.Proxy,
		DialContext: (&net.Dialer{
			Timeout:   DefaultDialTimeout,
			KeepAlive: DefaultDialKeepalive,
		}).DialContext,
		TLSHandshakeTimeout: DefaultTLSHandshakeTimeout,
		IdleConnTimeout:     DefaultIdleConnTimeout,
		MaxIdleConnsPerHost: DefaultMaxIdleConnsPerHost,
		TLSClientConfig: &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: insecureSkipVerify,
		},
	}

	return &http.Client{
		Transport:     newUserAgentRoundTripper(transport),
		CheckRedirect: noRedirect,
		Timeout:       timeout,
	}
}

// OverridableTransport lets tests replace the transport under the
// User-Agent layer.
type OverridableTransport interface {
	SetTransport(http.RoundTripper)
}

func (rt *userAgentRoundTripper) SetTransport(transport http.RoundTripper) {
	rt.transport = transport
}
