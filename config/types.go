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

package config

import "time"

// Config holds the settings of the s3api tooling. Fields left zero after the
// environment and the config file have been read take their defaults.
type Config struct {
	// AWSRegion is the region used when a request does not name one.
	AWSRegion string `missing:"warn"`

	// Endpoint overrides the regional S3 endpoint, e.g. a local S3
	// compatible store. Requests against it are path style.
	Endpoint string

	// ForcePathStyle puts the bucket in the path even for AWS endpoints.
	ForcePathStyle bool

	// AccessKeyEnv, SecretKeyEnv and SessionTokenEnv name the environment
	// variables holding the credentials. The values themselves are never
	// part of the configuration.
	AccessKeyEnv    string
	SecretKeyEnv    string
	SessionTokenEnv string

	// CredentialSource selects where credentials come from: "env" reads
	// the variables above, "sdk" runs the aws-sdk-go-v2 default chain
	// (environment, shared config and credentials files, SSO, IMDS).
	CredentialSource string

	// RoundtripTimeout bounds one request against the store.
	RoundtripTimeout time.Duration

	// LogLevel is applied when S3API_LOGLEVEL is not set.
	LogLevel string

	// InsecureSkipVerify disables TLS certificate checks for Endpoint.
	InsecureSkipVerify bool
}
