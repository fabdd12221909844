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

package credentials

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/pkg/errors"
)

// FromSDKProvider resolves an aws-sdk-go-v2 credentials provider once and
// returns the result as pre-resolved Credentials.
func FromSDKProvider(ctx context.Context, provider aws.CredentialsProvider) (Credentials, error) {
	if provider == nil {
		return Credentials{}, errors.New("credentials: nil sdk provider")
	}
	value, err := provider.Retrieve(ctx)
	if err != nil {
		return Credentials{}, errors.Wrapf(err, "credentials: unable to retrieve from %s", sourceOf(value))
	}
	return NewBuilder().
		AccessKey(value.AccessKeyID).
		SecretKey(value.SecretAccessKey).
		SessionToken(value.SessionToken).
		Build()
}

func sourceOf(value aws.Credentials) string {
	if value.Source == "" {
		return "sdk provider"
	}
	return value.Source
}
