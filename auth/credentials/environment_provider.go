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
	"os"
	"strings"

	"github.com/sabi/sabi-s3/apierrors"
	"github.com/sabi/sabi-s3/utils"
)

const (
	DefaultAccessKeyEnv    = "AWS_ACCESS_KEY_ID"
	DefaultSecretKeyEnv    = "AWS_SECRET_ACCESS_KEY"
	DefaultSessionTokenEnv = "AWS_SESSION_TOKEN"
)

// EnvironmentCredentialProvider reads a key pair from two named environment
// variables. The session token is optional.
type EnvironmentCredentialProvider struct {
	AccessKeyEnv    string
	SecretKeyEnv    string
	SessionTokenEnv string
}

// NewEnvironmentCredentialProvider falls back to the conventional variable
// names for any blank argument.
func NewEnvironmentCredentialProvider(accessKeyEnv, secretKeyEnv string) *EnvironmentCredentialProvider {
	return &EnvironmentCredentialProvider{
		AccessKeyEnv:    utils.DefaultIfBlank(accessKeyEnv, DefaultAccessKeyEnv),
		SecretKeyEnv:    utils.DefaultIfBlank(secretKeyEnv, DefaultSecretKeyEnv),
		SessionTokenEnv: DefaultSessionTokenEnv,
	}
}

// Credentials fails with RequiredValueMissing naming the first absent
// variable. It never returns a partial pair.
func (p EnvironmentCredentialProvider) Credentials() (Credentials, error) {
	accessKeyEnv := utils.DefaultIfBlank(p.AccessKeyEnv, DefaultAccessKeyEnv)
	secretKeyEnv := utils.DefaultIfBlank(p.SecretKeyEnv, DefaultSecretKeyEnv)

	accessKey := strings.TrimSpace(os.Getenv(accessKeyEnv))
	if accessKey == "" {
		return Credentials{}, apierrors.NewRequiredValueMissingError(accessKeyEnv)
	}
	secretKey := strings.TrimSpace(os.Getenv(secretKeyEnv))
	if secretKey == "" {
		return Credentials{}, apierrors.NewRequiredValueMissingError(secretKeyEnv)
	}
	b := NewBuilder().AccessKey(accessKey).SecretKey(secretKey)
	if p.SessionTokenEnv != "" {
		b.SessionToken(strings.TrimSpace(os.Getenv(p.SessionTokenEnv)))
	}
	return b.Build()
}
