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

// Package credentials holds pre-resolved access keys and the providers that
// resolve them.
package credentials

import (
	"fmt"
	"strings"

	"github.com/sabi/sabi-s3/apierrors"
)

const redacted = "<redacted>"

// SecretKey never renders its value through fmt.
type SecretKey string

func (SecretKey) String() string   { return redacted }
func (SecretKey) GoString() string { return redacted }

// Credentials is an immutable access key pair with an optional session
// token. Use Builder to construct one.
type Credentials struct {
	accessKeyID  string
	secretKey    SecretKey
	sessionToken string
}

func (c Credentials) AccessKeyID() string  { return c.accessKeyID }
func (c Credentials) SecretKey() SecretKey { return c.secretKey }
func (c Credentials) SessionToken() string { return c.sessionToken }

func (c Credentials) IsZero() bool {
	return c.accessKeyID == "" && c.secretKey == ""
}

func (c Credentials) String() string {
	token := ""
	if c.sessionToken != "" {
		token = redacted
	}
	return fmt.Sprintf("Credentials{AccessKeyID: %s, SecretKey: %s, SessionToken: %q}", c.accessKeyID, redacted, token)
}

func (c Credentials) GoString() string {
	return c.String()
}

// Builder validates the fields of Credentials before handing out a value.
type Builder struct {
	accessKeyID  string
	secretKey    string
	sessionToken string
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) AccessKey(id string) *Builder {
	b.accessKeyID = id
	return b
}

func (b *Builder) SecretKey(secret string) *Builder {
	b.secretKey = secret
	return b
}

func (b *Builder) SessionToken(token string) *Builder {
	b.sessionToken = token
	return b
}

// Build fails with RequiredValueMissing when either key is blank.
func (b *Builder) Build() (Credentials, error) {
	if strings.TrimSpace(b.accessKeyID) == "" {
		return Credentials{}, apierrors.NewRequiredValueMissingError("access key id")
	}
	if strings.TrimSpace(b.secretKey) == "" {
		return Credentials{}, apierrors.NewRequiredValueMissingError("secret key")
	}
	return Credentials{
		accessKeyID:  b.accessKeyID,
		secretKey:    SecretKey(b.secretKey),
		sessionToken: b.sessionToken,
	}, nil
}

// Provider resolves Credentials.
type Provider interface {
	Credentials() (Credentials, error)
}

// StaticProvider always returns the same Credentials.
type StaticProvider struct {
	Value Credentials
}

func NewStaticProvider(value Credentials) *StaticProvider {
	return &StaticProvider{Value: value}
}

func (p *StaticProvider) Credentials() (Credentials, error) {
	if p == nil || p.Value.IsZero() {
		return Credentials{}, apierrors.NewRequiredValueMissingError("credentials")
	}
	return p.Value, nil
}
