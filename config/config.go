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

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/cihub/seelog"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/sabi/sabi-s3/auth/credentials"
	"github.com/sabi/sabi-s3/index"
	"github.com/sabi/sabi-s3/utils"
)

const (
	ConfigFilePathEnv     = "S3API_CONFIG_FILE_PATH"
	EndpointEnv           = "S3API_ENDPOINT"
	ForcePathStyleEnv     = "S3API_FORCE_PATH_STYLE"
	AccessKeyEnvEnv       = "S3API_ACCESS_KEY_ENV"
	SecretKeyEnvEnv       = "S3API_SECRET_KEY_ENV"
	SessionTokenEnvEnv    = "S3API_SESSION_TOKEN_ENV"
	CredentialSourceEnv   = "S3API_CREDENTIAL_SOURCE"
	RoundtripTimeoutEnv   = "S3API_ROUNDTRIP_TIMEOUT"
	InsecureSkipVerifyEnv = "S3API_INSECURE_SKIP_VERIFY"
	LogLevelEnv           = "S3API_LOGLEVEL"
	DefaultRegionEnv      = "AWS_DEFAULT_REGION"
	RegionEnv             = "AWS_REGION"

	// DefaultRoundtripTimeout is long enough for a single-part upload of a
	// few hundred megabytes on a slow link.
	DefaultRoundtripTimeout = 5 * time.Minute
	DefaultLogLevel         = "info"

	CredentialSourceEnvironment = "env"
	CredentialSourceSDK         = "sdk"

	minimumRoundtripTimeout = 1 * time.Second

	defaultConfigDir  = ".s3api"
	defaultConfigFile = "config.json"
)

// DefaultConfig returns the values used for every setting that is neither
// in the environment nor in the config file.
func DefaultConfig() Config {
	return Config{
		AccessKeyEnv:     credentials.DefaultAccessKeyEnv,
		SecretKeyEnv:     credentials.DefaultSecretKeyEnv,
		SessionTokenEnv:  credentials.DefaultSessionTokenEnv,
		CredentialSource: CredentialSourceEnvironment,
		RoundtripTimeout: DefaultRoundtripTimeout,
		LogLevel:         DefaultLogLevel,
	}
}

// Merge fills every zero field of lhs from rhs and returns lhs.
func (lhs *Config) Merge(rhs Config) *Config {
	left := reflect.ValueOf(lhs).Elem()
	right := reflect.ValueOf(&rhs).Elem()

	for i := 0; i < left.NumField(); i++ {
		leftField := left.Field(i)
		if utils.ZeroOrNil(leftField.Interface()) {
			leftField.Set(reflect.ValueOf(right.Field(i).Interface()))
		}
	}

	return lhs
}

// checkMissing logs a warning for every zero field tagged missing:"warn".
func (cfg *Config) checkMissing() {
	cfgElem := reflect.ValueOf(cfg).Elem()
	cfgType := cfgElem.Type()

	for i := 0; i < cfgElem.NumField(); i++ {
		if !utils.ZeroOrNil(cfgElem.Field(i).Interface()) {
			continue
		}
		if cfgType.Field(i).Tag.Get("missing") == "warn" {
			seelog.Warnf("Configuration key not set, key: %v", cfgType.Field(i).Name)
		}
	}
}

func (cfg *Config) trimWhitespace() {
	cfgElem := reflect.ValueOf(cfg).Elem()

	for i := 0; i < cfgElem.NumField(); i++ {
		field := cfgElem.Field(i)
		if field.Kind() == reflect.String {
			field.SetString(strings.TrimSpace(field.String()))
		}
	}
}

func (cfg *Config) validateAndOverrideBounds() error {
	if cfg.RoundtripTimeout < minimumRoundtripTimeout {
		return errors.Errorf("config: roundtrip timeout %v is below the minimum of %v", cfg.RoundtripTimeout, minimumRoundtripTimeout)
	}
	switch cfg.CredentialSource {
	case CredentialSourceEnvironment, CredentialSourceSDK:
	default:
		return errors.Errorf("config: unknown credential source %q", cfg.CredentialSource)
	}
	if cfg.Endpoint != "" && !strings.Contains(cfg.Endpoint, "://") {
		return errors.Errorf("config: endpoint %q has no scheme", cfg.Endpoint)
	}
	return nil
}

// Region returns the configured default region, zero when none is set.
func (cfg *Config) Region() index.RegionCode {
	return index.NewRegionCode(cfg.AWSRegion)
}

// CredentialProvider reads credentials from the configured variable names.
func (cfg *Config) CredentialProvider() credentials.Provider {
	provider := credentials.NewEnvironmentCredentialProvider(cfg.AccessKeyEnv, cfg.SecretKeyEnv)
	provider.SessionTokenEnv = cfg.SessionTokenEnv
	return provider
}

// ResolveCredentials resolves credentials once from the configured source.
func (cfg *Config) ResolveCredentials(ctx context.Context) (credentials.Credentials, error) {
	if cfg.CredentialSource != CredentialSourceSDK {
		return cfg.CredentialProvider().Credentials()
	}
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return credentials.Credentials{}, errors.Wrap(err, "config: unable to load sdk configuration")
	}
	return credentials.FromSDKProvider(ctx, awsCfg.Credentials)
}

// FilePath is where NewConfig looks for the JSON config file.
func FilePath() string {
	if path := os.Getenv(ConfigFilePathEnv); strings.TrimSpace(path) != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, defaultConfigDir, defaultConfigFile)
}

// fileConfig reads the JSON config file. A missing or empty file is not an
// error.
func fileConfig() (Config, error) {
	config := Config{}
	path := FilePath()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		seelog.Errorf("Unable to read config file, err %v", err)
		return config, errors.Wrapf(err, "config: read %s", path)
	}
	if strings.TrimSpace(string(data)) == "" {
		return config, nil
	}
	if err := json.Unmarshal(data, &config); err != nil {
		seelog.Errorf("Error reading config json data, err %v", err)
		return Config{}, errors.Wrapf(err, "config: decode %s", path)
	}
	return config, nil
}

// environmentConfig reads every setting that has an environment variable.
func environmentConfig() (Config, error) {
	var errs *multierror.Error

	timeout, err := parseEnvVariableDuration(RoundtripTimeoutEnv)
	if err != nil {
		errs = multierror.Append(errs, err)
	}

	return Config{
		AWSRegion:          utils.FirstNonBlank(os.Getenv(DefaultRegionEnv), os.Getenv(RegionEnv)),
		Endpoint:           os.Getenv(EndpointEnv),
		ForcePathStyle:     utils.ParseBool(os.Getenv(ForcePathStyleEnv), false),
		AccessKeyEnv:       os.Getenv(AccessKeyEnvEnv),
		SecretKeyEnv:       os.Getenv(SecretKeyEnvEnv),
		SessionTokenEnv:    os.Getenv(SessionTokenEnvEnv),
		CredentialSource:   strings.ToLower(os.Getenv(CredentialSourceEnv)),
		RoundtripTimeout:   timeout,
		InsecureSkipVerify: utils.ParseBool(os.Getenv(InsecureSkipVerifyEnv), false),
		LogLevel:           os.Getenv(LogLevelEnv),
	}, errs.ErrorOrNil()
}

func parseEnvVariableDuration(envVar string) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(envVar))
	if raw == "" {
		return 0, nil
	}
	duration, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "config: invalid %s", envVar)
	}
	return duration, nil
}

// NewConfig merges the environment, then the config file, then the
// defaults. Every problem found is reported in one aggregated error.
func NewConfig() (*Config, error) {
	var errs *multierror.Error

	envConfig, err := environmentConfig()
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	config := &envConfig

	fromFile, err := fileConfig()
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	config.Merge(fromFile).Merge(DefaultConfig())
	config.trimWhitespace()

	if err := config.validateAndOverrideBounds(); err != nil {
		errs = multierror.Append(errs, err)
	}
	config.checkMissing()
	return config, errs.ErrorOrNil()
}

// String renders the configuration for logs. It only ever contains variable
// names, never credential values.
func (cfg *Config) String() string {
	return fmt.Sprintf(
		"AWSRegion: %v, Endpoint: %v, ForcePathStyle: %v, AccessKeyEnv: %v, SecretKeyEnv: %v, "+
			"SessionTokenEnv: %v, CredentialSource: %v, RoundtripTimeout: %v, LogLevel: %v, InsecureSkipVerify: %v",
		cfg.AWSRegion,
		cfg.Endpoint,
		cfg.ForcePathStyle,
		cfg.AccessKeyEnv,
		cfg.SecretKeyEnv,
		cfg.SessionTokenEnv,
		cfg.CredentialSource,
		cfg.RoundtripTimeout,
		cfg.LogLevel,
		cfg.InsecureSkipVerify,
	)
}
