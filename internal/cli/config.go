// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-a2a/fasta2a/auth"
	"github.com/go-a2a/fasta2a/client"
)

// EnvPrefix prefixes every environment variable read by the CLI, e.g. A2A_TOKEN.
const EnvPrefix = "A2A"

// Flag and config keys.
const (
	keyConfig      = "config"
	keyLogLevel    = "log-level"
	keyVerbose     = "verbose"
	keyToken       = "token"
	keyAPIKey      = "api-key"
	keyAuth        = "auth"
	keyTimeout     = "timeout"
	keyMaxAttempts = "max-attempts"
	keyBaseDelay   = "base-delay"
	keyContext     = "context"
	keyNoContext   = "no-context"
	keyJSON        = "json"
	keyFile        = "file"
)

// Config is the resolved configuration of one command invocation.
//
// Values come from flags, then A2A_* environment variables, then the config file.
type Config struct {
	LogLevel    string        `mapstructure:"log-level"`
	Verbose     bool          `mapstructure:"verbose"`
	Token       string        `mapstructure:"token"`
	APIKey      string        `mapstructure:"api-key"`
	Auth        string        `mapstructure:"auth"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxAttempts int           `mapstructure:"max-attempts"`
	BaseDelay   time.Duration `mapstructure:"base-delay"`
	Context     string        `mapstructure:"context"`
	NoContext   bool          `mapstructure:"no-context"`
	JSON        bool          `mapstructure:"json"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyAuth, string(auth.SchemePath))
	// keyTimeout has no default here; the --timeout flag of each command supplies it.
	v.SetDefault(keyMaxAttempts, client.DefaultRetryPolicy().MaxAttempts)
	v.SetDefault(keyBaseDelay, client.DefaultRetryPolicy().BaseDelay)
	return v
}

// loadConfig binds flags to v, reads the config file if any and decodes the result.
//
// Without --config, $HOME/.a2a-zero/config.yaml is read when it exists.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".a2a-zero"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Verbose {
		cfg.LogLevel = "debug"
	}
	return &cfg, nil
}

// retryPolicy returns the retry policy configured by the flags.
func (c *Config) retryPolicy() client.RetryPolicy {
	p := client.DefaultRetryPolicy()
	if c.MaxAttempts > 0 {
		p.MaxAttempts = c.MaxAttempts
	}
	if c.BaseDelay > 0 {
		p.BaseDelay = c.BaseDelay
	}
	return p
}

// credential returns the token given with --token or --api-key.
func (c *Config) credential() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return c.Token
}

// resolveEndpoint splits rawURL into the instance base URL and the token to use.
//
// A token-in-path URL such as http://host/a2a/t-TOKEN supplies the token when none was given
// explicitly. A trailing /a2a endpoint path is removed.
func resolveEndpoint(rawURL, token string) (base, tok string, err error) {
	base = strings.TrimRight(strings.TrimSpace(rawURL), "/")
	if b, t, ok := auth.TokenFromURL(base); ok {
		base = b
		if token == "" {
			token = t
		}
	}
	base = strings.TrimSuffix(base, "/a2a")

	if token == "" {
		return "", "", errors.New("no token: pass --token, set " + EnvPrefix + "_TOKEN or use a token URL (.../a2a/t-TOKEN)")
	}
	if err := auth.ValidateToken(token); err != nil {
		return "", "", fmt.Errorf("invalid token: %w", err)
	}
	return base, token, nil
}
