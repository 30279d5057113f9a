// SPDX-FileCopyrightText: 2022-2023 The go-mail Authors
//
// SPDX-License-Identifier: MIT

// Package config loads the settings of the mimepart command line tool from the environment.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"

	"github.com/wneessen/go-mimepart"
	"github.com/wneessen/go-mimepart/log"
)

// EnvPrefix is the prefix of all environment variables read by Load
const EnvPrefix = "MIMEPART"

const (
	// KeyEncoding is the configuration key of the default transfer encoding
	KeyEncoding = "encoding"
	// KeyCharset is the configuration key of the default charset
	KeyCharset = "charset"
	// KeyLogLevel is the configuration key of the log level
	KeyLogLevel = "log_level"
	// KeyLogFormat is the configuration key of the log format
	KeyLogFormat = "log_format"
)

const (
	// LogFormatText selects the plain text logger
	LogFormatText = "text"
	// LogFormatJSON selects the structured JSON logger
	LogFormatJSON = "json"
	// LogFormatLogrus selects the logrus text logger
	LogFormatLogrus = "logrus"
)

// Config holds the validated settings of the command line tool
type Config struct {
	encoding  mimepart.Encoding
	charset   mimepart.Charset
	logLevel  log.Level
	logFormat string
	warnings  []string
}

// Load reads the configuration from the environment variables bound to v. Unset values fall
// back to their defaults: base64 encoding, no charset, log level "warn" and text log format.
//
// An invalid encoding, log level or log format is an error. A charset that is not known to the
// IANA index is kept as is and reported by Warnings.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyEncoding, mimepart.EncodingB64.String())
	v.SetDefault(KeyCharset, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, LogFormatText)

	var cfg Config
	var err error
	if cfg.encoding, err = mimepart.ParseEncoding(v.GetString(KeyEncoding)); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", envName(KeyEncoding), err)
	}
	if cfg.logLevel, err = log.ParseLevel(v.GetString(KeyLogLevel)); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", envName(KeyLogLevel), err)
	}

	cfg.logFormat = strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat)))
	switch cfg.logFormat {
	case LogFormatText, LogFormatJSON, LogFormatLogrus:
	default:
		return Config{}, fmt.Errorf("invalid %s: unknown log format %q", envName(KeyLogFormat),
			v.GetString(KeyLogFormat))
	}

	cfg.charset, err = NormalizeCharset(mimepart.Charset(v.GetString(KeyCharset)))
	if err != nil {
		cfg.warnings = append(cfg.warnings, fmt.Sprintf("%s: %s", envName(KeyCharset), err))
	}
	return cfg, nil
}

// NormalizeCharset returns the canonical MIME name of a charset label. An empty label stays
// empty. Unknown labels are returned unchanged together with an error.
func NormalizeCharset(charset mimepart.Charset) (mimepart.Charset, error) {
	charset = mimepart.Charset(strings.TrimSpace(charset.String()))
	if charset == "" {
		return "", nil
	}
	return charset.Canonical()
}

// Encoding returns the default transfer encoding
func (c Config) Encoding() mimepart.Encoding {
	return c.encoding
}

// Charset returns the default charset. It is empty if none is configured.
func (c Config) Charset() mimepart.Charset {
	return c.charset
}

// LogLevel returns the configured log level
func (c Config) LogLevel() log.Level {
	return c.logLevel
}

// LogFormat returns the configured log format: LogFormatText, LogFormatJSON or LogFormatLogrus
func (c Config) LogFormat() string {
	return c.logFormat
}

// Warnings returns the problems found while loading that did not prevent the configuration
// from being used
func (c Config) Warnings() []string {
	return c.warnings
}

// NewLogger returns a logger writing to output in the configured format and level
func (c Config) NewLogger(output io.Writer) log.Logger {
	switch c.logFormat {
	case LogFormatJSON:
		return log.NewJSON(output, c.logLevel)
	case LogFormatLogrus:
		return log.NewLogrus(output, c.logLevel)
	default:
		return log.New(output, c.logLevel)
	}
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}
