// SPDX-FileCopyrightText: 2022-2023 The go-mail Authors
//
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wneessen/go-mimepart"
	"github.com/wneessen/go-mimepart/log"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, mimepart.EncodingB64, cfg.Encoding())
	assert.Empty(t, cfg.Charset())
	assert.Equal(t, log.LevelWarn, cfg.LogLevel())
	assert.Equal(t, LogFormatText, cfg.LogFormat())
	assert.Empty(t, cfg.Warnings())
}

func TestLoadNilViper(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, mimepart.EncodingB64, cfg.Encoding())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MIMEPART_ENCODING", " QUOTED-PRINTABLE ")
	t.Setenv("MIMEPART_CHARSET", "utf-8")
	t.Setenv("MIMEPART_LOG_LEVEL", "debug")
	t.Setenv("MIMEPART_LOG_FORMAT", "JSON")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, mimepart.EncodingQP, cfg.Encoding())
	assert.Equal(t, mimepart.Charset("UTF-8"), cfg.Charset())
	assert.Equal(t, log.LevelDebug, cfg.LogLevel())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
	assert.Empty(t, cfg.Warnings())
}

func TestLoadInvalidValues(t *testing.T) {
	testCases := []struct {
		name        string
		env         string
		value       string
		expectedErr string
	}{
		{
			name:        "unknown encoding",
			env:         "MIMEPART_ENCODING",
			value:       "binary",
			expectedErr: "invalid MIMEPART_ENCODING",
		},
		{
			name:        "unknown log level",
			env:         "MIMEPART_LOG_LEVEL",
			value:       "verbose",
			expectedErr: "invalid MIMEPART_LOG_LEVEL",
		},
		{
			name:        "unknown log format",
			env:         "MIMEPART_LOG_FORMAT",
			value:       "xml",
			expectedErr: "unknown log format \"xml\"",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv(testCase.env, testCase.value)

			_, err := Load(viper.New())
			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.expectedErr)
		})
	}
}

func TestLoadInvalidEncodingWrapsSentinel(t *testing.T) {
	t.Setenv("MIMEPART_ENCODING", "x-uuencode")

	_, err := Load(viper.New())
	require.ErrorIs(t, err, mimepart.ErrInvalidEncoding)
}

func TestLoadUnknownCharsetWarns(t *testing.T) {
	t.Setenv("MIMEPART_CHARSET", "x-no-such-charset")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, mimepart.Charset("x-no-such-charset"), cfg.Charset())
	require.Len(t, cfg.Warnings(), 1)
	assert.Contains(t, cfg.Warnings()[0], "MIMEPART_CHARSET")
}

func TestNormalizeCharset(t *testing.T) {
	testCases := []struct {
		input    mimepart.Charset
		expected mimepart.Charset
		wantErr  bool
	}{
		{input: "", expected: ""},
		{input: "  ", expected: ""},
		{input: "latin1", expected: "ISO-8859-1"},
		{input: "UTF-8", expected: "UTF-8"},
		{input: " x-no-such-charset ", expected: "x-no-such-charset", wantErr: true},
	}

	for _, testCase := range testCases {
		t.Run(string(testCase.input), func(t *testing.T) {
			charset, err := NormalizeCharset(testCase.input)
			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, testCase.expected, charset)
		})
	}
}

func TestConfigNewLogger(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		cfg, err := Load(viper.New())
		require.NoError(t, err)

		output := &bytes.Buffer{}
		logger := cfg.NewLogger(output)
		logger.Infof(log.Log{Stage: log.StageEncode, Format: "suppressed"})
		logger.Warnf(log.Log{Stage: log.StageEncode, Format: "visible %d", Messages: []interface{}{1}})

		assert.NotContains(t, output.String(), "suppressed")
		assert.Contains(t, output.String(), "WARN: stage=encode visible 1")
	})
	t.Run("json", func(t *testing.T) {
		t.Setenv("MIMEPART_LOG_FORMAT", "json")
		cfg, err := Load(viper.New())
		require.NoError(t, err)

		output := &bytes.Buffer{}
		cfg.NewLogger(output).Warnf(log.Log{Stage: log.StageHeader, Format: "visible"})

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(output.String())), &entry))
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "visible", entry["msg"])
		assert.Equal(t, "header", entry[log.StageString])
	})
	t.Run("logrus", func(t *testing.T) {
		t.Setenv("MIMEPART_LOG_FORMAT", "logrus")
		cfg, err := Load(viper.New())
		require.NoError(t, err)
		assert.Equal(t, LogFormatLogrus, cfg.LogFormat())

		output := &bytes.Buffer{}
		cfg.NewLogger(output).Warnf(log.Log{Stage: log.StageSource, Format: "visible"})

		assert.Contains(t, output.String(), "level=warning")
		assert.Contains(t, output.String(), "msg=visible")
		assert.Contains(t, output.String(), "stage=source")
	})
}
