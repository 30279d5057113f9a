// SPDX-FileCopyrightText: Copyright (c) The go-mail Authors
//
// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	var b bytes.Buffer
	l := New(&b, LevelDebug)
	if l.level != LevelDebug {
		t.Error("Expected level to be LevelDebug, got ", l.level)
	}
	if l.err == nil || l.warn == nil || l.info == nil || l.debug == nil {
		t.Error("Loggers not initialized")
	}
}

func TestDebugf(t *testing.T) {
	var b bytes.Buffer
	l := New(&b, LevelDebug)

	l.Debugf(Log{Stage: StageEncode, Format: "test %s", Messages: []interface{}{"foo"}})
	expected := "DEBUG: stage=encode test foo\n"
	if !strings.HasSuffix(b.String(), expected) {
		t.Errorf("Expected %q, got %q", expected, b.String())
	}
	l.Debugf(Log{Stage: StageSource, Format: "test %s", Messages: []interface{}{"foo"}})
	expected = "DEBUG: stage=source test foo\n"
	if !strings.HasSuffix(b.String(), expected) {
		t.Errorf("Expected %q, got %q", expected, b.String())
	}

	b.Reset()
	l.level = LevelInfo
	l.Debugf(Log{Stage: StageEncode, Format: "test %s", Messages: []interface{}{"foo"}})
	if b.String() != "" {
		t.Error("Debug message was not expected to be logged")
	}
}

func TestInfof(t *testing.T) {
	var b bytes.Buffer
	l := New(&b, LevelInfo)

	l.Infof(Log{Stage: StageHeader, Format: "test %s", Messages: []interface{}{"foo"}})
	expected := " INFO: stage=header test foo\n"
	if !strings.HasSuffix(b.String(), expected) {
		t.Errorf("Expected %q, got %q", expected, b.String())
	}

	b.Reset()
	l.level = LevelWarn
	l.Infof(Log{Stage: StageHeader, Format: "test %s", Messages: []interface{}{"foo"}})
	if b.String() != "" {
		t.Error("Info message was not expected to be logged")
	}
}

func TestWarnf(t *testing.T) {
	var b bytes.Buffer
	l := New(&b, LevelWarn)

	l.Warnf(Log{Stage: StageSource, Format: "test %s", Messages: []interface{}{"foo"}})
	expected := " WARN: stage=source test foo\n"
	if !strings.HasSuffix(b.String(), expected) {
		t.Errorf("Expected %q, got %q", expected, b.String())
	}

	b.Reset()
	l.level = LevelError
	l.Warnf(Log{Stage: StageSource, Format: "test %s", Messages: []interface{}{"foo"}})
	if b.String() != "" {
		t.Error("Warn message was not expected to be logged")
	}
}

func TestErrorf(t *testing.T) {
	var b bytes.Buffer
	l := New(&b, LevelError)

	l.Errorf(Log{Stage: Stage(99), Format: "test %s", Messages: []interface{}{"foo"}})
	expected := "ERROR: stage=unknown test foo\n"
	if !strings.HasSuffix(b.String(), expected) {
		t.Errorf("Expected %q, got %q", expected, b.String())
	}

	b.Reset()
	l.level = -99
	l.Errorf(Log{Stage: StageEncode, Format: "test %s", Messages: []interface{}{"foo"}})
	if b.String() != "" {
		t.Error("Error message was not expected to be logged")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    Level
		wantErr bool
	}{
		{"error", "error", LevelError, false},
		{"warn upper case", "WARN", LevelWarn, false},
		{"warning", "warning", LevelWarn, false},
		{"info", "info", LevelInfo, false},
		{"empty defaults to info", "", LevelInfo, false},
		{"debug with whitespace", " debug ", LevelDebug, false},
		{"unknown", "verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.level)
			if tt.wantErr && err == nil {
				t.Errorf("ParseLevel(%q) was supposed to fail, but didn't", tt.level)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ParseLevel(%q) failed: %s", tt.level, err)
			}
			if level != tt.want {
				t.Errorf("ParseLevel(%q) failed, expected: %d, got: %d", tt.level, tt.want, level)
			}
		})
	}
}

func TestStdlog_withoutMessages(t *testing.T) {
	var b bytes.Buffer
	l := New(&b, LevelInfo)

	l.Infof(Log{Stage: StageEncode, Format: "100% done"})
	expected := " INFO: stage=encode 100% done\n"
	if !strings.HasSuffix(b.String(), expected) {
		t.Errorf("Expected %q, got %q", expected, b.String())
	}
}
