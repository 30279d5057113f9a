// SPDX-FileCopyrightText: Copyright (c) 2022-2023 The go-mail Authors
//
// SPDX-License-Identifier: MIT

// Package log implements a logger interface that can be used within the mimepart package
package log

import (
	"fmt"
	"strings"
)

const (
	StageSource Stage = iota // Reading the content source of a Part
	StageEncode              // Applying the transfer encoding
	StageHeader              // Assembling the MIME headers
)

const (
	// LevelError is the Level for only ERROR log messages
	LevelError Level = iota
	// LevelWarn is the Level for WARN and higher log messages
	LevelWarn
	// LevelInfo is the Level for INFO and higher log messages
	LevelInfo
	// LevelDebug is the Level for DEBUG and higher log messages
	LevelDebug
)

// StageString is the key of the stage attribute in structured log output
const StageString = "stage"

// Stage is a type wrapper for the processing stage a log message relates to
type Stage int

// Level is a type wrapper for an int
type Level int

// Log represents a log message type that holds a processing Stage, a Format string
// and a slice of Messages
type Log struct {
	Stage    Stage
	Format   string
	Messages []interface{}
}

// Logger is the log interface for mimepart
type Logger interface {
	Debugf(Log)
	Infof(Log)
	Warnf(Log)
	Errorf(Log)
}

// ParseLevel returns the Level for a level name like "debug" or "WARN"
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info", "":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// String satisfies the fmt.Stringer interface for the Stage type
func (s Stage) String() string {
	switch s {
	case StageSource:
		return "source"
	case StageEncode:
		return "encode"
	case StageHeader:
		return "header"
	default:
		return "unknown"
	}
}

// stageField returns the stage of the Log as key=value pair for plain text output
func (l Log) stageField() string {
	return StageString + "=" + l.Stage.String()
}
