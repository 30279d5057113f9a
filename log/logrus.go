// SPDX-FileCopyrightText: Copyright (c) The go-mail Authors
//
// SPDX-License-Identifier: MIT

package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logrus is a logger that satisfies the Logger interface and forwards all messages to a
// logrus.Logger with the stage as field
type Logrus struct {
	level Level
	log   *logrus.Logger
}

// NewLogrus returns a new Logrus type that satisfies the Logger interface
func NewLogrus(output io.Writer, level Level) *Logrus {
	logger := logrus.New()
	logger.SetOutput(output)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	switch level {
	case LevelError:
		logger.SetLevel(logrus.ErrorLevel)
	case LevelWarn:
		logger.SetLevel(logrus.WarnLevel)
	case LevelInfo:
		logger.SetLevel(logrus.InfoLevel)
	default:
		logger.SetLevel(logrus.DebugLevel)
	}
	return &Logrus{
		level: level,
		log:   logger,
	}
}

// Debugf logs a debug message via logrus
func (l *Logrus) Debugf(log Log) {
	if l.level >= LevelDebug {
		l.log.WithField(StageString, log.Stage.String()).Debugf(log.Format, log.Messages...)
	}
}

// Infof logs a info message via logrus
func (l *Logrus) Infof(log Log) {
	if l.level >= LevelInfo {
		l.log.WithField(StageString, log.Stage.String()).Infof(log.Format, log.Messages...)
	}
}

// Warnf logs a warn message via logrus
func (l *Logrus) Warnf(log Log) {
	if l.level >= LevelWarn {
		l.log.WithField(StageString, log.Stage.String()).Warnf(log.Format, log.Messages...)
	}
}

// Errorf logs a error message via logrus
func (l *Logrus) Errorf(log Log) {
	if l.level >= LevelError {
		l.log.WithField(StageString, log.Stage.String()).Errorf(log.Format, log.Messages...)
	}
}
