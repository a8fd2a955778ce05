/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger provides leveled logging for pivotview.
// The default implementation writes through logrus with a prefixed text
// formatter; any Logger can be installed with SetDefault.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Prefix is the component name printed in front of every message.
const Prefix = "pivotview"

// Level defines log levels
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	// OFF disables logging
	OFF
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case OFF:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel accepts the level names in any case.
func ParseLevel(s string) (Level, error) {
	for l := DEBUG; l <= OFF; l++ {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}
	return OFF, fmt.Errorf("unknown log level %q", s)
}

// Logger interface defines basic methods for logging
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	SetLevel(level Level)
}

// logrusLogger gates messages by Level and hands them to a logrus entry.
type logrusLogger struct {
	level Level
	entry *logrus.Entry
}

// NewLogger creates a logger writing formatted lines to output.
//
//	log := NewLogger(INFO, os.Stderr)
//	log.Info("view built with %d rows", n)
func NewLogger(level Level, output io.Writer) Logger {
	backend := logrus.New()
	backend.Out = output
	backend.Formatter = &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05.000",
		FullTimestamp:   true,
		ForceFormatting: true,
	}
	return FromLogrus(backend, level)
}

// FromLogrus adapts an existing logrus logger. The logrus level is opened up
// to Debug so that level alone decides what is written.
func FromLogrus(backend *logrus.Logger, level Level) Logger {
	backend.SetLevel(logrus.DebugLevel)
	return &logrusLogger{
		level: level,
		entry: backend.WithField("prefix", Prefix),
	}
}

func (l *logrusLogger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

func (l *logrusLogger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

func (l *logrusLogger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

func (l *logrusLogger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

func (l *logrusLogger) SetLevel(level Level) {
	l.level = level
}

func (l *logrusLogger) log(level Level, format string, args ...interface{}) {
	if l.level == OFF || level < l.level {
		return
	}
	message := fmt.Sprintf(format, args...)
	switch level {
	case DEBUG:
		l.entry.Debug(message)
	case INFO:
		l.entry.Info(message)
	case WARN:
		l.entry.Warn(message)
	default:
		l.entry.Error(message)
	}
}

type discardLogger struct{}

// NewDiscardLogger creates a logger that drops every message.
func NewDiscardLogger() Logger {
	return &discardLogger{}
}

func (d *discardLogger) Debug(format string, args ...interface{}) {}
func (d *discardLogger) Info(format string, args ...interface{})  {}
func (d *discardLogger) Warn(format string, args ...interface{})  {}
func (d *discardLogger) Error(format string, args ...interface{}) {}
func (d *discardLogger) SetLevel(level Level)                     {}

var defaultInstance Logger = NewLogger(INFO, os.Stderr)

// SetDefault sets the global default logger
func SetDefault(logger Logger) {
	defaultInstance = logger
}

// GetDefault gets the global default logger
func GetDefault() Logger {
	return defaultInstance
}

func Debug(format string, args ...interface{}) {
	defaultInstance.Debug(format, args...)
}

func Info(format string, args ...interface{}) {
	defaultInstance.Info(format, args...)
}

func Warn(format string, args ...interface{}) {
	defaultInstance.Warn(format, args...)
}

func Error(format string, args ...interface{}) {
	defaultInstance.Error(format, args...)
}
