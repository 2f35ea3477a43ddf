/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package common contains the logging facilities shared by the unitype packages.
package common

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the interface used for logging in the unitype packages.
type Logger interface {
	Error(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Notice(format string, args ...interface{})
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Trace(format string, args ...interface{})
	IsLogLevel(level LogLevel) bool
}

// LogLevel is the verbosity level for logging.
type LogLevel int

// Defines log level enum where the most important logs have the lowest values.
// I.e. level error = 0 and level trace = 5
const (
	LogLevelTrace   LogLevel = 5
	LogLevelDebug   LogLevel = 4
	LogLevelInfo    LogLevel = 3
	LogLevelNotice  LogLevel = 2
	LogLevelWarning LogLevel = 1
	LogLevelError   LogLevel = 0
)

// DummyLogger does nothing.
type DummyLogger struct{}

func (DummyLogger) Error(format string, args ...interface{})   {}
func (DummyLogger) Warning(format string, args ...interface{}) {}
func (DummyLogger) Notice(format string, args ...interface{})  {}
func (DummyLogger) Info(format string, args ...interface{})    {}
func (DummyLogger) Debug(format string, args ...interface{})   {}
func (DummyLogger) Trace(format string, args ...interface{})   {}

// IsLogLevel always returns false for the dummy logger.
func (DummyLogger) IsLogLevel(level LogLevel) bool {
	return false
}

// LogrusLogger forwards log messages to a logrus logger.
type LogrusLogger struct {
	LogLevel LogLevel
	entry    *logrus.Entry
}

// NewConsoleLogger returns a logger that writes messages up to `logLevel` to stdout.
func NewConsoleLogger(logLevel LogLevel) *LogrusLogger {
	return NewWriterLogger(logLevel, os.Stdout)
}

// NewWriterLogger returns a logger that writes messages up to `logLevel` to `w`.
func NewWriterLogger(logLevel LogLevel, w io.Writer) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	l.SetLevel(toLogrusLevel(logLevel))
	return NewLogrusLogger(logLevel, l)
}

// NewLogrusLogger wraps an existing logrus logger. Messages are tagged with the
// `component` field so they can be told apart from the host application's output.
func NewLogrusLogger(logLevel LogLevel, l *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{
		LogLevel: logLevel,
		entry:    l.WithField("component", "unitype"),
	}
}

// IsLogLevel returns true if messages at `level` are logged.
func (l LogrusLogger) IsLogLevel(level LogLevel) bool {
	return l.LogLevel >= level
}

func (l LogrusLogger) Error(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelError {
		l.entry.Errorf(format, args...)
	}
}

func (l LogrusLogger) Warning(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelWarning {
		l.entry.Warnf(format, args...)
	}
}

// Notice has no logrus counterpart and is logged at info level with a marker field.
func (l LogrusLogger) Notice(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelNotice {
		l.entry.WithField("notice", true).Infof(format, args...)
	}
}

func (l LogrusLogger) Info(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelInfo {
		l.entry.Infof(format, args...)
	}
}

func (l LogrusLogger) Debug(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelDebug {
		l.entry.Debugf(format, args...)
	}
}

func (l LogrusLogger) Trace(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelTrace {
		l.entry.Tracef(format, args...)
	}
}

func toLogrusLevel(level LogLevel) logrus.Level {
	switch {
	case level >= LogLevelTrace:
		return logrus.TraceLevel
	case level == LogLevelDebug:
		return logrus.DebugLevel
	case level == LogLevelInfo, level == LogLevelNotice:
		return logrus.InfoLevel
	case level == LogLevelWarning:
		return logrus.WarnLevel
	}
	return logrus.ErrorLevel
}

// Log is the logger used by the unitype packages. Silent by default.
var Log Logger = DummyLogger{}

// SetLogger sets `logger` to be used by the unitype packages.
func SetLogger(logger Logger) {
	Log = logger
}
