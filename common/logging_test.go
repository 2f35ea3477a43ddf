/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package common

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(LogLevelDebug, &buf)

	l.Debug("parsed %d tables", 6)
	l.Trace("hidden %d", 1)
	l.Error("bad magic 0x%X", 0xDEAD)

	out := buf.String()
	assert.Contains(t, out, `msg="parsed 6 tables"`)
	assert.Contains(t, out, "level=debug")
	assert.Contains(t, out, "level=error")
	assert.Contains(t, out, "component=unitype")
	assert.NotContains(t, out, "hidden")

	assert.True(t, l.IsLogLevel(LogLevelDebug))
	assert.True(t, l.IsLogLevel(LogLevelError))
	assert.False(t, l.IsLogLevel(LogLevelTrace))
}

func TestNoticeLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(LogLevelNotice, &buf)

	l.Notice("font %s", "Go")
	l.Info("skipped")

	out := buf.String()
	assert.Contains(t, out, "notice=true")
	assert.NotContains(t, out, "skipped")
}

func TestLogrusLevels(t *testing.T) {
	assert.Equal(t, logrus.TraceLevel, toLogrusLevel(LogLevelTrace))
	assert.Equal(t, logrus.DebugLevel, toLogrusLevel(LogLevelDebug))
	assert.Equal(t, logrus.InfoLevel, toLogrusLevel(LogLevelInfo))
	assert.Equal(t, logrus.InfoLevel, toLogrusLevel(LogLevelNotice))
	assert.Equal(t, logrus.WarnLevel, toLogrusLevel(LogLevelWarning))
	assert.Equal(t, logrus.ErrorLevel, toLogrusLevel(LogLevelError))
}

func TestSetLogger(t *testing.T) {
	orig := Log
	defer SetLogger(orig)

	var buf bytes.Buffer
	SetLogger(NewWriterLogger(LogLevelInfo, &buf))
	Log.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")

	SetLogger(DummyLogger{})
	Log.Error("dropped")
	assert.NotContains(t, buf.String(), "dropped")
	assert.False(t, Log.IsLogLevel(LogLevelError))
}
