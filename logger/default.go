package logger

import (
	"github.com/philipp01105/logtree/core"
)

// Package-level functions log under the caller's package path as target.

// Enabled reports whether the installed logger keeps records of this
// level and target
func Enabled(level Level, target string) bool {
	return Installed().Enabled(core.Metadata{Level: level, Target: target})
}

// Trace logs a trace message
func Trace(msg string) {
	emit(core.TraceLevel, "", false, msg, nil)
}

// Debug logs a debug message
func Debug(msg string) {
	emit(core.DebugLevel, "", false, msg, nil)
}

// Info logs an info message
func Info(msg string) {
	emit(core.InfoLevel, "", false, msg, nil)
}

// Warn logs a warning message
func Warn(msg string) {
	emit(core.WarnLevel, "", false, msg, nil)
}

// Error logs an error message
func Error(msg string) {
	emit(core.ErrorLevel, "", false, msg, nil)
}

// Tracef logs a trace message with formatting
func Tracef(format string, args ...interface{}) {
	emit(core.TraceLevel, "", true, format, args)
}

// Debugf logs a debug message with formatting
func Debugf(format string, args ...interface{}) {
	emit(core.DebugLevel, "", true, format, args)
}

// Infof logs an info message with formatting
func Infof(format string, args ...interface{}) {
	emit(core.InfoLevel, "", true, format, args)
}

// Warnf logs a warning message with formatting
func Warnf(format string, args ...interface{}) {
	emit(core.WarnLevel, "", true, format, args)
}

// Errorf logs an error message with formatting
func Errorf(format string, args ...interface{}) {
	emit(core.ErrorLevel, "", true, format, args)
}

// Target logs under a fixed target instead of the caller's package
type Target struct {
	name string
}

// For returns a logger bound to target
//
//	log := logger.For("db::pool")
//	log.Warnf("pool exhausted after %d waits", n)
func For(target string) *Target {
	return &Target{name: target}
}

// Name returns the target
func (t *Target) Name() string {
	return t.name
}

// Enabled reports whether the installed logger keeps records of this
// level for t
func (t *Target) Enabled(level Level) bool {
	return Enabled(level, t.name)
}

// Log logs a message at the specified level
func (t *Target) Log(level Level, msg string) {
	emit(level, t.name, false, msg, nil)
}

// Logf logs a message at the specified level with formatting
func (t *Target) Logf(level Level, format string, args ...interface{}) {
	emit(level, t.name, true, format, args)
}

// Trace logs a trace message
func (t *Target) Trace(msg string) {
	emit(core.TraceLevel, t.name, false, msg, nil)
}

// Debug logs a debug message
func (t *Target) Debug(msg string) {
	emit(core.DebugLevel, t.name, false, msg, nil)
}

// Info logs an info message
func (t *Target) Info(msg string) {
	emit(core.InfoLevel, t.name, false, msg, nil)
}

// Warn logs a warning message
func (t *Target) Warn(msg string) {
	emit(core.WarnLevel, t.name, false, msg, nil)
}

// Error logs an error message
func (t *Target) Error(msg string) {
	emit(core.ErrorLevel, t.name, false, msg, nil)
}

// Tracef logs a trace message with formatting
func (t *Target) Tracef(format string, args ...interface{}) {
	emit(core.TraceLevel, t.name, true, format, args)
}

// Debugf logs a debug message with formatting
func (t *Target) Debugf(format string, args ...interface{}) {
	emit(core.DebugLevel, t.name, true, format, args)
}

// Infof logs an info message with formatting
func (t *Target) Infof(format string, args ...interface{}) {
	emit(core.InfoLevel, t.name, true, format, args)
}

// Warnf logs a warning message with formatting
func (t *Target) Warnf(format string, args ...interface{}) {
	emit(core.WarnLevel, t.name, true, format, args)
}

// Errorf logs an error message with formatting
func (t *Target) Errorf(format string, args ...interface{}) {
	emit(core.ErrorLevel, t.name, true, format, args)
}
