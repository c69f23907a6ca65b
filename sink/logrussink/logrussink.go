// Package logrussink forwards dispatch payloads into a logrus logger.
package logrussink

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/logtree/core"
)

// Sink is a sink.Logger backed by a *logrus.Logger
type Sink struct {
	logger *logrus.Logger
}

// New creates a sink writing to l
func New(l *logrus.Logger) *Sink {
	return &Sink{logger: l}
}

// LogPayload implements sink.Logger
func (s *Sink) LogPayload(payload string, rec *core.Record) {
	level := Level(rec.Level)
	if !s.logger.IsLevelEnabled(level) {
		return
	}
	entry := logrus.NewEntry(s.logger).WithTime(rec.Time)
	if rec.Target != "" {
		entry = entry.WithField("target", rec.Target)
	}
	entry.Log(level, payload)
}

// Level maps a record level to logrus
func Level(l core.Level) logrus.Level {
	switch l {
	case core.TraceLevel:
		return logrus.TraceLevel
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
