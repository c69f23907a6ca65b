// Package zapsink forwards dispatch payloads into a zap logger.
package zapsink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logtree/core"
)

// TargetKey is the field the record's target is logged under
const TargetKey = "target"

// Sink is a sink.Logger backed by a *zap.Logger
type Sink struct {
	logger *zap.Logger
}

// New creates a sink writing to l
func New(l *zap.Logger) *Sink {
	return &Sink{logger: l}
}

// LogPayload implements sink.Logger
func (s *Sink) LogPayload(payload string, rec *core.Record) {
	ce := s.logger.Check(Level(rec.Level), payload)
	if ce == nil {
		return
	}
	if rec.Target != "" {
		ce.Write(zap.String(TargetKey, rec.Target))
		return
	}
	ce.Write()
}

// Flush implements sink.Flusher
func (s *Sink) Flush() error {
	return s.logger.Sync()
}

// Level maps a record level to zap. zap has no trace level.
func Level(l core.Level) zapcore.Level {
	switch l {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
