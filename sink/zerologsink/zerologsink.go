// Package zerologsink forwards dispatch payloads into a zerolog logger.
package zerologsink

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/logtree/core"
)

// Sink is a sink.Logger backed by a zerolog.Logger
type Sink struct {
	logger zerolog.Logger
}

// New creates a sink writing to l
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(l zerolog.Logger) *Sink {
	return &Sink{logger: l}
}

// LogPayload implements sink.Logger
func (s *Sink) LogPayload(payload string, rec *core.Record) {
	event := s.logger.WithLevel(Level(rec.Level))
	if event == nil {
		return
	}
	if rec.Target != "" {
		event = event.Str("target", rec.Target)
	}
	event.Msg(payload)
}

// Level maps a record level to zerolog
func Level(l core.Level) zerolog.Level {
	switch l {
	case core.TraceLevel:
		return zerolog.TraceLevel
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}
