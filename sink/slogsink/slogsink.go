// Package slogsink forwards dispatch payloads into a log/slog handler.
package slogsink

import (
	"context"
	"log/slog"

	"github.com/philipp01105/logtree/core"
)

// LevelTrace sits below slog.LevelDebug
const LevelTrace = slog.Level(-8)

// Sink is a sink.Logger backed by a slog.Handler
type Sink struct {
	handler slog.Handler
}

// New creates a sink writing to h
func New(h slog.Handler) *Sink {
	return &Sink{handler: h}
}

// LogPayload implements sink.Logger. Handler errors are dropped, a custom
// sink has no way to report them.
func (s *Sink) LogPayload(payload string, rec *core.Record) {
	ctx := context.Background()
	level := Level(rec.Level)
	if !s.handler.Enabled(ctx, level) {
		return
	}
	r := slog.NewRecord(rec.Time, level, payload, 0)
	if rec.Target != "" {
		r.AddAttrs(slog.String("target", rec.Target))
	}
	_ = s.handler.Handle(ctx, r)
}

// Level maps a record level to slog
func Level(l core.Level) slog.Level {
	switch l {
	case core.TraceLevel:
		return LevelTrace
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
