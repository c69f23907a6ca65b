package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/philipp01105/logtree/core"
)

// SlogTarget is the target of slog records that name none
const SlogTarget = "slog"

// SlogHandler is an adapter that implements slog.Handler on top of the
// installed logger, so slog (and, after RedirectSlog, the standard log
// package) is routed through the same tree.
//
// Records carry no structured fields, so attributes are rendered into the
// message as key=value pairs. A "target" attribute sets the record's
// target; otherwise the innermost group name is used.
type SlogHandler struct {
	attrs    []slog.Attr
	group    string
	target   string
	explicit bool // target came from an attribute
}

// NewSlogHandler creates a new slog.Handler adapter
func NewSlogHandler() *SlogHandler {
	return &SlogHandler{target: SlogTarget}
}

// RedirectSlog makes the slog default logger write through the installed
// logger
func RedirectSlog() {
	slog.SetDefault(slog.New(NewSlogHandler()))
}

// Enabled reports whether the handler handles records at the given level.
// Unless the target was fixed with WithAttrs, a record can still name its
// own target, so the decision is left to the installed logger.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	if !s.explicit {
		return IsInstalled()
	}
	return Installed().Enabled(core.Metadata{Level: slogLevelToCore(level), Target: s.target})
}

// Handle converts a slog.Record and routes it through the installed logger.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	log := Installed()

	rec := core.GetRecord()
	defer core.PutRecord(rec)

	rec.Time = record.Time
	if rec.Time.IsZero() {
		rec.Time = time.Now()
	}
	rec.Level = slogLevelToCore(record.Level)
	rec.Target = s.target

	buf := make([]byte, 0, len(record.Message)+64)
	buf = append(buf, record.Message...)
	for _, a := range s.attrs {
		buf = appendAttr(buf, s.group, a)
	}
	record.Attrs(func(a slog.Attr) bool {
		if a.Key == "target" {
			rec.Target = a.Value.String()
			return true
		}
		buf = appendAttr(buf, s.group, a)
		return true
	})
	rec.SetText(string(buf))

	if record.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{record.PC})
		f, _ := frames.Next()
		rec.Caller = core.CallerInfo{
			File:      f.File,
			ShortFile: filepath.Base(f.File),
			Line:      f.Line,
			Function:  f.Function,
			Defined:   f.File != "",
		}
	}

	log.Log(rec)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h := &SlogHandler{
		attrs:    make([]slog.Attr, len(s.attrs), len(s.attrs)+len(attrs)),
		group:    s.group,
		target:   s.target,
		explicit: s.explicit,
	}
	copy(h.attrs, s.attrs)
	for _, a := range attrs {
		if a.Key == "target" {
			h.target = a.Value.String()
			h.explicit = true
			continue
		}
		h.attrs = append(h.attrs, a)
	}
	return h
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	newAttrs := make([]slog.Attr, len(s.attrs))
	copy(newAttrs, s.attrs)
	target := name
	if s.explicit {
		target = s.target
	}
	return &SlogHandler{
		attrs:    newAttrs,
		group:    newGroup,
		target:   target,
		explicit: s.explicit,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr renders " key=value", prepending the group prefix if present.
func appendAttr(buf []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, key, ga)
		}
		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, key...)
	buf = append(buf, '=')
	switch a.Value.Kind() {
	case slog.KindString:
		s := a.Value.String()
		if needsQuote(s) {
			return strconv.AppendQuote(buf, s)
		}
		return append(buf, s...)
	case slog.KindInt64:
		return strconv.AppendInt(buf, a.Value.Int64(), 10)
	case slog.KindUint64:
		return strconv.AppendUint(buf, a.Value.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.AppendFloat(buf, a.Value.Float64(), 'f', -1, 64)
	case slog.KindBool:
		return strconv.AppendBool(buf, a.Value.Bool())
	case slog.KindDuration:
		return append(buf, a.Value.Duration().String()...)
	case slog.KindTime:
		return a.Value.Time().AppendFormat(buf, time.RFC3339)
	default:
		return append(buf, a.Value.String()...)
	}
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c <= ' ' || c == '=' || c == '"' {
			return true
		}
	}
	return false
}
