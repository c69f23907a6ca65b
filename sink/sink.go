package sink

import (
	"github.com/philipp01105/logtree/core"
)

// Sink is a child of a dispatch node. It receives the payload produced by
// its parent (already formatted) together with the original record.
type Sink interface {
	// Write delivers one payload. Stream and file sinks append a newline.
	Write(payload string, rec *core.Record) error

	// Flush pushes out anything the sink holds
	Flush() error
}

// Logger is the capability a custom sink implements. Unlike a plain
// logger it is handed the payload the tree produced, not the record's own
// message, and must log that payload instead.
type Logger interface {
	LogPayload(payload string, rec *core.Record)
}

// LoggerFunc adapts a function to the Logger interface
type LoggerFunc func(payload string, rec *core.Record)

// LogPayload calls f
func (f LoggerFunc) LogPayload(payload string, rec *core.Record) {
	f(payload, rec)
}

// Flusher is implemented by custom sinks that hold buffered output
type Flusher interface {
	Flush() error
}

// Custom wraps a Logger so it can sit in a dispatch node
type Custom struct {
	logger Logger
}

// NewCustom wraps l
func NewCustom(l Logger) *Custom {
	return &Custom{logger: l}
}

// Write implements Sink. Custom sinks cannot report failures.
func (c *Custom) Write(payload string, rec *core.Record) error {
	c.logger.LogPayload(payload, rec)
	return nil
}

// Flush forwards to the wrapped logger when it implements Flusher
func (c *Custom) Flush() error {
	if f, ok := c.logger.(Flusher); ok {
		return f.Flush()
	}
	return nil
}
