package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/logtree/core"
)

// Formatter rewrites a message before it is handed to the children of a
// dispatch node. Implementations write the new message into buf instead of
// returning a string, so formatting never needs an intermediate allocation.
//
// message is the text produced by the parent node (or the record's own
// message at the root); rec gives access to level, target and caller.
type Formatter interface {
	Format(buf *bytes.Buffer, message string, rec *core.Record)
}

// Func adapts a plain function to the Formatter interface
type Func func(buf *bytes.Buffer, message string, rec *core.Record)

// Format calls f
func (f Func) Format(buf *bytes.Buffer, message string, rec *core.Record) {
	f(buf, message, rec)
}

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer returns an empty buffer from the shared pool
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer hands buf back to the pool
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Wrap surrounds the message with prefix and suffix
func Wrap(prefix, suffix string) Func {
	return func(buf *bytes.Buffer, message string, _ *core.Record) {
		buf.WriteString(prefix)
		buf.WriteString(message)
		buf.WriteString(suffix)
	}
}

// Prefix puts p in front of the message
func Prefix(p string) Func {
	return Wrap(p, "")
}
