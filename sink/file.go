package sink

import (
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/philipp01105/logtree/core"
	"github.com/philipp01105/logtree/formatter"
)

// OpenFile opens path for logging: write-only, created if absent,
// appended to if present.
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return f, nil
}

// File writes one line per payload to an open file
type File struct {
	mu     sync.Mutex
	file   *os.File
	closed bool
	stats  Stats
}

// NewFile wraps an already opened file
func NewFile(f *os.File) *File {
	return &File{file: f}
}

// Name returns the file name
func (h *File) Name() string {
	return h.file.Name()
}

// Write implements Sink
func (h *File) Write(payload string, _ *core.Record) error {
	// A single write keeps concurrent appenders from interleaving a line.
	buf := formatter.GetBuffer()
	buf.WriteString(payload)
	buf.WriteByte('\n')

	h.mu.Lock()
	_, err := h.file.Write(buf.Bytes())
	h.mu.Unlock()
	formatter.PutBuffer(buf)

	h.stats.record(err)
	return err
}

// Flush syncs the file to disk. Standard streams cannot be synced on every
// platform, that case is not reported.
func (h *File) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.file.Sync(); err != nil && !isStdStream(h.file) {
		return errors.Wrapf(err, "sync %s", h.file.Name())
	}
	return nil
}

// Close syncs and closes the file. Standard streams are only flushed.
// Closing twice is a no-op, so trees sharing a nested node can each be
// closed.
func (h *File) Close() error {
	if isStdStream(h.file) {
		return h.Flush()
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true

	if err := h.file.Sync(); err != nil {
		_ = h.file.Close()
		return errors.Wrapf(err, "sync %s", h.file.Name())
	}
	return errors.WithStack(h.file.Close())
}

// Stats returns a snapshot of the current statistics
func (h *File) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

func isStdStream(f *os.File) bool {
	return f == os.Stdout || f == os.Stderr
}
