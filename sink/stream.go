package sink

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/logtree/core"
)

// Stream writes one line per payload to an io.Writer
type Stream struct {
	mu     sync.Mutex
	writer io.Writer
	stats  Stats
}

// NewStream creates a stream sink. Writes are serialized, so w does not
// need to be safe for concurrent use.
func NewStream(w io.Writer) *Stream {
	return &Stream{writer: w}
}

// Stdout returns a stream sink writing to os.Stdout
func Stdout() *Stream {
	return NewStream(os.Stdout)
}

// Stderr returns a stream sink writing to os.Stderr
func Stderr() *Stream {
	return NewStream(os.Stderr)
}

// Write implements Sink
func (s *Stream) Write(payload string, _ *core.Record) error {
	s.mu.Lock()
	err := writeLine(s.writer, payload)
	s.mu.Unlock()

	s.stats.record(err)
	return err
}

// Flush flushes writers that buffer, such as *bufio.Writer
func (s *Stream) Flush() error {
	f, ok := s.writer.(interface{ Flush() error })
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return f.Flush()
}

// Stats returns a snapshot of the current statistics
func (s *Stream) Stats() Snapshot {
	return s.stats.GetSnapshot()
}

// writeLine writes payload followed by a newline
func writeLine(w io.Writer, payload string) error {
	if sw, ok := w.(io.StringWriter); ok {
		if _, err := sw.WriteString(payload); err != nil {
			return err
		}
		_, err := sw.WriteString("\n")
		return err
	}
	if _, err := io.WriteString(w, payload); err != nil {
		return err
	}
	_, err := w.Write(newline)
	return err
}

var newline = []byte{'\n'}
