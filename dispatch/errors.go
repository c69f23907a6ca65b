package dispatch

import (
	"github.com/pkg/errors"

	"github.com/philipp01105/logtree/logger"
	"github.com/philipp01105/logtree/sink"
)

// ErrAlreadyInstalled is the cause of an InitError returned by SetGlobal
// when another logger already occupies the global slot.
var ErrAlreadyInstalled = logger.ErrAlreadySet

var (
	// ErrUnsupportedOutput is recorded by Chain for values it cannot route to
	ErrUnsupportedOutput = errors.New("dispatch: unsupported output")
	// ErrCycle is returned by Build when a dispatch is chained into itself
	ErrCycle = errors.New("dispatch: dispatch chained into itself")
)

// Op names the step of tree construction an InitError comes from
type Op string

const (
	// OpOpen is opening a file for ChainFile
	OpOpen Op = "open"
	// OpInstall is registering the tree as the global logger
	OpInstall Op = "install"
)

// InitError combines the failures that can occur while building a tree
// and installing it: an I/O error from a file output, or the global slot
// being taken already.
type InitError struct {
	Op   Op
	Path string
	Err  error
}

func (e *InitError) Error() string {
	switch e.Op {
	case OpOpen:
		return "dispatch: io error initializing logger: " + e.Err.Error()
	case OpInstall:
		return "dispatch: logging initialization failed: " + e.Err.Error()
	default:
		return "dispatch: " + e.Err.Error()
	}
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// WriteError is a failed write to one sink during dispatch. It never
// stops delivery to the sink's siblings.
type WriteError struct {
	Sink string
	Err  error
}

func (e *WriteError) Error() string {
	return "dispatch: write to " + e.Sink + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// describe names a sink for WriteError
func describe(s sink.Sink) string {
	switch o := s.(type) {
	case *sink.File:
		return "file " + o.Name()
	case *sink.Stream:
		return "stream"
	case *sink.Custom:
		return "custom sink"
	default:
		return "sink"
	}
}
