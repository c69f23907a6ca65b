package logger

import (
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/philipp01105/logtree/core"
)

// Log is the process-wide logger the facade hands every record to
type Log interface {
	// Enabled reports whether a record with this metadata would be kept
	Enabled(meta core.Metadata) bool

	// Log routes one record. It must not retain rec after returning.
	Log(rec *core.Record)

	// Flush flushes buffered output
	Flush() error
}

// ErrAlreadySet is returned by SetLogger once a logger is installed
var ErrAlreadySet = errors.New("logger: a global logger is already set")

type slot struct {
	log Log
}

// installed starts nil and is swapped exactly once
var installed atomic.Pointer[slot]

// SetLogger installs l as the global logger. Only the first call
// succeeds; later calls return ErrAlreadySet and change nothing.
func SetLogger(l Log) error {
	if l == nil {
		return errors.New("logger: nil Log")
	}
	if !installed.CompareAndSwap(nil, &slot{log: l}) {
		return ErrAlreadySet
	}
	return nil
}

// Installed returns the global logger, or a logger that drops everything
// when none has been set.
func Installed() Log {
	if s := installed.Load(); s != nil {
		return s.log
	}
	return nopLog{}
}

// IsInstalled reports whether SetLogger has succeeded
func IsInstalled() bool {
	return installed.Load() != nil
}

// EnableCoarseClock makes records carry a cached timestamp that is
// refreshed every 500µs instead of calling time.Now per record.
func EnableCoarseClock() {
	core.StartCoarseClock()
}

// Flush flushes the global logger
func Flush() error {
	return Installed().Flush()
}

type nopLog struct{}

func (nopLog) Enabled(core.Metadata) bool { return false }
func (nopLog) Log(*core.Record)           {}
func (nopLog) Flush() error               { return nil }

// emit builds a record for the caller two frames up and hands it to the
// installed logger. An empty target means the caller's package path.
func emit(level core.Level, target string, lazy bool, format string, args []any) {
	s := installed.Load()
	if s == nil {
		return
	}

	rec := core.GetRecord()
	rec.Level = level
	rec.Caller = core.GetCaller(2)
	if target == "" {
		target = rec.Caller.ModulePath()
	}
	rec.Target = target
	if lazy {
		rec.SetMessage(format, args...)
	} else {
		rec.SetText(format)
	}

	s.log.Log(rec)
	core.PutRecord(rec)
}
