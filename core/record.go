package core

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Metadata is the part of a record that filters and level checks see
type Metadata struct {
	Level  Level
	Target string
}

// Record represents one log event with all its metadata
type Record struct {
	Metadata
	Time   time.Time
	Caller CallerInfo

	text string
	args []any
	lazy bool
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// ModulePath returns the import path of the package the caller belongs to,
// e.g. "github.com/acme/app/db" for "github.com/acme/app/db.(*Pool).Get".
// A major version suffix on the last path element stays part of the path:
// "gopkg.in/yaml.v3.Marshal" gives "gopkg.in/yaml.v3".
func (c CallerInfo) ModulePath() string {
	if c.Function == "" {
		return ""
	}
	// The runtime escapes dots in the last path element.
	fn := strings.ReplaceAll(c.Function, "%2e", ".")

	lastSlash := strings.LastIndexByte(fn, '/')
	end := lastSlash + 1
	for {
		dot := strings.IndexByte(fn[end:], '.')
		if dot < 0 {
			return fn
		}
		end += dot
		n := majorVersionLen(fn[end+1:])
		if n == 0 {
			return fn[:end]
		}
		end += 1 + n
	}
}

// majorVersionLen returns the length of a leading "vN" element that is
// followed by another dot, or 0.
func majorVersionLen(s string) int {
	if len(s) < 2 || s[0] != 'v' {
		return 0
	}
	i := 1
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 1 || i == len(s) || s[i] != '.' {
		return 0
	}
	return i
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = Now()
	r.Caller = CallerInfo{}
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.text = ""
	r.args = nil
	r.lazy = false
	r.Target = ""
	r.Caller = CallerInfo{}
	recordPool.Put(r)
}

// NewRecord builds a standalone record carrying a fixed message
func NewRecord(level Level, target, msg string) *Record {
	return &Record{
		Metadata: Metadata{Level: level, Target: target},
		Time:     Now(),
		text:     msg,
	}
}

// SetText sets a payload that is used verbatim
func (r *Record) SetText(msg string) {
	r.text = msg
	r.args = nil
	r.lazy = false
}

// SetMessage sets a printf-style payload. Nothing is rendered until
// Message or AppendMessage is called.
func (r *Record) SetMessage(format string, args ...any) {
	r.text = format
	r.args = args
	r.lazy = true
}

// Message renders the payload
func (r *Record) Message() string {
	if !r.lazy {
		return r.text
	}
	return fmt.Sprintf(r.text, r.args...)
}

// AppendMessage renders the payload into buf
func (r *Record) AppendMessage(buf []byte) []byte {
	if !r.lazy {
		return append(buf, r.text...)
	}
	return fmt.Appendf(buf, r.text, r.args...)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}
