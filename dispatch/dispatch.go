package dispatch

import (
	"io"
	"os"
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/logtree/core"
	"github.com/philipp01105/logtree/formatter"
	"github.com/philipp01105/logtree/logger"
	"github.com/philipp01105/logtree/sink"
)

// Dispatch builds a Node. It is not safe for concurrent use; build the
// tree on one goroutine, then share the frozen Node.
//
// The first construction error is kept and every later call becomes a
// no-op, so a chain of calls can be checked once at Build.
type Dispatch struct {
	format   formatter.Formatter
	level    core.Level
	hasLevel bool
	levels   map[string]core.Level
	filters  []Filter
	outputs  []output
	onError  func(error)

	// files opened by ChainFile, closed again if Build fails
	owned    []*sink.File
	err      error
	building bool
}

// output is either a ready sink or a nested builder frozen at Build
type output struct {
	sink   sink.Sink
	nested *Dispatch
}

// New creates an empty dispatch: no formatter, no level, no filters and
// no outputs.
func New() *Dispatch {
	return &Dispatch{}
}

// WithFormatter sets the formatter, replacing any previous one
func (d *Dispatch) WithFormatter(f formatter.Formatter) *Dispatch {
	if d.err == nil {
		d.format = f
	}
	return d
}

// WithFormatFunc sets a function as formatter
func (d *Dispatch) WithFormatFunc(f formatter.Func) *Dispatch {
	if f == nil {
		return d.WithFormatter(nil)
	}
	return d.WithFormatter(f)
}

// WithLevel sets the minimum level for targets without an override
func (d *Dispatch) WithLevel(level core.Level) *Dispatch {
	if d.err == nil {
		d.level = level
		d.hasLevel = true
	}
	return d
}

// WithLevelFor sets the minimum level for records whose target is exactly
// target. It takes precedence over WithLevel.
func (d *Dispatch) WithLevelFor(target string, level core.Level) *Dispatch {
	if d.err != nil {
		return d
	}
	if d.levels == nil {
		d.levels = make(map[string]core.Level)
	}
	d.levels[target] = level
	return d
}

// WithFilter adds a filter. Filters run in the order they were added,
// after the level check.
func (d *Dispatch) WithFilter(f Filter) *Dispatch {
	if d.err == nil && f != nil {
		d.filters = append(d.filters, f)
	}
	return d
}

// WithErrorHandler sets the function that receives write failures when
// the built node is used as the global logger. Without one, failures are
// printed to stderr.
func (d *Dispatch) WithErrorHandler(fn func(error)) *Dispatch {
	if d.err == nil {
		d.onError = fn
	}
	return d
}

// Chain adds an output. Accepted values are:
//
//   - *Dispatch, built together with d
//   - *Node or any sink.Sink
//   - sink.Logger, wrapped as a custom sink
//   - *os.File, written as a file sink
//   - io.Writer, written as a stream sink
func (d *Dispatch) Chain(out any) *Dispatch {
	if d.err != nil {
		return d
	}

	if isNil(out) {
		d.fail(errors.Wrapf(ErrUnsupportedOutput, "nil %T", out))
		return d
	}

	switch o := out.(type) {
	case *Dispatch:
		if o == d {
			d.fail(ErrCycle)
			return d
		}
		d.outputs = append(d.outputs, output{nested: o})
	case sink.Sink:
		d.outputs = append(d.outputs, output{sink: o})
	case sink.Logger:
		d.outputs = append(d.outputs, output{sink: sink.NewCustom(o)})
	case *os.File:
		d.outputs = append(d.outputs, output{sink: sink.NewFile(o)})
	case io.Writer:
		d.outputs = append(d.outputs, output{sink: sink.NewStream(o)})
	default:
		d.fail(errors.Wrapf(ErrUnsupportedOutput, "%T", out))
	}
	return d
}

// isNil reports whether out is nil or a typed nil pointer, func, map or
// interface value
func isNil(out any) bool {
	if out == nil {
		return true
	}
	switch v := reflect.ValueOf(out); v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Interface, reflect.Chan, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// ChainFile opens path for appending and adds it as an output. The file
// is opened immediately; a failure is returned by Build.
func (d *Dispatch) ChainFile(path string) *Dispatch {
	if d.err != nil {
		return d
	}

	f, err := sink.OpenFile(path)
	if err != nil {
		d.fail(&InitError{Op: OpOpen, Path: path, Err: err})
		return d
	}

	fs := sink.NewFile(f)
	d.owned = append(d.owned, fs)
	d.outputs = append(d.outputs, output{sink: fs})
	return d
}

// Err returns the first construction error, if any
func (d *Dispatch) Err() error {
	return d.err
}

func (d *Dispatch) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

// Build freezes the dispatch into a Node. Nested dispatches are built
// first; an error anywhere in the tree is returned and the files opened
// by ChainFile are closed again.
//
// The Node keeps its own copies, so changing d afterwards does not
// affect it.
func (d *Dispatch) Build() (*Node, error) {
	node, err := d.build()
	if err != nil {
		_ = d.Close()
		return nil, err
	}
	return node, nil
}

func (d *Dispatch) build() (*Node, error) {
	if d.err != nil {
		return nil, d.err
	}
	if d.building {
		return nil, ErrCycle
	}
	d.building = true
	defer func() { d.building = false }()

	node := &Node{
		output:   make([]sink.Sink, 0, len(d.outputs)),
		level:    d.level,
		hasLevel: d.hasLevel,
		format:   d.format,
		onError:  d.onError,
	}
	if len(d.filters) > 0 {
		node.filters = append([]Filter(nil), d.filters...)
	}
	if len(d.levels) > 0 {
		node.levels = make(map[string]core.Level, len(d.levels))
		for target, level := range d.levels {
			node.levels[target] = level
		}
	}

	for _, out := range d.outputs {
		if out.nested == nil {
			node.output = append(node.output, out.sink)
			continue
		}
		child, err := out.nested.build()
		if err != nil {
			return nil, err
		}
		node.output = append(node.output, child)
	}
	return node, nil
}

// Close releases the files opened by ChainFile, here and in nested
// dispatches, when d is not going to be built.
func (d *Dispatch) Close() error {
	return d.closeOwned(make(map[*Dispatch]bool))
}

func (d *Dispatch) closeOwned(seen map[*Dispatch]bool) error {
	if seen[d] {
		return nil
	}
	seen[d] = true

	var errs error
	for _, out := range d.outputs {
		if out.nested != nil {
			errs = multierr.Append(errs, out.nested.closeOwned(seen))
		}
	}
	for _, f := range d.owned {
		errs = multierr.Append(errs, f.Close())
	}
	d.owned = nil
	return errs
}

// SetGlobal builds the tree and installs it as the process-wide logger.
// Only one logger can ever be installed; later calls return an
// InitError wrapping ErrAlreadyInstalled together with the built node,
// which stays usable on its own.
func (d *Dispatch) SetGlobal() (*Node, error) {
	node, err := d.Build()
	if err != nil {
		return nil, err
	}
	if err := logger.SetLogger(node); err != nil {
		return node, &InitError{Op: OpInstall, Err: err}
	}
	return node, nil
}
