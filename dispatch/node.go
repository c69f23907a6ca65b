package dispatch

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/philipp01105/logtree/core"
	"github.com/philipp01105/logtree/formatter"
	"github.com/philipp01105/logtree/sink"
)

// Filter decides whether a record may pass. All filters of a node must
// return true.
type Filter func(meta core.Metadata) bool

// Node is a frozen dispatch node. It never changes after Build, so one
// Node is shared by every goroutine that logs.
//
// A Node is itself a sink.Sink and a sink.Logger, which is how trees
// nest.
type Node struct {
	output   []sink.Sink
	level    core.Level
	hasLevel bool
	levels   map[string]core.Level
	filters  []Filter
	format   formatter.Formatter
	onError  func(error)
}

// floor returns the minimum level for target and whether there is one
func (n *Node) floor(target string) (core.Level, bool) {
	if l, ok := n.levels[target]; ok {
		return l, true
	}
	return n.level, n.hasLevel
}

// accepts runs the level check, then the filters in order
func (n *Node) accepts(meta core.Metadata) bool {
	if floor, ok := n.floor(meta.Target); ok && meta.Level < floor {
		return false
	}
	for _, f := range n.filters {
		if !f(meta) {
			return false
		}
	}
	return true
}

// Enabled reports whether a record with this metadata would reach at
// least one sink.
func (n *Node) Enabled(meta core.Metadata) bool {
	if !n.accepts(meta) {
		return false
	}
	for _, out := range n.output {
		if nested, ok := out.(*Node); !ok || nested.Enabled(meta) {
			return true
		}
	}
	return false
}

// Dispatch routes message through the node: level and filter checks,
// then the formatter, then every child in chain order. Write failures
// do not stop delivery to later children; they are combined into the
// returned error.
func (n *Node) Dispatch(message string, rec *core.Record) error {
	if !n.accepts(rec.Metadata) {
		return nil
	}
	return n.route(message, rec)
}

// route formats and fans out an accepted record
func (n *Node) route(message string, rec *core.Record) error {
	if n.format == nil {
		return n.fanOut(message, rec)
	}

	buf := formatter.GetBuffer()
	n.format.Format(buf, message, rec)
	err := n.fanOut(buf.String(), rec)
	formatter.PutBuffer(buf)
	return err
}

func (n *Node) fanOut(payload string, rec *core.Record) error {
	var errs error
	for _, out := range n.output {
		err := out.Write(payload, rec)
		if err == nil {
			continue
		}
		if _, nested := out.(*Node); nested {
			errs = multierr.Append(errs, err)
			continue
		}
		errs = multierr.Append(errs, &WriteError{Sink: describe(out), Err: err})
	}
	return errs
}

// Log is the entry point used by the logger facade. The record's message
// is rendered only if this node accepts it. Write failures go to the
// error handler; Log itself never fails.
func (n *Node) Log(rec *core.Record) {
	if !n.accepts(rec.Metadata) {
		return
	}
	if err := n.route(rec.Message(), rec); err != nil {
		n.report(err)
	}
}

// LogPayload implements sink.Logger, so a node can be handed to anything
// that accepts a custom sink.
func (n *Node) LogPayload(payload string, rec *core.Record) {
	if err := n.Dispatch(payload, rec); err != nil {
		n.report(err)
	}
}

// Write implements sink.Sink for nested nodes
func (n *Node) Write(payload string, rec *core.Record) error {
	return n.Dispatch(payload, rec)
}

// Flush flushes every sink in the tree
func (n *Node) Flush() error {
	var errs error
	for _, out := range n.output {
		errs = multierr.Append(errs, out.Flush())
	}
	return errs
}

// Close flushes the tree and closes the files it owns. Standard streams
// are left open.
func (n *Node) Close() error {
	var errs error
	for _, out := range n.output {
		if c, ok := out.(io.Closer); ok {
			errs = multierr.Append(errs, c.Close())
			continue
		}
		errs = multierr.Append(errs, out.Flush())
	}
	return errs
}

func (n *Node) report(err error) {
	if n.onError != nil {
		n.onError(err)
		return
	}
	fmt.Fprintf(os.Stderr, "logtree: %v\n", err)
}
