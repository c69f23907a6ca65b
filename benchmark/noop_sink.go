package benchmark

import (
	"github.com/philipp01105/logtree/core"
	"github.com/philipp01105/logtree/sink"
)

// noopSink accepts every payload and writes nothing, so benchmarks measure
// routing and formatting only.
type noopSink struct{}

func newNoopSink() sink.Sink {
	return noopSink{}
}

func (noopSink) Write(payload string, _ *core.Record) error {
	_ = len(payload)
	return nil
}

func (noopSink) Flush() error {
	return nil
}
