// Package sink provides the destinations a dispatch node writes to.
//
// Every child of a node is a Sink. Built-in sinks:
//
//   - Stream writes one line per payload to any io.Writer (Stdout, Stderr).
//   - File writes one line per payload to a file opened with OpenFile,
//     which creates the file if needed and always appends.
//   - Custom wraps a Logger, the capability user-supplied sinks implement.
//
// Nested dispatch nodes are sinks too; see package dispatch.
//
// Sinks are shared by every goroutine that logs, so each one serializes
// its own writes. Stream and File keep atomic counters of written and
// failed payloads, available through Stats.
//
// Adapters for other logging libraries live in the subpackages zapsink,
// zerologsink, logrussink and slogsink. Each of them is a Logger.
package sink
