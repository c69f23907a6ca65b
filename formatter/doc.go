// Package formatter defines how a dispatch node rewrites the message it
// passes on to its children.
//
// A Formatter writes into a caller-provided bytes.Buffer rather than
// returning a string. The dispatch engine takes the buffer from the
// shared pool (GetBuffer/PutBuffer), so a node with a formatter costs one
// buffer round-trip per accepted record and nothing for rejected ones.
//
// Formatters compose through the tree: a child node receives the output
// of its parent's formatter as its message. Wrap and Prefix are small
// building blocks for that; TextFormatter and JSONFormatter produce a
// complete line from the record's time, level, target and caller.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
