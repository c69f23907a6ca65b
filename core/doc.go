// Package core defines the shared types used across logtree.
//
// It provides the Level type for severity filtering, Metadata (the
// level and target that filters look at) and Record, the log event
// that travels through a dispatch tree.
//
// A Record carries its message lazily: the format string and
// arguments are kept as given and only rendered once the root of the
// tree has accepted the record. Records built by the logger facade
// are pooled via GetRecord and PutRecord.
//
// A record's Target identifies where it came from. The facade
// defaults it to the caller's package path, see CallerInfo.ModulePath.
package core
