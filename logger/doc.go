// Package logger is the logging facade: the functions code calls to
// log, and the single process-wide slot the routing tree is installed in.
//
// Nothing is logged until a Log is installed with SetLogger (usually via
// dispatch.Dispatch.SetGlobal). The slot can be filled exactly once; a
// second SetLogger returns ErrAlreadySet and leaves the first logger in
// place. Before installation every call is a single atomic load.
//
// Each call builds a pooled core.Record carrying its level, target and
// caller. The package-level functions use the caller's package path as
// target:
//
//	logger.Infof("listening on %s", addr)
//
// For routes to use a fixed target instead:
//
//	log := logger.For("db::pool")
//	log.Warn("pool exhausted")
//
// Printf-style messages are not rendered at the call site; the installed
// logger renders them only for records it accepts.
//
// RedirectSlog makes log/slog (and through it the standard log package)
// write into the installed tree as well.
package logger
