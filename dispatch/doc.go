// Package dispatch builds log routing trees and installs them as the
// process-wide logger.
//
// A tree is described with a Dispatch and frozen with Build:
//
//	root, err := dispatch.New().
//		WithFormatter(formatter.NewTextFormatter(formatter.TextConfig{})).
//		WithLevel(core.InfoLevel).
//		WithLevelFor("github.com/acme/app/db", core.WarnLevel).
//		Chain(os.Stdout).
//		Chain(dispatch.New().
//			WithLevel(core.ErrorLevel).
//			ChainFile("errors.log")).
//		SetGlobal()
//
// Every node applies, in this order: the level for the record's target
// (an exact-match override, else the node's default level, else none),
// its filters, and its formatter. The formatted payload is handed to each
// child in the order they were chained. Nested nodes format again, so
// formatters compose from the root down.
//
// A failing child never stops delivery to its siblings. Failures are
// combined into one error (see go.uber.org/multierr) and, for the
// installed tree, passed to the handler set with WithErrorHandler.
package dispatch
