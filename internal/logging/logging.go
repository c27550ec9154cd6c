// Package logging constructs the zap logger shared by the frontend and
// corpus components. Unlike the teacher's cmd/root.go, which keeps a
// single package-level *zap.Logger, ccsim's components accept a logger
// explicitly so library callers (not just the CLI) can supply their own.
package logging

import "go.uber.org/zap"

// New returns a production logger, or a development logger (human-readable,
// debug-level) when verbose is set.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Noop returns a logger that discards everything, for callers (tests,
// library embedders) that don't want ccsim's log output.
func Noop() *zap.Logger {
	return zap.NewNop()
}
