// Package logging provides structured logging utilities for kube-switcher.
//
// This package centralizes logging patterns so that every component emits the
// same attribute names, using the standard library's slog package.
//
// # Usage Patterns
//
// Build the process logger once and derive operation loggers from it:
//
//	logger := logging.New(os.Stderr, debug)
//	scanLog := logging.WithOperation(logger, "kubeconfig.scan")
//	scanLog.Debug("kubeconfig skipped",
//	    logging.Path(path),
//	    logging.Outcome("malformed"))
//
// Cluster server URLs read from kubeconfig files are logged through Host,
// which redacts IP addresses so that network topology does not leak into
// shared terminal output or CI logs. Credentials from kubeconfig files are
// never logged.
package logging
