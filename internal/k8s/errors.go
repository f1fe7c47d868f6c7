package k8s

import (
	"errors"
	"fmt"
)

// Sentinel errors for scan and activation failures.
// These errors can be checked using errors.Is() for programmatic error handling.
var (
	// ErrNoContexts indicates that the context directory yielded no labels.
	ErrNoContexts = errors.New("no contexts found")

	// ErrContextNotFound indicates that a label is not present in the scanned
	// mapping.
	ErrContextNotFound = errors.New("context not found")

	// ErrSameFile indicates that the kubeconfig to activate already is the
	// active kubeconfig file.
	ErrSameFile = errors.New("source and destination are the same file")
)

// ContextNotFoundError reports a label that no scanned kubeconfig declares.
type ContextNotFoundError struct {
	Label string
	Dir   string
}

// Error implements the error interface.
func (e *ContextNotFoundError) Error() string {
	if e.Dir != "" {
		return fmt.Sprintf("context %q not found in %s", e.Label, e.Dir)
	}
	return fmt.Sprintf("context %q not found", e.Label)
}

// Unwrap returns ErrContextNotFound so errors.Is matches the sentinel.
func (e *ContextNotFoundError) Unwrap() error {
	return ErrContextNotFound
}
