package k8s

// Outcome describes what happened to a single file during a scan.
type Outcome string

const (
	// OutcomeLoaded means the file contributed a label to the mapping.
	OutcomeLoaded Outcome = "loaded"

	// OutcomeDuplicate means the file contributed a label that replaced the
	// mapping of an earlier file declaring the same label.
	OutcomeDuplicate Outcome = "duplicate"

	// OutcomeUnreadable means the file could not be read.
	OutcomeUnreadable Outcome = "unreadable"

	// OutcomeMalformed means the file is not a decodable kubeconfig document.
	OutcomeMalformed Outcome = "malformed"

	// OutcomeNoContexts means the document has an empty or absent contexts
	// list, or its first context has no name.
	OutcomeNoContexts Outcome = "no-contexts"
)

// Skipped reports whether a file with this outcome is absent from the mapping.
func (o Outcome) Skipped() bool {
	return o != OutcomeLoaded && o != OutcomeDuplicate
}
