package engine

import "fmt"

// InvariantError is the only error ComputeFlow ever returns:
// every other condition — degenerate input, budget exhaustion, transfer
// count loss — is encoded in the returned (flow, transfers) value
// instead. InvariantError means the used-edge subgraph produced by the
// max-flow loop was not internally consistent, which should not happen
// for a correctly built EdgeDB; there is no automatic recovery.
type InvariantError struct {
	// Invariant names which invariant was found violated, e.g.
	// "extractor: no eligible edge" or "scheduler: no progress".
	Invariant string
	// Detail gives extra context for diagnostics.
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("engine: invariant violated (%s): %s", e.Invariant, e.Detail)
}

func invariantf(name, format string, args ...interface{}) error {
	return &InvariantError{Invariant: name, Detail: fmt.Sprintf(format, args...)}
}
