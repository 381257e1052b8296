// Package anyerror captures arbitrary errors into immutable, serializable snapshots.
//
// It exposes a single concrete type AnyError that records an error's message,
// its concrete type name, and its full errors.Unwrap chain at the moment of
// capture. The snapshot is self-contained: it can be logged, transmitted, or
// persisted after the original error value is gone, and it implements
// contract.Reportable itself so higher layers can chain-walk or re-capture
// it like any other error.
//
// Key characteristics:
//   - Capture is total: any non-nil error yields a valid snapshot
//   - Chain depth is bounded by MaxChainDepth; over-long or cyclic Unwrap
//     chains are truncated with a synthetic terminal node
//   - Stable JSON wire schema (type_label, message, cause) with strict,
//     depth-reporting validation on decode
//   - Snapshots are immutable after construction and safe for concurrent use
//
// Capture and the codec are pure functions; the package holds no state.
package anyerror
