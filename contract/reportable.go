// Package contract exposes the minimal reportable-error interface used by other packages.
//
// Implementations must render a human-readable message via Error and expose
// an optional underlying cause via Unwrap for proper interoperability with
// standard error helpers.
package contract

// Reportable is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Render a human-readable message via Error().
//   - Return the underlying cause from Unwrap(), or nil at the root cause.
//
// The interface intentionally contains nothing else: any error built with
// fmt.Errorf("...: %w", err), and any type with an Unwrap method, already
// satisfies it. Capture accepts a plain error and treats a missing Unwrap
// method as an absent cause, so Reportable marks the full capability set
// rather than a hard requirement on producers.
type Reportable interface {
	error
	Unwrap() error
}
