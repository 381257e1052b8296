package anyerror

import (
	"errors"
	"fmt"
	"reflect"
)

// MaxChainDepth bounds how many cause levels Capture walks and how deeply
// the codec will nest. The Unwrap contract does not forbid cycles, so the
// walk must terminate on its own; 32 levels is far beyond any real wrap
// chain.
const MaxChainDepth = 32

// TruncatedTypeLabel is the type_label of the synthetic terminal node that
// marks a truncated chain.
const TruncatedTypeLabel = "truncated"

// Capture converts any error into a snapshot of its message, concrete type
// name, and full cause chain.
//
// Behavior:
//   - nil input => nil output
//   - if err is already *AnyError => returned as-is (same pointer), so
//     capturing a capture is idempotent
//   - otherwise each errors.Unwrap level is recorded top-down
//
// Capture never fails: an empty message or an absent cause both produce a
// valid (possibly single-node) snapshot. Chains longer than MaxChainDepth,
// including cyclic ones, come back exactly MaxChainDepth nodes long with a
// synthetic terminal node (TruncatedTypeLabel) in the last position. This
// truncation is a policy, not an error; callers on deeply nested inputs
// should expect a shortened chain.
func Capture(err error) *AnyError {
	if err == nil {
		return nil
	}

	if e, ok := err.(*AnyError); ok {
		return e
	}

	return capture(err, 1)
}

func capture(err error, depth int) *AnyError {
	if depth == MaxChainDepth && errors.Unwrap(err) != nil {
		return &AnyError{
			typeLabel: TruncatedTypeLabel,
			message:   fmt.Sprintf("error chain truncated at depth %d", MaxChainDepth),
		}
	}

	e := &AnyError{
		typeLabel: typeLabelOf(err),
		message:   err.Error(),
	}
	// A snapshot sitting mid-chain keeps its originally captured label
	// instead of being relabeled as AnyError itself.
	if prior, ok := err.(*AnyError); ok {
		e.typeLabel = prior.typeLabel
	}
	if cause := errors.Unwrap(err); cause != nil {
		e.cause = capture(cause, depth+1)
	}

	return e
}

// typeLabelOf derives a stable, package-qualified name for the error's
// concrete type, dereferencing pointers so *pkg.Err and pkg.Err label the
// same.
func typeLabelOf(err error) string {
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.PkgPath() != "" && t.Name() != "" {
		return t.PkgPath() + "." + t.Name()
	}

	return t.String()
}
