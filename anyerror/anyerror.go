package anyerror

import (
	"fmt"
	"log/slog"

	"github.com/next-trace/scg-anyerror/contract"
)

// AnyError is an immutable snapshot of one error and its cause chain.
//
// Fields:
//   - typeLabel: package-qualified name of the original concrete type,
//     diagnostics only (never used to reconstruct behavior)
//   - message:   the error's rendered message at capture time
//   - cause:     the next snapshot in the chain, nil at the root cause
//
// Snapshots are created only by Capture or by the codec and never mutated
// afterwards, so they may be shared across goroutines freely.
type AnyError struct {
	typeLabel string
	message   string
	cause     *AnyError
}

// compile-time guarantee that *AnyError implements contract.Reportable
var _ contract.Reportable = (*AnyError)(nil)

// compile-time guarantee that *AnyError expands under log/slog
var _ slog.LogValuer = (*AnyError)(nil)

// ------ standard error interface

// Error returns the captured message verbatim. A snapshot renders exactly
// like the error it was captured from, so generic callers cannot tell the
// two apart by message or by chain walking.
func (e *AnyError) Error() string {
	if e == nil {
		return "<nil>"
	}

	return e.message
}

// Unwrap returns the cause snapshot for errors.Is / errors.As traversal,
// or nil at the root cause.
func (e *AnyError) Unwrap() error {
	if e == nil || e.cause == nil {
		return nil
	}

	return e.cause
}

// ------ getters

func (e *AnyError) TypeLabel() string {
	if e == nil {
		return ""
	}

	return e.typeLabel
}

func (e *AnyError) Message() string {
	if e == nil {
		return ""
	}

	return e.message
}

// Cause returns the next snapshot in the chain, or nil at the root cause.
func (e *AnyError) Cause() *AnyError {
	if e == nil {
		return nil
	}

	return e.cause
}

// ------ diagnostics

// String renders the snapshot with type labels and nested causes, e.g.
// "fmt.wrapError: outer(errors.errorString: inner)". Meant for logs and
// debugging; use Error for the plain message.
func (e *AnyError) String() string {
	if e == nil {
		return "<nil>"
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s(%s)", e.typeLabel, e.message, e.cause.String())
	}

	return fmt.Sprintf("%s: %s", e.typeLabel, e.message)
}

// LogValue expands the snapshot into structured logging attributes so
// slog-based loggers record the chain as nested groups instead of a flat
// string.
func (e *AnyError) LogValue() slog.Value {
	if e == nil {
		return slog.Value{}
	}

	attrs := []slog.Attr{
		slog.String(fieldTypeLabel, e.typeLabel),
		slog.String(fieldMessage, e.message),
	}
	if e.cause != nil {
		attrs = append(attrs, slog.Attr{Key: fieldCause, Value: e.cause.LogValue()})
	}

	return slog.GroupValue(attrs...)
}
