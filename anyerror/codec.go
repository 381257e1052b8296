package anyerror

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Wire field names. These three names and the nesting shape are the stable
// contract consumers rely on; a domain-specific envelope around them is the
// consumer's responsibility.
const (
	fieldTypeLabel = "type_label"
	fieldMessage   = "message"
	fieldCause     = "cause"
)

// MalformedPayloadError reports why a payload could not be decoded into a
// snapshot. Depth is the cause-nesting level that failed (0 = top level);
// Field names the offending field when one is known.
type MalformedPayloadError struct {
	Depth  int
	Field  string
	Reason string
}

func (e *MalformedPayloadError) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.Field != "" {
		return fmt.Sprintf("malformed payload at depth %d: field %q: %s", e.Depth, e.Field, e.Reason)
	}

	return fmt.Sprintf("malformed payload at depth %d: %s", e.Depth, e.Reason)
}

// payload is the wire form of one chain node. Cause is kept as a pointer so
// the root serializes as an explicit null.
type payload struct {
	TypeLabel string   `json:"type_label"`
	Message   string   `json:"message"`
	Cause     *payload `json:"cause"`
}

// Marshal renders the snapshot as its JSON wire payload. It is
// deterministic and total over non-nil snapshots: every snapshot maps to
// exactly one payload shape.
func Marshal(e *AnyError) ([]byte, error) {
	return json.Marshal(e.wire())
}

// MarshalJSON lets consumer envelopes embed an *AnyError field directly.
func (e *AnyError) MarshalJSON() ([]byte, error) {
	return Marshal(e)
}

func (e *AnyError) wire() *payload {
	if e == nil {
		return nil
	}

	return &payload{
		TypeLabel: e.typeLabel,
		Message:   e.message,
		Cause:     e.cause.wire(),
	}
}

// Unmarshal parses a wire payload back into a snapshot.
//
// Validation is strict and per-level: type_label and message must be
// present and strings, cause must be null, absent, or a nested payload, and
// nesting deeper than MaxChainDepth is rejected. Every failure is a
// *MalformedPayloadError identifying the nesting depth; the input is never
// partially applied.
func Unmarshal(data []byte) (*AnyError, error) {
	return decode(data, 0)
}

// UnmarshalJSON decodes into the receiver, replacing it wholesale on
// success and leaving it untouched on failure.
func (e *AnyError) UnmarshalJSON(data []byte) error {
	decoded, err := Unmarshal(data)
	if err != nil {
		return err
	}

	*e = *decoded

	return nil
}

func decode(data []byte, depth int) (*AnyError, error) {
	if depth >= MaxChainDepth {
		return nil, &MalformedPayloadError{Depth: depth, Field: fieldCause, Reason: "nesting exceeds max chain depth"}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, &MalformedPayloadError{Depth: depth, Reason: "payload is not a JSON object"}
	}

	typeLabel, err := requireString(fields, fieldTypeLabel, depth)
	if err != nil {
		return nil, err
	}

	message, err := requireString(fields, fieldMessage, depth)
	if err != nil {
		return nil, err
	}

	e := &AnyError{typeLabel: typeLabel, message: message}

	if raw, ok := fields[fieldCause]; ok && !isJSONNull(raw) {
		cause, err := decode(raw, depth+1)
		if err != nil {
			return nil, err
		}

		e.cause = cause
	}

	return e, nil
}

func requireString(fields map[string]json.RawMessage, name string, depth int) (string, error) {
	raw, ok := fields[name]
	if !ok || isJSONNull(raw) {
		return "", &MalformedPayloadError{Depth: depth, Field: name, Reason: "missing required field"}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", &MalformedPayloadError{Depth: depth, Field: name, Reason: "field must be a string"}
	}

	return s, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
