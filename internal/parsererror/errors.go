// Package parsererror defines the error types surfaced by the conversion pipeline.
package parsererror

import "fmt"

// MalformedInputError reports input that is not well-formed XML or is not a
// CAMT.053 document at all.
type MalformedInputError struct {
	Err error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %v", e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a structurally required element that is absent
// from otherwise well-formed input. Path locates the element; Index is the
// zero-based statement or entry position when one applies, -1 otherwise.
type MissingFieldError struct {
	Path  string
	Index int
}

func (e *MissingFieldError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("missing mandatory field %s (index %d)", e.Path, e.Index)
	}
	return fmt.Sprintf("missing mandatory field %s", e.Path)
}

// UnsupportedValueError reports a value that is present but in a form the
// converter cannot interpret, such as an unparseable amount or an unrecognized
// date format.
type UnsupportedValueError struct {
	Path   string
	Value  string
	Reason string
	Err    error
}

func (e *UnsupportedValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unsupported value at %s: '%s': %s: %v", e.Path, e.Value, e.Reason, e.Err)
	}
	return fmt.Sprintf("unsupported value at %s: '%s': %s", e.Path, e.Value, e.Reason)
}

func (e *UnsupportedValueError) Unwrap() error {
	return e.Err
}

// EmissionError reports a failure to serialize the constructed target
// document. A valid target tree always serializes, so seeing one of these
// indicates a programming defect rather than bad input.
type EmissionError struct {
	Err error
}

func (e *EmissionError) Error() string {
	return fmt.Sprintf("failed to emit target document: %v", e.Err)
}

func (e *EmissionError) Unwrap() error {
	return e.Err
}
