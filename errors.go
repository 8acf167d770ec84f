package serbench

import (
	"errors"
	"fmt"
)

// A ParseError is returned when a document cannot be decoded into a Dataset,
// either because it is malformed or because it does not describe people.
type ParseError struct {
	Format string
	// Offset is the input byte offset at which the problem was noticed, or
	// -1 if the underlying decoder does not report one.
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("serbench: error parsing %s document at offset %d: %v", e.Format, e.Offset, e.Err)
	}
	return fmt.Sprintf("serbench: error parsing %s document: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// An EncodeError is returned when a Dataset holds a value that a format
// cannot represent.
type EncodeError struct {
	Format string
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("serbench: can't encode %s document: %v", e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// ErrUnsupportedOption is returned by Lookup when a CodecOption does not apply
// to the requested format.
var ErrUnsupportedOption = errors.New("serbench: this option is unsupported for this format")

var errEmptyDocument = errors.New("empty document")

type missingFieldError struct {
	field, parent string
}

func (e missingFieldError) Error() string {
	return fmt.Sprintf("missing <%s> in <%s>", e.field, e.parent)
}

func parseError(format string, err error) *ParseError {
	return &ParseError{Format: format, Offset: -1, Err: err}
}

func encodeError(format string, err error) *EncodeError {
	return &EncodeError{Format: format, Err: err}
}
