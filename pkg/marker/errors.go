package marker

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewParts indicates a marker interior with fewer than two segments
	ErrTooFewParts = errors.New("too few marker segments")

	// ErrMalformedOption indicates an option segment without a single '='
	ErrMalformedOption = errors.New("malformed option segment")

	// ErrInvalidIdentifier indicates an identifier rejected by the host grammar
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// DecodeError reports why a marker interior could not be decoded, carrying
// the offending segment for logging.
type DecodeError struct {
	Segment string
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode marker: %s: %q", e.Message, e.Segment)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func NewDecodeError(segment, message string, err error) *DecodeError {
	return &DecodeError{Segment: segment, Message: message, Err: err}
}
