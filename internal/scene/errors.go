package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrSceneNotFound indicates the scene file does not exist.
	ErrSceneNotFound = errors.New("scene: file not found")

	// ErrMalformedField indicates a non-integer where an integer is expected.
	ErrMalformedField = errors.New("scene: malformed numeric field")

	// ErrMalformedRecord indicates a record line with too few fields.
	ErrMalformedRecord = errors.New("scene: record has too few fields")

	// ErrMalformedHeader indicates a header line without a value.
	ErrMalformedHeader = errors.New("scene: header has no value")

	// ErrInvalidAnimation indicates an animation id outside 1..5.
	ErrInvalidAnimation = errors.New("scene: animation id out of range")
)

// ParseError wraps a parse failure with its line context.
type ParseError struct {
	Line    int
	Text    string
	Wrapped error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Wrapped)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}
