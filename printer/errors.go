package printer

import (
	"errors"
	"fmt"
)

// Sentinel errors for printer package.
var (
	// ErrUnsupported is wrapped by every unsupported-configuration error.
	ErrUnsupported = errors.New("printer: unsupported configuration")

	// ErrRawCarriageReturn is returned when hit testing meets a '\r'.
	// Text must be normalized (see Normalize) before it reaches the printer.
	ErrRawCarriageReturn = errors.New("printer: raw carriage return in text")

	// ErrNilStyle is returned when a printer is given no glyph provider.
	ErrNilStyle = errors.New("printer: nil style")
)

// ConfigError reports a justification or baseline value the printer has
// no rule for.
type ConfigError struct {
	Setting string
	Value   int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("printer: unsupported %s value %d", e.Setting, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return ErrUnsupported
}

// InvariantError reports text that violates a precondition of the
// printer, at the given character index.
type InvariantError struct {
	Index int
	Err   error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v (character %d)", e.Err, e.Index)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}
