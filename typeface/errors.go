package typeface

import "errors"

// Sentinel errors for typeface package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("typeface: empty font data")

	// ErrInvalidSize is returned when a face is requested at a size <= 0.
	ErrInvalidSize = errors.New("typeface: size must be positive")
)

// ParseError is returned when a font parser rejects the font data.
type ParseError struct {
	// Parser names the library that rejected the data.
	Parser string
	Err    error
}

func (e *ParseError) Error() string {
	return "typeface: " + e.Parser + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
