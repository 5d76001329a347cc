package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontParse wraps parser failures.
	ErrFontParse = errors.New("text: cannot parse font")

	// ErrUnknownShaper is returned by ParseShaper and NewMeasurer.
	ErrUnknownShaper = errors.New("text: unknown shaper")
)
