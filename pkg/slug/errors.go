package slug

import "errors"

// Sentinel errors for slug operations.
var (
	// ErrInvalidArgument is returned by Transform when the input is not a string.
	ErrInvalidArgument = errors.New("slug: string argument expected")

	// ErrUnsupportedFormat is returned when a charmap file has an unknown extension.
	ErrUnsupportedFormat = errors.New("slug: unsupported charmap format")

	// ErrInvalidCharmap is returned when a charmap file cannot be decoded.
	ErrInvalidCharmap = errors.New("slug: invalid charmap")
)
