package source

import (
	"errors"
	"fmt"
)

// Source errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrInvalidJSON          = errors.New("failed to parse JSON request body")
	ErrInvalidPath          = errors.New("failed to read path parameters")
)

// Conversion errors
var (
	// ErrConversion matches every ConversionError via errors.Is.
	ErrConversion = errors.New("parameter conversion failed")

	// ErrMissing is the cause of a ConversionError for a parameter the source does not have.
	ErrMissing = errors.New("parameter is missing")
)

// ConversionError reports that a raw parameter could not be converted to Target.
type ConversionError struct {
	Name   string
	Raw    string
	Target string
	Err    error
}

func (e *ConversionError) Error() string {
	if errors.Is(e.Err, ErrMissing) {
		return fmt.Sprintf("param %q: cannot convert to %s: %v", e.Name, e.Target, e.Err)
	}
	return fmt.Sprintf("param %q: cannot convert %q to %s: %v", e.Name, e.Raw, e.Target, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// IsMissing reports whether err is a conversion failure caused by a missing parameter.
func IsMissing(err error) bool {
	var ce *ConversionError
	return errors.As(err, &ce) && errors.Is(ce.Err, ErrMissing)
}
