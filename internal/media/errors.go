package media

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedURL indicates the URL matches none of the known variants.
	ErrUnsupportedURL = errors.New("unsupported URL")
	// ErrExtraction indicates a required field was missing from fetched content.
	ErrExtraction = errors.New("extraction failed")
	// ErrParse indicates a malformed date string or unknown month name.
	ErrParse = errors.New("parse failed")
	// ErrFetch indicates a network or HTTP failure.
	ErrFetch = errors.New("fetch failed")
	// ErrResolution indicates the pipeline finished without a base result.
	ErrResolution = errors.New("Failed to extract metadata for this URL")
)

// FieldError names a mandatory field that could not be located.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("unable to extract %s", e.Field)
}

// Is reports FieldError as an extraction failure.
func (e *FieldError) Is(target error) bool {
	return target == ErrExtraction
}
