package ticket

import (
	"errors"
	"fmt"
)

// SurfaceUnavailableError means no drawing surface could be allocated.
// The render produced nothing.
type SurfaceUnavailableError struct {
	Width, Height int
	Err           error
}

func (e *SurfaceUnavailableError) Error() string {
	return fmt.Sprintf("drawing surface %dx%d unavailable: %v", e.Width, e.Height, e.Err)
}

func (e *SurfaceUnavailableError) Unwrap() error { return e.Err }

// InvalidImageError means a photo handle has a zero or negative dimension.
type InvalidImageError struct {
	Width, Height int
}

func (e *InvalidImageError) Error() string {
	return fmt.Sprintf("invalid image dimensions %dx%d", e.Width, e.Height)
}

// DocumentExportError wraps a failure of the document writer. The raster
// the document was built from stays valid.
type DocumentExportError struct {
	Err error
}

func (e *DocumentExportError) Error() string {
	return fmt.Sprintf("document export: %v", e.Err)
}

func (e *DocumentExportError) Unwrap() error { return e.Err }

// IsSurfaceUnavailable returns true if err (or any wrapped error) is a SurfaceUnavailableError.
func IsSurfaceUnavailable(err error) bool {
	var target *SurfaceUnavailableError
	return errors.As(err, &target)
}

// IsInvalidImage returns true if err (or any wrapped error) is an InvalidImageError.
func IsInvalidImage(err error) bool {
	var target *InvalidImageError
	return errors.As(err, &target)
}

// IsDocumentExport returns true if err (or any wrapped error) is a DocumentExportError.
func IsDocumentExport(err error) bool {
	var target *DocumentExportError
	return errors.As(err, &target)
}
