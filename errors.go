package annotate

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange reports an index outside the current image collection,
	// including any index while no image is loaded.
	ErrOutOfRange = errors.New("annotate: index out of range")

	// ErrDecodeFailure reports a source or mask buffer that could not be
	// decoded as an image.
	ErrDecodeFailure = errors.New("annotate: decode failure")

	// ErrEmptyExport marks an export requested with zero images. Export
	// treats it as a no-op and only reports it through Report.Empty.
	ErrEmptyExport = errors.New("annotate: nothing to export")

	// ErrInvalidColor reports a color string that is not a hex color.
	ErrInvalidColor = errors.New("annotate: invalid color")
)

// outOfRange wraps ErrOutOfRange with the offending index and bound.
func outOfRange(i, n int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, n)
}

// decodeFailure wraps ErrDecodeFailure with what was being decoded.
func decodeFailure(what string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrDecodeFailure, what, err)
}

// EntryError describes one export entry that failed. Export continues
// past it and combines all EntryErrors into its returned error.
type EntryError struct {
	Index int
	Name  string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("annotate: export %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }
