package resample

import "errors"

var (
	// ErrUnsupportedRatio indicates a ratio outside the supported window
	// (1/16 <= r <= 16), or, for the sinc path, a reduced rational
	// numerator too large for the phase-coefficient table.
	ErrUnsupportedRatio = errors.New("resample: unsupported ratio")
	// ErrInvalidParam indicates a construction parameter outside its
	// documented range.
	ErrInvalidParam = errors.New("resample: invalid parameter")
	// ErrNotEnoughParam indicates a Builder configuration that does not
	// resolve to any of the four construction modes.
	ErrNotEnoughParam = errors.New("resample: not enough parameters")
)
