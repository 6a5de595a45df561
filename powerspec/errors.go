package powerspec

import "errors"

// Precondition failures: the input is rejected before any computation.
var (
	// ErrKnotCount indicates empty knots or mismatched position/value lengths.
	ErrKnotCount = errors.New("powerspec: knot positions and values must be non-empty and of equal length")
	// ErrKnotOrder indicates knot positions are not strictly increasing.
	ErrKnotOrder = errors.New("powerspec: knot positions must be strictly increasing")
	// ErrKnotDomain indicates a knot outside the open k-range of the table.
	ErrKnotDomain = errors.New("powerspec: knot positions must lie strictly inside the table k-range")
	// ErrKnotValue indicates a non-positive multiplicative knot value.
	ErrKnotValue = errors.New("powerspec: knot values must be strictly positive")
	// ErrBadTable indicates a malformed power table: unequal columns, too few
	// rows, non-increasing or non-positive k, or non-positive P.
	ErrBadTable = errors.New("powerspec: table must hold equal-length columns with strictly increasing positive k and positive P")
	// ErrBadOptions indicates caller-supplied Options that disable the
	// algorithm's safeguards: non-positive DupTolerance, an empty or
	// inverted resampling window, or a negative pad.
	ErrBadOptions = errors.New("powerspec: options must hold positive DupTolerance, WindowLow < WindowHigh and non-negative WindowPad")
)

// Internal-consistency failure: the algorithm left its valid regime.
var (
	// ErrDuplicateK indicates a repeated wavenumber survived
	// de-duplication. This is an internal bug, not a caller error.
	ErrDuplicateK = errors.New("powerspec: duplicate k survived de-duplication")
)
