package neutrino

import "errors"

// Precondition failures: the input is rejected before any computation.
var (
	// ErrNegativeMass indicates a negative (or NaN) total mass.
	ErrNegativeMass = errors.New("neutrino: total mass must be non-negative")
	// ErrHierarchy indicates an unknown hierarchy name or value.
	ErrHierarchy = errors.New("neutrino: unknown hierarchy")
)

// Numerical-consistency failures: the approximation left its valid regime.
var (
	// ErrNotConverged indicates the one-step refinement moved the summed
	// pair mass by 2% or more, so the single-step approximation is not
	// trustworthy for this input.
	ErrNotConverged = errors.New("neutrino: mass splitting refinement did not converge")
	// ErrUnphysical indicates a non-finite intermediate or a negative
	// output mass.
	ErrUnphysical = errors.New("neutrino: mass splitting produced an unphysical result")
)
