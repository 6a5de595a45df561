// Package neutrino splits a total neutrino mass into three individual
// masses consistent with the measured mass-squared splittings.
//
// 🚀 What lives here?
//
//	Simulation codes evolve individual neutrino species, but cosmological
//	constraints are stated as a single total mass Σm_ν. SplitMasses
//	inverts that: given the total and an ordering (normal, inverted or
//	degenerate) it returns the three masses whose squared differences
//	match the solar and atmospheric splittings.
//
// The inversion has no closed form in general. Above the minimum mass an
// ordering allows, the summed mass of the two closest states is solved
// with a closed-form first estimate plus a single refinement step that
// restores the second-order solar term. The refinement must move the
// estimate by less than 2%, which makes the function self-diagnosing:
// outside the perturbative regime it returns ErrNotConverged instead of
// a silently wrong answer.
//
// ⚙️ Errors:
//
//	ErrNegativeMass and ErrHierarchy are precondition failures.
//	ErrNotConverged and ErrUnphysical are numerical-consistency failures;
//	results are never clamped to hide them.
//
// All functions are pure and safe for concurrent use.
package neutrino
