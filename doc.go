// Package icprep is the numerical core used when preparing cosmological
// simulation initial conditions: reshaping tabulated linear power spectra
// and splitting the total neutrino mass into physical states.
//
// 🚀 What is icprep?
//
//	A small, pure-Go library holding the algorithms an IC pipeline needs
//	before it ever touches a Boltzmann solver or an N-body code:
//		• Knot reweighting: multiply a tabulated P(k) by a piecewise-linear
//		  correction anchored at sparse control points, preserving
//		  additivity of independent perturbations
//		• nCDM transfer corrections: suppress small-scale power with the
//		  (1 + (αk)^β)^γ transfer-ratio model
//		• Neutrino mass splitting: turn a total mass and an ordering into
//		  three individual masses consistent with the measured
//		  mass-squared splittings
//		• Snapshot schedules: the scale factors at which the evolution
//		  code writes output
//
// ✨ Why choose icprep?
//
//   - Pure functions only, no shared state, safe for concurrent use
//   - Explicit error taxonomy: precondition failures vs numerical
//     consistency failures, discriminated with errors.Is
//   - Deterministic: a failing input fails the same way every time
//
// Everything is organized under three subpackages:
//
//	powerspec/ — tabulated (k, P) spectra: reweighting, nCDM, text codec
//	neutrino/  — mass splitting, hierarchy parsing, Omega_nu
//	snapshots/ — output-time schedules in scale factor
//
// File handling, parameter-file generation and invocation of the external
// simulation codes are deliberately left to the caller: these packages
// consume and produce in-memory numeric slices only.
//
//	go get github.com/keirkwame/icprep
package icprep
