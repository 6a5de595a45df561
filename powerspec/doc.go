// Package powerspec manipulates tabulated linear matter power spectra.
//
// 🚀 What lives here?
//
//	The spectrum-shaping steps of an initial-conditions pipeline:
//	  • ReweightKnots — multiply P(k) by a correction that is
//	    piecewise-linear in k and anchored at sparse multiplicative
//	    "knots", the way Lyman-alpha forest emulators perturb the
//	    power spectrum
//	  • TransferNCDM / ApplyNCDM — the (1 + (αk)^β)^γ non-cold dark
//	    matter transfer-ratio model
//	  • ReadTable / WriteTable — the whitespace-delimited two-column
//	    text format the Boltzmann codes emit and the IC generator reads
//
// ✨ Key properties of ReweightKnots:
//
//   - additivity: two disjoint small knot sets applied independently
//     combine, to first order, like the union applied once, because the
//     correction is linear (not cubic) in k between knots
//   - boundary flatness: scales outside the knotted region inherit the
//     nearest knot's factor, so callers wanting untouched large scales
//     must pin an explicit unit knot there
//   - the output table keeps the input k range, gains rows at knots and
//     their neighboring midpoints, and never holds duplicate k
//
// ⚙️ Errors:
//
//	Precondition sentinels (ErrKnotCount, ErrKnotOrder, ErrKnotDomain,
//	ErrKnotValue, ErrBadTable, ErrBadOptions) reject bad input before any
//	computation.
//	ErrDuplicateK reports an internal-consistency failure: the algorithm
//	itself produced a repeated wavenumber, which is a bug, not bad input.
//
// Complexity: O((N + M) log N) time for N table rows and M knots,
// O(N + M) memory.
package powerspec
