package powerspec

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// ReweightKnots multiplies a tabulated power spectrum by a correction
// function anchored at sparse multiplicative knots.
//
// Description:
//
//	knotVal[i] is the factor the spectrum must gain at wavenumber
//	knotPos[i]. Between knots the correction is interpolated linearly in
//	k, which keeps independent small perturbations additive:
//	applying knot set A and then knot set B approximates applying A∪B
//	once, to first order in |knotVal-1|. A cubic correction would break
//	that. Outside the knotted region the correction stays flat at the
//	nearest knot's value, so a caller wanting untouched large scales must
//	pin an explicit knot with value 1 there.
//
// Algorithm Outline:
//  1. Extend the knot set with boundary knots at 0.95·k_min (value of the
//     first knot) and 1.05·k_max (value of the last knot).
//  2. Fit a cubic interpolant of log P vs log k over a local window of
//     the table around the knot region, knotPos[0]·WindowLow to
//     knotPos[last]·WindowHigh padded by WindowPad rows. Fall back to the
//     whole table when the window holds fewer than 4 rows.
//  3. Insert a row at every knot and at the midpoint between each knot
//     and the nearest table row below it, with P from the log-log
//     interpolant. Explicit samples at and near the knots keep the linear
//     correction step from interpolating across them.
//  4. Drop the first row of any pair closer than DupTolerance·k, so an
//     inserted row colliding with an existing one yields to the original.
//  5. Re-check that k is strictly increasing; a violation is an internal
//     bug reported as ErrDuplicateK.
//  6. Interpolate the extended knots linearly in k, evaluate at every row
//     and multiply into P.
//
// The returned table covers the same k range as the input with the same
// or greater row count. The input is never mutated.
//
// A nil opts uses DefaultOptions.
//
// Errors:
//   - ErrBadOptions, ErrBadTable, ErrKnotCount, ErrKnotOrder,
//     ErrKnotDomain, ErrKnotValue — precondition failures, raised before
//     any computation.
//   - ErrDuplicateK — internal-consistency failure after de-duplication.
//
// Complexity: O((N+M) log N) time, O(N+M) memory, for N rows and M knots.
func ReweightKnots(knotPos, knotVal []float64, t Table, opts *Options) (Table, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return Table{}, err
	}
	if err := t.validate(); err != nil {
		return Table{}, err
	}
	if err := validateKnots(knotPos, knotVal, t); err != nil {
		return Table{}, err
	}

	// Boundary knots pin the correction flat outside the knotted region.
	extPos := make([]float64, 0, len(knotPos)+2)
	extPos = append(extPos, t.K[0]*0.95)
	extPos = append(extPos, knotPos...)
	extPos = append(extPos, t.K[t.Len()-1]*1.05)
	extVal := make([]float64, 0, len(knotVal)+2)
	extVal = append(extVal, knotVal[0])
	extVal = append(extVal, knotVal...)
	extVal = append(extVal, knotVal[len(knotVal)-1])

	// Local window around the knot region. The upper index is clamped
	// inclusively so a knot near the table edge stays inside the
	// interpolant's domain.
	lo := sort.SearchFloat64s(t.K, knotPos[0]*o.WindowLow)
	hi := sort.SearchFloat64s(t.K, knotPos[len(knotPos)-1]*o.WindowHigh)
	imin := max(0, lo-o.WindowPad)
	imax := min(t.Len()-1, hi+o.WindowPad)
	winK, winP := t.K[imin:imax+1], t.P[imin:imax+1]
	if len(winK) < 4 {
		winK, winP = t.K, t.P
	}

	logK := make([]float64, len(winK))
	logP := make([]float64, len(winK))
	for i := range winK {
		logK[i] = math.Log(winK[i])
		logP[i] = math.Log(winP[i])
	}
	var resample interp.NaturalCubic
	if err := resample.Fit(logK, logP); err != nil {
		return Table{}, fmt.Errorf("powerspec: fitting log-log resampler: %w", err)
	}

	// Rows to insert: every knot plus the midpoint between the knot and
	// the nearest window row below it.
	inserts := make([]float64, 0, 2*len(knotPos))
	inserts = append(inserts, knotPos...)
	for _, kp := range knotPos {
		j := sort.SearchFloat64s(winK, kp)
		inserts = append(inserts, (winK[j]+winK[j-1])/2)
	}
	sort.Float64s(inserts)
	insP := make([]float64, len(inserts))
	for i, k := range inserts {
		insP[i] = math.Exp(resample.Predict(math.Log(k)))
	}

	// Merge, placing inserted rows before existing rows with equal k.
	ks := make([]float64, 0, t.Len()+len(inserts))
	ps := make([]float64, 0, t.Len()+len(inserts))
	ti, ii := 0, 0
	for ti < t.Len() || ii < len(inserts) {
		if ii < len(inserts) && (ti == t.Len() || inserts[ii] <= t.K[ti]) {
			ks = append(ks, inserts[ii])
			ps = append(ps, insP[ii])
			ii++
		} else {
			ks = append(ks, t.K[ti])
			ps = append(ps, t.P[ti])
			ti++
		}
	}

	// Near-duplicate removal: drop the first row of each close pair, so a
	// knot landing exactly on an existing sample keeps the original row.
	keep := make([]bool, len(ks))
	for i := range keep {
		keep[i] = true
	}
	for i := 0; i+1 < len(ks); i++ {
		if math.Abs(ks[i+1]-ks[i]) < o.DupTolerance*ks[i+1] {
			keep[i] = false
		}
	}
	outK := make([]float64, 0, len(ks))
	outP := make([]float64, 0, len(ks))
	for i := range ks {
		if keep[i] {
			outK = append(outK, ks[i])
			outP = append(outP, ps[i])
		}
	}

	for i := 0; i+1 < len(outK); i++ {
		if outK[i+1] <= outK[i] {
			return Table{}, fmt.Errorf("%w: k=%g at rows %d and %d", ErrDuplicateK, outK[i], i, i+1)
		}
	}

	var correction interp.PiecewiseLinear
	if err := correction.Fit(extPos, extVal); err != nil {
		return Table{}, fmt.Errorf("powerspec: fitting knot correction: %w", err)
	}
	for i, k := range outK {
		outP[i] *= correction.Predict(k)
	}

	return Table{K: outK, P: outP}, nil
}

// validateKnots checks the ReweightKnots preconditions against a table
// that has already passed its own validation.
func validateKnots(pos, val []float64, t Table) error {
	if len(pos) == 0 || len(pos) != len(val) {
		return fmt.Errorf("%w: len(knotPos)=%d, len(knotVal)=%d", ErrKnotCount, len(pos), len(val))
	}
	for i := 0; i+1 < len(pos); i++ {
		if pos[i+1] <= pos[i] {
			return fmt.Errorf("%w: knotPos[%d]=%g, knotPos[%d]=%g", ErrKnotOrder, i, pos[i], i+1, pos[i+1])
		}
	}
	kMin, kMax := t.K[0], t.K[t.Len()-1]
	for i, p := range pos {
		if p <= kMin || p >= kMax {
			return fmt.Errorf("%w: knotPos[%d]=%g outside (%g, %g)", ErrKnotDomain, i, p, kMin, kMax)
		}
	}
	for i, v := range val {
		if v <= 0 {
			return fmt.Errorf("%w: knotVal[%d]=%g", ErrKnotValue, i, v)
		}
	}
	return nil
}
