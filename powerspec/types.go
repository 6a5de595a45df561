package powerspec

import "fmt"

// Table is a tabulated power spectrum. K holds the wavenumbers (h/Mpc by
// convention, strictly increasing and positive) and P the power at each
// wavenumber (strictly positive, since the resampling interpolant works
// on log P).
type Table struct {
	K []float64
	P []float64
}

// Len returns the number of (k, P) rows.
func (t Table) Len() int { return len(t.K) }

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := Table{K: make([]float64, len(t.K)), P: make([]float64, len(t.P))}
	copy(out.K, t.K)
	copy(out.P, t.P)
	return out
}

// validate checks the Table invariants and wraps ErrBadTable on violation.
func (t Table) validate() error {
	if len(t.K) != len(t.P) {
		return fmt.Errorf("%w: len(K)=%d, len(P)=%d", ErrBadTable, len(t.K), len(t.P))
	}
	if len(t.K) < 2 {
		return fmt.Errorf("%w: need at least 2 rows, got %d", ErrBadTable, len(t.K))
	}
	if t.K[0] <= 0 {
		return fmt.Errorf("%w: K[0]=%g", ErrBadTable, t.K[0])
	}
	for i := 0; i+1 < len(t.K); i++ {
		if t.K[i+1] <= t.K[i] {
			return fmt.Errorf("%w: K[%d]=%g, K[%d]=%g", ErrBadTable, i, t.K[i], i+1, t.K[i+1])
		}
	}
	for i, p := range t.P {
		if p <= 0 {
			return fmt.Errorf("%w: P[%d]=%g", ErrBadTable, i, p)
		}
	}
	return nil
}

// Options configures ReweightKnots.
//
// These are the empirical tuning constants of the algorithm, not hard
// invariants; the defaults reproduce the reference pipeline.
//
//   - DupTolerance — rows closer than DupTolerance·k are merged after
//     insertion (default 1e-5).
//   - WindowLow / WindowHigh — the local log-log resampling interpolant is
//     fit over table rows between knotPos[0]·WindowLow and
//     knotPos[last]·WindowHigh (defaults 0.66 and 1.5). The window is a
//     speed and stability optimization; when it holds too few rows the
//     whole table is used instead.
//   - WindowPad — extra table rows kept on each side of the window
//     (default 5).
type Options struct {
	DupTolerance float64
	WindowLow    float64
	WindowHigh   float64
	WindowPad    int
}

// DefaultOptions returns the tuning constants used by the reference
// pipeline.
func DefaultOptions() Options {
	return Options{
		DupTolerance: 1e-5,
		WindowLow:    0.66,
		WindowHigh:   1.5,
		WindowPad:    5,
	}
}

// validate wraps ErrBadOptions when the tuning constants would disable
// de-duplication or leave the resampling window empty.
func (o Options) validate() error {
	if o.DupTolerance <= 0 {
		return fmt.Errorf("%w: DupTolerance=%g", ErrBadOptions, o.DupTolerance)
	}
	if o.WindowLow <= 0 || o.WindowHigh <= o.WindowLow {
		return fmt.Errorf("%w: WindowLow=%g, WindowHigh=%g", ErrBadOptions, o.WindowLow, o.WindowHigh)
	}
	if o.WindowPad < 0 {
		return fmt.Errorf("%w: WindowPad=%d", ErrBadOptions, o.WindowPad)
	}
	return nil
}
