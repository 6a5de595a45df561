package snapshots

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRedshift indicates a redshift at or below -1 or a schedule
	// that is not strictly decreasing in redshift.
	ErrBadRedshift = errors.New("snapshots: redshifts must be > -1 and strictly decreasing")
	// ErrEmptySchedule indicates a schedule with no snapshots.
	ErrEmptySchedule = errors.New("snapshots: schedule holds no snapshots")
)

// The Lyman-alpha schedule starts at z = 4.2 and steps by 0.2 toward the
// end redshift.
const (
	lyaStartRedshift = 4.2
	lyaRedshiftStep  = 0.2
)

// FromRedshifts converts a strictly decreasing redshift sequence into
// the scale factors a = 1/(1+z) at which snapshots are written. The
// result is strictly increasing in a.
func FromRedshifts(zs []float64) ([]float64, error) {
	if len(zs) == 0 {
		return nil, ErrEmptySchedule
	}
	out := make([]float64, len(zs))
	for i, z := range zs {
		if z <= -1 {
			return nil, fmt.Errorf("%w: z[%d]=%g", ErrBadRedshift, i, z)
		}
		if i > 0 && z >= zs[i-1] {
			return nil, fmt.Errorf("%w: z[%d]=%g, z[%d]=%g", ErrBadRedshift, i-1, zs[i-1], i, z)
		}
		out[i] = 1 / (1 + z)
	}
	return out, nil
}

// LymanAlphaSchedule returns the snapshot scale factors for Lyman-alpha
// forest runs: z = 4.2 down toward redEnd (exclusive) in steps of 0.2.
// redEnd must be non-negative and small enough to leave at least one
// snapshot.
func LymanAlphaSchedule(redEnd float64) ([]float64, error) {
	if redEnd < 0 {
		return nil, fmt.Errorf("%w: redEnd=%g", ErrBadRedshift, redEnd)
	}
	var zs []float64
	for i := 0; ; i++ {
		z := lyaStartRedshift - lyaRedshiftStep*float64(i)
		if z <= redEnd {
			break
		}
		zs = append(zs, z)
	}
	return FromRedshifts(zs)
}

// NCDMSchedule returns the fixed snapshot scale factors used for
// non-cold dark matter runs.
func NCDMSchedule() []float64 {
	zs := []float64{7, 6, 5.4, 4.95, 4.58, 4.4, 4.24}
	out := make([]float64, len(zs))
	for i, z := range zs {
		out[i] = 1 / (1 + z)
	}
	return out
}
