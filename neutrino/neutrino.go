package neutrino

import (
	"fmt"
	"math"
)

// Squared mass splittings in eV², Particle Data Group 2016.
const (
	// m21Sq is the solar splitting Δm²₂₁, ±0.18e-5.
	m21Sq = 7.53e-5
	// m32SqNormal is the atmospheric splitting Δm²₃₂ for the normal
	// ordering, ±0.06e-3.
	m32SqNormal = 2.44e-3
	// m32SqInverted is the atmospheric splitting Δm²₃₂ for the inverted
	// ordering, ±0.06e-3.
	m32SqInverted = 2.51e-3
)

// ddTolerance is the largest relative change the refinement step may make
// before the single-step approximation is declared unreliable.
const ddTolerance = 2e-2

// SplitMasses returns the three individual neutrino masses, in eV, for a
// total mass and an ordering.
//
// Algorithm Outline:
//  1. Degenerate: three equal parts, no splittings applied.
//  2. Below the minimum mass the ordering allows, the splittings cannot
//     all be active: normal assigns the whole mass to one state,
//     inverted splits it evenly over the two heavy states.
//  3. Otherwise solve for dd, the summed mass of the two closest states:
//     a closed-form first estimate dd1 that drops the second-order solar
//     term, then one refinement that restores it with dd1 in the
//     denominator. The refinement must move dd by less than 2%.
//  4. The masses follow from dd and the solar splitting. Index 0 holds
//     the state set apart by the ordering (the heaviest for normal, the
//     lightest for inverted); indexes 1 and 2 hold the close pair.
//
// The three masses are non-negative and sum to totalMass.
//
// Errors:
//   - ErrNegativeMass, ErrHierarchy — precondition failures.
//   - ErrNotConverged, ErrUnphysical — numerical-consistency failures,
//     returned instead of a clamped or silently wrong result.
func SplitMasses(totalMass float64, h Hierarchy) ([3]float64, error) {
	if totalMass < 0 || math.IsNaN(totalMass) {
		return [3]float64{}, fmt.Errorf("%w: %g", ErrNegativeMass, totalMass)
	}

	var m32 float64
	switch h {
	case Degenerate:
		m := totalMass / 3
		return [3]float64{m, m, m}, nil
	case Normal:
		// Below the minimum the ordering allows, only one state is active.
		if totalMass < math.Sqrt(m32SqNormal)+math.Sqrt(m21Sq) {
			return [3]float64{totalMass, 0, 0}, nil
		}
		m32 = m32SqNormal
	case Inverted:
		if totalMass < 2*math.Sqrt(m32SqInverted)-math.Sqrt(m21Sq) {
			return [3]float64{totalMass / 2, totalMass / 2, 0}, nil
		}
		m32 = -m32SqInverted
	default:
		return [3]float64{}, fmt.Errorf("%w: %v", ErrHierarchy, h)
	}

	// dd is the summed mass of the two closest states. The first estimate
	// drops the second-order solar term; the refinement restores it with
	// dd1 in the denominator.
	dd1 := 4*totalMass/3 - 2.0/3.0*math.Sqrt(totalMass*totalMass+3*m32+1.5*m21Sq)
	dd := 4*totalMass/3 - 2.0/3.0*math.Sqrt(totalMass*totalMass+3*m32+1.5*m21Sq+0.75*m21Sq*m21Sq/(dd1*dd1))
	if math.IsNaN(dd) || math.IsInf(dd, 0) {
		return [3]float64{}, fmt.Errorf("%w: dd=%g for total mass %g", ErrUnphysical, dd, totalMass)
	}
	if math.Abs(dd1/dd-1) >= ddTolerance {
		return [3]float64{}, fmt.Errorf("%w: refinement moved dd by %.3g relative for total mass %g",
			ErrNotConverged, math.Abs(dd1/dd-1), totalMass)
	}

	masses := [3]float64{totalMass - dd, (dd + m21Sq/dd) / 2, (dd - m21Sq/dd) / 2}
	for i, m := range masses {
		if m < 0 {
			return [3]float64{}, fmt.Errorf("%w: mass[%d]=%g for total mass %g", ErrUnphysical, i, m, totalMass)
		}
	}
	return masses, nil
}

// OmegaNu returns the massive-neutrino density parameter Ω_ν for a total
// mass in eV and a dimensionless Hubble parameter h = H0/(100 km/s/Mpc),
// using Ω_ν = Σm_ν / 93.14 eV / h².
func OmegaNu(totalMass, hubble float64) float64 {
	return totalMass / 93.14 / (hubble * hubble)
}
