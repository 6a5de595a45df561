package powerspec

import "math"

// TransferNCDM returns the non-cold dark matter transfer ratio
//
//	T(k) = (1 + (αk)^β)^γ
//
// the square root of the ratio of the linear power spectrum with nCDM to
// the pure-CDM one. With α = 0 and β > 0 the ratio is 1 at every k.
func TransferNCDM(k, alpha, beta, gamma float64) float64 {
	return math.Pow(1+math.Pow(alpha*k, beta), gamma)
}

// ApplyNCDM returns a copy of the table with each P multiplied by the
// squared nCDM transfer ratio at its k. The receiver is never mutated.
func (t Table) ApplyNCDM(alpha, beta, gamma float64) (Table, error) {
	if err := t.validate(); err != nil {
		return Table{}, err
	}
	out := t.Clone()
	for i, k := range out.K {
		tr := TransferNCDM(k, alpha, beta, gamma)
		out.P[i] *= tr * tr
	}
	return out, nil
}
