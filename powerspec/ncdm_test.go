package powerspec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keirkwame/icprep/powerspec"
)

// TestTransferNCDM_Identity verifies α = 0 with β > 0 leaves the spectrum
// untouched for any γ.
func TestTransferNCDM_Identity(t *testing.T) {
	for _, k := range []float64{1e-3, 0.5, 80} {
		assert.Equal(t, 1.0, powerspec.TransferNCDM(k, 0, 1, -5), "k=%g", k)
	}

	tab := powerLawTable(50, 1e-2, 1e1, 1e3, -1.5)
	out, err := tab.ApplyNCDM(0, 1, -5)
	require.NoError(t, err)
	assert.Equal(t, tab.P, out.P)
}

// TestTransferNCDM_KnownValue pins the transfer ratio at a point where the
// power law is exact in floating point.
func TestTransferNCDM_KnownValue(t *testing.T) {
	// αk = 1, so T = (1+1)^γ.
	assert.Equal(t, 0.5, powerspec.TransferNCDM(2, 0.5, 2, -1))
	assert.Equal(t, 4.0, powerspec.TransferNCDM(2, 0.5, 2, 2))
}

// TestApplyNCDM_SuppressesSmallScales verifies γ < 0 suppresses power
// monotonically more strongly toward high k, and leaves the input alone.
func TestApplyNCDM_SuppressesSmallScales(t *testing.T) {
	tab := powerLawTable(50, 1e-2, 1e1, 1e3, -1.5)
	orig := tab.Clone()

	out, err := tab.ApplyNCDM(0.05, 2, -5)
	require.NoError(t, err)

	prev := 1.0
	for i := range out.K {
		ratio := out.P[i] / tab.P[i]
		assert.LessOrEqual(t, ratio, 1.0, "nCDM must not add power at k=%g", out.K[i])
		assert.LessOrEqual(t, ratio, prev, "suppression must grow with k")
		prev = ratio
	}
	assert.Equal(t, orig.P, tab.P, "receiver must not be mutated")
}
