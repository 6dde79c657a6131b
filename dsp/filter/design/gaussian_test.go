package design

import (
	"math"
	"math/cmplx"
	"testing"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-blockiir/dsp/filter/blockiir"
	"github.com/cwbudde/algo-blockiir/internal/reference"
	"github.com/cwbudde/algo-blockiir/internal/testutil"
)

const impulseLen = 1024

// impulseResponse returns the two-pass response to an impulse in the
// middle of a line.
func impulseResponse(c blockiir.Coefficients) []float64 {
	x := testutil.Impulse(impulseLen, impulseLen/2)
	s := reference.Section{B0: c.B0, A1: c.A1, A2: c.A2}
	s.Causal(x)
	s.Anticausal(x)
	return x
}

// powerResponse is |H(e^jw)|² of one pass.
func powerResponse(c blockiir.Coefficients, w float64) float64 {
	z1 := cmplx.Exp(complex(0, -w))
	h := complex(c.B0, 0) / (1 - complex(c.A1, 0)*z1 - complex(c.A2, 0)*z1*z1)
	return real(h * cmplx.Conj(h))
}

func gaussianL2(x []float64, sigma float64) float64 {
	e := 0.0
	for i, v := range x {
		d := float64(i - len(x)/2)
		g := math.Exp(-d*d/(2*sigma*sigma)) / (math.Sqrt(2*math.Pi) * sigma)
		e += (v - g) * (v - g)
	}
	return math.Sqrt(e)
}

func TestGaussianUnitDCGain(t *testing.T) {
	for _, order := range []int{1, 2} {
		for _, sigma := range []float64{0.5, 1, 3, 10, 40} {
			c, err := Gaussian(sigma, order)
			require.NoError(t, err)
			require.NoError(t, c.Validate())
			require.Equal(t, order, c.Order)
			require.InDelta(t, 1, c.B0/(1-c.A1-c.A2), 1e-12, "order %d sigma %v", order, sigma)
		}
	}
}

func TestGaussianStable(t *testing.T) {
	for _, sigma := range []float64{0.5, 2, 16, 100} {
		c, err := Gaussian(sigma, 2)
		require.NoError(t, err)

		// Complex poles inside the unit circle.
		require.Less(t, c.A1*c.A1+4*c.A2, 0.0, "sigma %v", sigma)
		require.Less(t, -c.A2, 1.0, "sigma %v", sigma)

		c, err = Gaussian(sigma, 1)
		require.NoError(t, err)
		require.Greater(t, c.A1, 0.0)
		require.Less(t, c.A1, 1.0)
	}
}

func TestGaussianFrequencyResponse(t *testing.T) {
	plan, err := algofft.NewPlan64(impulseLen)
	require.NoError(t, err)

	for _, order := range []int{1, 2} {
		for _, sigma := range []float64{1, 4, 12} {
			c, err := Gaussian(sigma, order)
			require.NoError(t, err)

			x := impulseResponse(c)
			in := make([]complex128, impulseLen)
			for i, v := range x {
				in[i] = complex(v, 0)
			}
			out := make([]complex128, impulseLen)
			require.NoError(t, plan.Forward(out, in))

			for k := 0; k <= impulseLen/2; k++ {
				w := 2 * math.Pi * float64(k) / impulseLen
				require.InDelta(t, powerResponse(c, w), cmplx.Abs(out[k]), 1e-6,
					"order %d sigma %v bin %d", order, sigma, k)
			}
		}
	}
}

func TestGaussianShape(t *testing.T) {
	for _, sigma := range []float64{2, 4, 8, 16} {
		c1, err := Gaussian(sigma, 1)
		require.NoError(t, err)
		c2, err := Gaussian(sigma, 2)
		require.NoError(t, err)

		e1 := gaussianL2(impulseResponse(c1), sigma)
		e2 := gaussianL2(impulseResponse(c2), sigma)

		require.Less(t, e2, e1, "sigma %v", sigma)
		require.Less(t, e2, 0.03, "sigma %v", sigma)
		require.Less(t, e1, 0.15, "sigma %v", sigma)
	}
}

func TestGaussianWiderSigmaSmoothsMore(t *testing.T) {
	for _, order := range []int{1, 2} {
		prev := math.Inf(1)
		for _, sigma := range []float64{1, 2, 4, 8} {
			c, err := Gaussian(sigma, order)
			require.NoError(t, err)

			peak := impulseResponse(c)[impulseLen/2]
			require.Less(t, peak, prev, "order %d sigma %v", order, sigma)
			prev = peak
		}
	}
}

func TestGaussianRejectsInvalidInput(t *testing.T) {
	for _, sigma := range []float64{0, 0.49, -1, math.NaN(), math.Inf(1)} {
		_, err := Gaussian(sigma, 2)
		require.ErrorIs(t, err, ErrInvalidSigma, "sigma %v", sigma)
	}

	for _, order := range []int{0, 3} {
		_, err := Gaussian(2, order)
		require.ErrorIs(t, err, blockiir.ErrInvalidOrder)
	}
}
