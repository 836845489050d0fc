// Public domain.

package nebular_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frbhosts/hostgal/nebular"
)

func TestLoadExtinctionMW(t *testing.T) {
	c, err := nebular.LoadExtinction(nebular.CurveMW)
	require.NoError(t, err)

	// second load comes from the cache
	c2, err := nebular.LoadExtinction(nebular.CurveMW)
	require.NoError(t, err)
	require.Same(t, c, c2)

	// normalized at V band
	a, err := c.AlAV(5500)
	require.NoError(t, err)
	require.InDelta(t, 1, a, .02)

	// attenuation rises toward the blue over the Balmer pair
	aha, err := c.AlAV(nebular.WaveHa)
	require.NoError(t, err)
	ahb, err := c.AlAV(nebular.WaveHb)
	require.NoError(t, err)
	require.Greater(t, ahb, aha)
}

func TestLoadExtinctionUnknown(t *testing.T) {
	_, err := nebular.LoadExtinction("SMC")
	require.ErrorIs(t, err, nebular.ErrUnknownCurve)
}

func TestAlAVContinuous(t *testing.T) {
	c, err := nebular.LoadExtinction(nebular.CurveMW)
	require.NoError(t, err)
	lo, hi := c.Domain()
	step := (hi - lo) / 5000
	prev, err := c.AlAV(lo)
	require.NoError(t, err)
	for w := lo + step; w <= hi; w += step {
		a, err := c.AlAV(w)
		if err != nil {
			t.Fatalf("AlAV(%g): %v", w, err)
		}
		if math.IsNaN(a) {
			t.Fatalf("AlAV(%g) = NaN", w)
		}
		// the tabulation is fine enough that neighboring queries at
		// this step stay close
		if math.Abs(a-prev) > .1 {
			t.Fatalf("AlAV jump at %g: %g to %g", w, prev, a)
		}
		prev = a
	}
}

func TestAlAVOutOfDomain(t *testing.T) {
	c, err := nebular.LoadExtinction(nebular.CurveMW)
	require.NoError(t, err)
	lo, hi := c.Domain()
	var ode *nebular.OutOfDomainError
	_, err = c.AlAV(lo - 1)
	require.ErrorAs(t, err, &ode)
	_, err = c.AlAV(hi + 1)
	require.ErrorAs(t, err, &ode)
	require.Equal(t, hi+1, ode.Wave)
}

func TestReadCurve(t *testing.T) {
	// samples out of order are sorted on read
	c, err := nebular.ReadCurve("toy",
		strings.NewReader("wave Al_AV\n3000 2\n1000 4\n2000 3\n"))
	require.NoError(t, err)
	a, err := c.AlAV(1500)
	require.NoError(t, err)
	require.InDelta(t, 3.5, a, 1e-12)

	// exact sample hit
	a, err = c.AlAV(2000)
	require.NoError(t, err)
	require.Equal(t, 3., a)
}

func TestReadCurveBad(t *testing.T) {
	for _, in := range []string{
		"wavelength alav\n1000 2\n2000 1\n", // wrong header names
		"wave Al_AV\n1000 2\n",              // single sample
		"wave Al_AV\n1000 x\n2000 1\n",      // bad number
	} {
		_, err := nebular.ReadCurve("bad", strings.NewReader(in))
		require.Error(t, err, in)
	}
}
