// Public domain.

package nebular_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frbhosts/hostgal/linelist"
	"github.com/frbhosts/hostgal/nebular"
)

// fixedCosmo returns the same luminosity distance in Mpc for any
// redshift, standing in for the cosmology collaborator.
type fixedCosmo float64

func (c fixedCosmo) LuminosityDistance(z float64) float64 { return float64(c) }

func TestDustExtinctionIntrinsicRatio(t *testing.T) {
	an := nebular.NewAnalyzer(linelist.Galaxy())
	fluxes := nebular.LineFluxes{
		nebular.LineHa: {Flux: 2.8e-16, Err: 1e-18},
		nebular.LineHb: {Flux: 1e-16, Err: 1e-18},
	}
	av, err := an.DustExtinction(fluxes, nebular.MethodHaHb, nebular.CurveMW)
	require.NoError(t, err)
	require.InDelta(t, 0, av, 1e-10)
}

func TestDustExtinctionSign(t *testing.T) {
	an := nebular.NewAnalyzer(linelist.Galaxy())

	// redder than intrinsic: positive extinction
	av, err := an.DustExtinction(nebular.LineFluxes{
		nebular.LineHa: {Flux: 4.2e-16},
		nebular.LineHb: {Flux: 1e-16},
	}, nebular.MethodHaHb, nebular.CurveMW)
	require.NoError(t, err)
	require.Greater(t, av, 0.)

	// bluer than intrinsic: negative, returned unclamped
	av, err = an.DustExtinction(nebular.LineFluxes{
		nebular.LineHa: {Flux: 2e-16},
		nebular.LineHb: {Flux: 1e-16},
	}, nebular.MethodHaHb, nebular.CurveMW)
	require.NoError(t, err)
	require.Less(t, av, 0.)
}

func TestDustExtinctionErrors(t *testing.T) {
	an := nebular.NewAnalyzer(linelist.Galaxy())
	fluxes := nebular.LineFluxes{
		nebular.LineHa: {Flux: 2.8e-16},
		nebular.LineHb: {Flux: 1e-16},
	}

	var ume *nebular.UnsupportedMethodError
	_, err := an.DustExtinction(fluxes, nebular.Method("OII"), nebular.CurveMW)
	require.ErrorAs(t, err, &ume)

	var mle *nebular.MissingLineError
	_, err = an.DustExtinction(nebular.LineFluxes{
		nebular.LineHa: {Flux: 2.8e-16},
	}, nebular.MethodHaHb, nebular.CurveMW)
	require.ErrorAs(t, err, &mle)
	require.Equal(t, nebular.LineHb, mle.Line)

	_, err = an.DustExtinction(fluxes, nebular.MethodHaHb, "LMC")
	require.ErrorIs(t, err, nebular.ErrUnknownCurve)
}

func TestLineLuminosity(t *testing.T) {
	an := nebular.NewAnalyzer(linelist.Galaxy())
	const f, fe = 1e-17, 2e-19
	fluxes := nebular.LineFluxes{nebular.LineHa: {Flux: f, Err: fe}}

	lum, err := an.LineLuminosity(fluxes, nebular.LineHa, .3,
		fixedCosmo(100), nil, nebular.CurveMW)
	require.NoError(t, err)

	dl := 100 * nebular.CmPerMpc
	scale := 4 * math.Pi * dl * dl
	require.InEpsilon(t, f*scale, lum.Value, 1e-12)
	require.InEpsilon(t, fe*scale, lum.Err, 1e-12)
}

func TestLineLuminosityDustCorrected(t *testing.T) {
	an := nebular.NewAnalyzer(linelist.Galaxy())
	fluxes := nebular.LineFluxes{nebular.LineHa: {Flux: 1e-17}}
	cosmo := fixedCosmo(400)

	plain, err := an.LineLuminosity(fluxes, nebular.LineHa, .1, cosmo, nil, nebular.CurveMW)
	require.NoError(t, err)
	av := 1.
	corr, err := an.LineLuminosity(fluxes, nebular.LineHa, .1, cosmo, &av, nebular.CurveMW)
	require.NoError(t, err)

	c, err := nebular.LoadExtinction(nebular.CurveMW)
	require.NoError(t, err)
	wave, ok := linelist.Galaxy().RestWave(nebular.LineHa)
	require.True(t, ok)
	a, err := c.AlAV(wave)
	require.NoError(t, err)
	require.InEpsilon(t, math.Pow(10, av*a/2.5), corr.Value/plain.Value, 1e-12)
}

func TestLineLuminosityErrSentinel(t *testing.T) {
	an := nebular.NewAnalyzer(linelist.Galaxy())
	for _, fe := range []float64{nebular.ErrUnknown, 0, -1} {
		fluxes := nebular.LineFluxes{nebular.LineHb: {Flux: 1e-17, Err: fe}}
		lum, err := an.LineLuminosity(fluxes, nebular.LineHb, .1,
			fixedCosmo(500), nil, nebular.CurveMW)
		require.NoError(t, err)
		require.Equal(t, float64(nebular.ErrUnknown), lum.Err)
		require.Greater(t, lum.Value, 0.)
	}
}

func TestLineLuminosityMissing(t *testing.T) {
	an := nebular.NewAnalyzer(linelist.Galaxy())
	var mle *nebular.MissingLineError

	// line absent from the flux set
	_, err := an.LineLuminosity(nebular.LineFluxes{}, nebular.LineHa, .1,
		fixedCosmo(100), nil, nebular.CurveMW)
	require.ErrorAs(t, err, &mle)

	// line absent from the line list
	_, err = an.LineLuminosity(nebular.LineFluxes{"Lyalpha": {Flux: 1e-17}},
		"Lyalpha", .1, fixedCosmo(100), nil, nebular.CurveMW)
	require.ErrorAs(t, err, &mle)
	require.Equal(t, "Lyalpha", mle.Line)
}

func TestSFRMethodsAgree(t *testing.T) {
	an := nebular.NewAnalyzer(linelist.Galaxy())
	// fluxes at the intrinsic ratio, no extinction applied: the Hβ
	// calibration compensates and both methods agree
	fluxes := nebular.LineFluxes{
		nebular.LineHa: {Flux: 2.8e-16, Err: 1e-18},
		nebular.LineHb: {Flux: 1e-16, Err: 1e-18},
	}
	cosmo := fixedCosmo(980)

	sfrHa, err := an.SFR(fluxes, nebular.MethodHa, .2, cosmo, nil, nebular.CurveMW)
	require.NoError(t, err)
	sfrHb, err := an.SFR(fluxes, nebular.MethodHb, .2, cosmo, nil, nebular.CurveMW)
	require.NoError(t, err)
	require.Greater(t, sfrHa, 0.)
	require.InEpsilon(t, sfrHa, sfrHb, 1e-12)
}

func TestSFRUnsupportedMethod(t *testing.T) {
	an := nebular.NewAnalyzer(linelist.Galaxy())
	var ume *nebular.UnsupportedMethodError
	_, err := an.SFR(nebular.LineFluxes{}, nebular.MethodHaHb, .2,
		fixedCosmo(100), nil, nebular.CurveMW)
	require.ErrorAs(t, err, &ume)
}
