// Public domain.

package nebular

import (
	"math"
)

// Physical constants of the analysis.
const (
	// HaHbIntrinsic is the dust-free Hα/Hβ flux ratio.  Osterbrock.
	HaHbIntrinsic = 2.8

	// HaSFRFactor converts Hα luminosity in erg/s to star formation
	// rate in Msun/yr.  Kennicutt 1998.
	HaSFRFactor = 7.9e-42

	// Rest vacuum wavelengths of the Balmer decrement pair, in Å.
	WaveHa = 6564.6
	WaveHb = 4862.7

	// ErrUnknown is the sentinel for an unavailable measurement error,
	// in erg/s.  It is propagated through results, never computed on.
	ErrUnknown = -999

	// CmPerMpc scales luminosity distances from Mpc to cm.
	CmPerMpc = 3.0856775814913673e24
)

// Line names as used in LineFluxes and by line lists.
const (
	LineHa = "Halpha"
	LineHb = "Hbeta"
)

// Method selects an analysis method.  Unknown values fail with
// UnsupportedMethodError.
type Method string

const (
	MethodHaHb Method = "Ha/Hb" // Balmer decrement extinction estimate
	MethodHa   Method = "Ha"    // SFR from Hα
	MethodHb   Method = "Hb"    // SFR from Hβ
)

// Measurement is an observed line flux with its error, both in
// erg/s/cm².  Err <= 0, conventionally ErrUnknown, means the error is
// unavailable.
type Measurement struct {
	Flux float64
	Err  float64
}

// LineFluxes maps emission-line names to measured fluxes.
type LineFluxes map[string]Measurement

// Luminosity is a line luminosity with its error, both in erg/s.
// Err is exactly ErrUnknown when the input flux error was unavailable.
type Luminosity struct {
	Value float64
	Err   float64
}

// Cosmology supplies luminosity distances.  Implementations are external
// collaborators; the analysis treats them as a black box.
type Cosmology interface {
	// LuminosityDistance returns D_L in Mpc for an emission redshift.
	LuminosityDistance(z float64) float64
}

// LineList resolves emission-line names to rest wavelengths.  See
// package linelist for the built-in galaxy list.
type LineList interface {
	// RestWave returns the vacuum rest wavelength in Å,
	// ok false if the line is not listed.
	RestWave(line string) (wave float64, ok bool)
}

// MissingLineError reports a line absent from a flux set or line list.
type MissingLineError struct {
	Line string
}

func (e *MissingLineError) Error() string { return "line not found: " + e.Line }

// UnsupportedMethodError reports an unrecognized analysis method.
type UnsupportedMethodError struct {
	Method Method
}

func (e *UnsupportedMethodError) Error() string {
	return "unsupported analysis method: " + string(e.Method)
}

// Analyzer performs nebular-line analysis with a line-list collaborator.
type Analyzer struct {
	lines LineList
}

// NewAnalyzer returns an Analyzer resolving rest wavelengths through ll.
func NewAnalyzer(ll LineList) *Analyzer {
	return &Analyzer{lines: ll}
}

// DustExtinction estimates the visual extinction A_V in magnitudes from
// observed line fluxes.  MethodHaHb compares the observed Hα/Hβ ratio to
// the intrinsic value.  The result is not clamped: a bluer than intrinsic
// ratio returns a negative A_V, left to the caller to interpret.
func (an *Analyzer) DustExtinction(fluxes LineFluxes, method Method, curve string) (float64, error) {
	if method != MethodHaHb {
		return 0, &UnsupportedMethodError{Method: method}
	}
	c, err := LoadExtinction(curve)
	if err != nil {
		return 0, err
	}
	fha, ok := fluxes[LineHa]
	if !ok {
		return 0, &MissingLineError{Line: LineHa}
	}
	fhb, ok := fluxes[LineHb]
	if !ok {
		return 0, &MissingLineError{Line: LineHb}
	}
	aha, err := c.AlAV(WaveHa)
	if err != nil {
		return 0, err
	}
	ahb, err := c.AlAV(WaveHb)
	if err != nil {
		return 0, err
	}
	robs := fha.Flux / fhb.Flux
	return 2.5 * math.Log10(HaHbIntrinsic/robs) / (aha - ahb), nil
}

// LineLuminosity converts an observed line flux to luminosity at an
// emission redshift.  If av is non-nil the flux is dust corrected by
// 10^(A_V·a(λ)/2.5) using the named curve at the line's rest wavelength.
// A positive flux error scales identically to the flux; otherwise the
// returned Err is exactly ErrUnknown.
func (an *Analyzer) LineLuminosity(fluxes LineFluxes, line string, z float64,
	cosmo Cosmology, av *float64, curve string) (Luminosity, error) {

	wave, ok := an.lines.RestWave(line)
	if !ok {
		return Luminosity{}, &MissingLineError{Line: line}
	}
	m, ok := fluxes[line]
	if !ok {
		return Luminosity{}, &MissingLineError{Line: line}
	}

	al := 0. // attenuation exponent, magnitudes
	if av != nil {
		c, err := LoadExtinction(curve)
		if err != nil {
			return Luminosity{}, err
		}
		a, err := c.AlAV(wave)
		if err != nil {
			return Luminosity{}, err
		}
		al = *av * a
	}

	dl := cosmo.LuminosityDistance(z) * CmPerMpc
	scale := math.Pow(10, al/2.5) * 4 * math.Pi * dl * dl

	lum := Luminosity{Value: m.Flux * scale, Err: ErrUnknown}
	if m.Err > 0 {
		lum.Err = m.Err * scale
	}
	return lum, nil
}

// SFR estimates the star formation rate in Msun/yr from an observed
// Balmer line.  MethodHb compensates with the intrinsic Hα/Hβ ratio so
// both methods estimate the same Hα-equivalent rate.
func (an *Analyzer) SFR(fluxes LineFluxes, method Method, z float64,
	cosmo Cosmology, av *float64, curve string) (float64, error) {

	var line string
	var conv float64
	switch method {
	case MethodHa:
		line, conv = LineHa, HaSFRFactor
	case MethodHb:
		line, conv = LineHb, HaSFRFactor*HaHbIntrinsic
	default:
		return 0, &UnsupportedMethodError{Method: method}
	}
	lum, err := an.LineLuminosity(fluxes, line, z, cosmo, av, curve)
	if err != nil {
		return 0, err
	}
	return lum.Value * conv, nil
}
