// Public domain.

// Package nebular derives dust extinction, emission-line luminosity and
// star formation rate from nebular line fluxes of a host galaxy.
package nebular

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// CurveMW names the standard Galactic extinction law (Cardelli).
const CurveMW = "MW"

//go:embed data/MW_dust.dat
var mwDust string

// ErrUnknownCurve reports an extinction curve name with no tabulated data.
var ErrUnknownCurve = errors.New("unknown extinction curve")

// OutOfDomainError reports a wavelength outside the tabulated range of an
// extinction curve.
type OutOfDomainError struct {
	Wave   float64 // Å, as queried
	Lo, Hi float64 // Å, tabulated domain
}

func (e *OutOfDomainError) Error() string {
	return fmt.Sprintf("wavelength %.1f Å outside tabulated range %.1f-%.1f Å",
		e.Wave, e.Lo, e.Hi)
}

// ExtinctionCurve is a tabulated attenuation law, A_λ/A_V as a function
// of wavelength.  Immutable once loaded.
type ExtinctionCurve struct {
	Name string
	wave []float64 // Å, ascending
	alav []float64
}

var (
	curveMu    sync.Mutex
	curveCache = map[string]*ExtinctionCurve{}
)

// LoadExtinction loads an extinction curve by name.  Only CurveMW is
// tabulated.  Curves are cached by name after the first load and the
// cached curve is safe for concurrent use.
func LoadExtinction(curve string) (*ExtinctionCurve, error) {
	curveMu.Lock()
	defer curveMu.Unlock()
	if c, ok := curveCache[curve]; ok {
		return c, nil
	}
	if curve != CurveMW {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCurve, curve)
	}
	c, err := ReadCurve(curve, strings.NewReader(mwDust))
	if err != nil {
		return nil, err
	}
	curveCache[curve] = c
	return c, nil
}

// ReadCurve parses a whitespace separated curve table.  The first
// non-empty line holds column names, which must include wave and Al_AV.
// Samples are sorted by wavelength as needed.
func ReadCurve(name string, r io.Reader) (*ExtinctionCurve, error) {
	scn := bufio.NewScanner(r)
	wx, ax := -1, -1
	c := &ExtinctionCurve{Name: name}
	for scn.Scan() {
		f := strings.Fields(scn.Text())
		if len(f) == 0 {
			continue
		}
		if wx < 0 {
			// header line
			for i, h := range f {
				switch h {
				case "wave":
					wx = i
				case "Al_AV":
					ax = i
				}
			}
			if wx < 0 || ax < 0 {
				return nil, fmt.Errorf("curve %s: header must name wave and Al_AV columns", name)
			}
			continue
		}
		if len(f) <= wx || len(f) <= ax {
			return nil, fmt.Errorf("curve %s: short data line", name)
		}
		w, err := strconv.ParseFloat(f[wx], 64)
		if err != nil {
			return nil, fmt.Errorf("curve %s: %v", name, err)
		}
		a, err := strconv.ParseFloat(f[ax], 64)
		if err != nil {
			return nil, fmt.Errorf("curve %s: %v", name, err)
		}
		c.wave = append(c.wave, w)
		c.alav = append(c.alav, a)
	}
	if err := scn.Err(); err != nil {
		return nil, err
	}
	if len(c.wave) < 2 {
		return nil, fmt.Errorf("curve %s: need at least two samples", name)
	}
	if !sort.Float64sAreSorted(c.wave) {
		sort.Sort(byWave{c})
	}
	return c, nil
}

type byWave struct{ c *ExtinctionCurve }

func (s byWave) Len() int           { return len(s.c.wave) }
func (s byWave) Less(i, j int) bool { return s.c.wave[i] < s.c.wave[j] }
func (s byWave) Swap(i, j int) {
	s.c.wave[i], s.c.wave[j] = s.c.wave[j], s.c.wave[i]
	s.c.alav[i], s.c.alav[j] = s.c.alav[j], s.c.alav[i]
}

// Domain returns the tabulated wavelength range in Å.
func (c *ExtinctionCurve) Domain() (lo, hi float64) {
	return c.wave[0], c.wave[len(c.wave)-1]
}

// AlAV interpolates the normalized attenuation A_λ/A_V at a wavelength
// in Å, linearly between tabulated samples.
func (c *ExtinctionCurve) AlAV(wave float64) (float64, error) {
	lo, hi := c.Domain()
	if wave < lo || wave > hi {
		return 0, &OutOfDomainError{Wave: wave, Lo: lo, Hi: hi}
	}
	i := sort.SearchFloat64s(c.wave, wave)
	if i < len(c.wave) && c.wave[i] == wave {
		return c.alav[i], nil
	}
	// wave is strictly between samples i-1 and i here
	w0, w1 := c.wave[i-1], c.wave[i]
	t := (wave - w0) / (w1 - w0)
	return c.alav[i-1] + t*(c.alav[i]-c.alav[i-1]), nil
}
