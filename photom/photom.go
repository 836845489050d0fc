// Public domain.

// Package photom converts survey photometry from magnitudes to physical
// flux densities with survey-specific zero points.
package photom

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/frbhosts/hostgal/catalog"
)

// Unmeasured is the sentinel stored for photometry with no valid
// measurement.  It signals absence of data, not zero flux.
const Unmeasured = -99

// ABZeroPoint is the AB magnitude zero point flux density in Jy, used
// for every filter without a survey-specific value.
const ABZeroPoint = 3630.7805

// ErrUnknownUnits reports a flux unit name with no conversion.
var ErrUnknownUnits = errors.New("unknown flux units")

// ValidFilters lists every recognized photometric column name.  Error
// columns are the same names suffixed _err.  Unrecognized columns pass
// through conversion untouched.
var ValidFilters = []string{
	"SDSS_u", "SDSS_g", "SDSS_r", "SDSS_i", "SDSS_z",
	"DES_g", "DES_r", "DES_i", "DES_z", "DES_Y",
	"DECaL_g", "DECaL_r", "DECaL_z",
	"Pan-STARRS_g", "Pan-STARRS_r", "Pan-STARRS_i", "Pan-STARRS_z", "Pan-STARRS_y",
	"VISTA_Y", "VISTA_J", "VISTA_H", "VISTA_Ks",
	"W1", "W2", "W3", "W4",
	"WISE1", "WISE2", "WISE3", "WISE4",
}

// Zero point flux densities in Jy for filters not on the AB system.
// WISE per the AllWISE explanatory supplement, VISTA per the SVO filter
// profile service.
var zeroPoints = map[string]float64{
	"W1": 309.54, "W2": 171.787, "W3": 31.674, "W4": 8.363,
	"WISE1": 309.54, "WISE2": 171.787, "WISE3": 31.674, "WISE4": 8.363,
	"VISTA_Y": 2087.32, "VISTA_J": 1554.03, "VISTA_H": 1030.40, "VISTA_Ks": 674.83,
}

// flux unit scale factors relative to mJy
var fluxScale = map[string]float64{
	"Jy":  1e-3,
	"mJy": 1,
	"uJy": 1e3,
}

func masked(m []bool, i int) bool { return m != nil && m[i] }

// DetectMagCols returns the recognized magnitude columns of a table and
// the present _err counterparts, in registry order.
func DetectMagCols(t *catalog.Catalog) (mags, errs []string) {
	for _, f := range ValidFilters {
		if t.Has(f) {
			mags = append(mags, f)
		}
		if t.Has(f + "_err") {
			errs = append(errs, f+"_err")
		}
	}
	return mags, errs
}

// ConvertMagsToFlux returns a new catalog with every recognized
// magnitude column replaced by flux density in the requested units
// (Jy, mJy or uJy) and error columns converted consistently.  A negative
// or masked magnitude marks a missing measurement: flux and error both
// become Unmeasured.  A negative or masked magnitude error alone yields
// an Unmeasured error.  Converted columns carry no mask on output; the
// sentinel encodes the absence.  WISE columns named W* are renamed
// WISE* on output to disambiguate them from similarly named filters of
// other surveys.
func ConvertMagsToFlux(t *catalog.Catalog, units string) (*catalog.Catalog, error) {
	scale, ok := fluxScale[units]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUnits, units)
	}
	out := t.Copy()
	mags, _ := DetectMagCols(t)
	for _, m := range mags {
		zp, ok := zeroPoints[m]
		if !ok {
			zp = ABZeroPoint
		}
		errName := m + "_err"
		fc := out.Col(m)
		ec := out.Col(errName)
		magIn := t.Col(m).Data
		magMask := t.Col(m).Mask
		var errIn []float64
		var errMask []bool
		if ec != nil {
			errIn = t.Col(errName).Data
			errMask = t.Col(errName).Mask
		}
		for i, mag := range magIn {
			if mag < 0 || masked(magMask, i) {
				fc.Data[i] = Unmeasured
				if ec != nil {
					ec.Data[i] = Unmeasured
				}
				continue
			}
			// Jy, then 1000x to mJy, then to requested units
			f := zp * math.Pow(10, -mag/2.5) * 1000 * scale
			fc.Data[i] = f
			if ec == nil {
				continue
			}
			if errIn[i] < 0 || masked(errMask, i) {
				ec.Data[i] = Unmeasured
			} else {
				ec.Data[i] = f * (math.Pow(10, errIn[i]/2.5) - 1)
			}
		}
		fc.Unit = units
		fc.Mask = nil
		if ec != nil {
			ec.Unit = units
			ec.Mask = nil
		}
		if strings.HasPrefix(m, "W") && !strings.HasPrefix(m, "WISE") {
			wise := "WISE" + m[1:]
			out.Rename(m, wise)
			out.Rename(errName, wise+"_err")
		}
	}
	return out, nil
}
