// Public domain.

package catalog

import (
	"fmt"

	"github.com/soniakeys/unit"
)

// Summarize describes the catalog sources within radius of ref as human
// readable text: a count line and, when any source is found, the
// brightest source's value in photomCol and the closest source's
// separation and value.  isMag selects the minimum of photomCol as
// brightest, otherwise the maximum.  Rows with a masked coordinate or
// photometry cell are ignored.
func Summarize(ref Coord, t *Catalog, radius unit.Angle, photomCol string, isMag bool) ([]string, error) {
	for _, k := range []string{"ra", "dec", photomCol} {
		if !t.Has(k) {
			return nil, &SchemaError{Missing: k}
		}
	}
	ra := t.Col("ra").Data
	dec := t.Col("dec").Data
	val := t.Col(photomCol).Data
	masks := [][]bool{t.Col("ra").Mask, t.Col("dec").Mask, t.Col(photomCol).Mask}

	var in []int
	var seps []unit.Angle
	for i := 0; i < t.Len(); i++ {
		if rowMasked(masks, i) {
			continue
		}
		s := ref.Separation(CoordFromDeg(ra[i], dec[i]))
		if s < radius {
			in = append(in, i)
			seps = append(seps, s)
		}
	}

	sum := []string{fmt.Sprintf("%s: There are %d source(s) within %.1f arcsec",
		t.Survey, len(in), radius.Sec())}
	if len(in) == 0 {
		return sum, nil
	}

	brightest, closest := 0, 0
	for k := range in {
		b := val[in[k]] > val[in[brightest]]
		if isMag {
			b = val[in[k]] < val[in[brightest]]
		}
		if b {
			brightest = k
		}
		if seps[k] < seps[closest] {
			closest = k
		}
	}
	sum = append(sum, fmt.Sprintf("%s: The brightest source has %s of %.2f",
		t.Survey, photomCol, val[in[brightest]]))
	sum = append(sum, fmt.Sprintf(
		"%s: The closest source is at separation %.2f arcsec and has %s of %.2f",
		t.Survey, seps[closest].Sec(), photomCol, val[in[closest]]))
	return sum, nil
}

func rowMasked(masks [][]bool, i int) bool {
	for _, m := range masks {
		if m != nil && m[i] {
			return true
		}
	}
	return false
}
