// Public domain.

// Package catalog holds the source-catalog table shared by the survey
// reduction code: ordered columns of measurements with sky positions and
// survey metadata.
package catalog

import (
	"sort"

	"github.com/soniakeys/meeus/v3/angle"
	"github.com/soniakeys/unit"
)

// Coord is an equatorial sky position.
type Coord struct {
	RA  unit.Angle
	Dec unit.Angle
}

// CoordFromDeg returns the Coord for RA and Dec in degrees.
func CoordFromDeg(ra, dec float64) Coord {
	return Coord{RA: unit.AngleFromDeg(ra), Dec: unit.AngleFromDeg(dec)}
}

// Separation returns the angular distance to o.
func (c Coord) Separation(o Coord) unit.Angle {
	return angle.SepHav(c.RA, c.Dec, o.RA, o.Dec)
}

// SchemaError reports a required column or metadata key missing from a
// catalog.
type SchemaError struct {
	Missing string
}

func (e *SchemaError) Error() string { return "catalog schema: missing " + e.Missing }

// Column is one named column of a catalog.  Mask, when non-nil, marks
// cells with no valid value.
type Column struct {
	Name string
	Unit string
	Data []float64
	Mask []bool
}

// Catalog is an ordered table of sources.  Survey and Radius carry the
// metadata of the query that produced it.  Columns share row count;
// rows are addressed by index.
type Catalog struct {
	Survey string
	Radius unit.Angle

	cols  []*Column
	index map[string]int
}

// New returns an empty catalog with query metadata.
func New(survey string, radius unit.Angle) *Catalog {
	return &Catalog{Survey: survey, Radius: radius, index: map[string]int{}}
}

// Add appends a column, replacing any existing column of the same name.
// Panics if data length disagrees with columns already present.
func (t *Catalog) Add(name string, data []float64) *Column {
	if len(t.cols) > 0 && len(data) != t.Len() {
		panic("catalog: column length mismatch")
	}
	c := &Column{Name: name, Data: data}
	if i, ok := t.index[name]; ok {
		t.cols[i] = c
		return c
	}
	t.index[name] = len(t.cols)
	t.cols = append(t.cols, c)
	return c
}

// Col returns the named column, nil if absent.
func (t *Catalog) Col(name string) *Column {
	if i, ok := t.index[name]; ok {
		return t.cols[i]
	}
	return nil
}

// Has reports whether the named column is present.
func (t *Catalog) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Names returns column names in table order.
func (t *Catalog) Names() []string {
	n := make([]string, len(t.cols))
	for i, c := range t.cols {
		n[i] = c.Name
	}
	return n
}

// Len returns the number of rows.
func (t *Catalog) Len() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0].Data)
}

// Rename renames a column in place.  It reports false, leaving the
// catalog unchanged, if old is absent or new already names another
// column.
func (t *Catalog) Rename(old, new string) bool {
	i, ok := t.index[old]
	if !ok {
		return false
	}
	if j, exists := t.index[new]; exists && j != i {
		return false
	}
	delete(t.index, old)
	t.index[new] = i
	t.cols[i].Name = new
	return true
}

// FillMasked replaces every masked cell with v and clears the masks.
// The catalog is modified in place.
func (t *Catalog) FillMasked(v float64) {
	for _, c := range t.cols {
		if c.Mask == nil {
			continue
		}
		for i, m := range c.Mask {
			if m {
				c.Data[i] = v
			}
		}
		c.Mask = nil
	}
}

// Copy returns a deep copy.
func (t *Catalog) Copy() *Catalog {
	order := make([]int, t.Len())
	for i := range order {
		order[i] = i
	}
	return t.reorder(order)
}

// reorder builds a new catalog with rows permuted per order.
func (t *Catalog) reorder(order []int) *Catalog {
	out := New(t.Survey, t.Radius)
	for _, c := range t.cols {
		nc := &Column{Name: c.Name, Unit: c.Unit, Data: make([]float64, len(order))}
		if c.Mask != nil {
			nc.Mask = make([]bool, len(order))
		}
		for i, j := range order {
			nc.Data[i] = c.Data[j]
			if c.Mask != nil {
				nc.Mask[i] = c.Mask[j]
			}
		}
		out.index[nc.Name] = len(out.cols)
		out.cols = append(out.cols, nc)
	}
	return out
}

// Normalize renames survey-intrinsic column names to the desired schema.
// mapping is desired name → name delivered by the survey; pairs whose
// source column is absent are skipped.  fill, when non-nil, then
// replaces masked cells.  The catalog is modified in place and returned.
func Normalize(t *Catalog, mapping map[string]string, fill *float64) *Catalog {
	for want, have := range mapping {
		if t.Has(have) {
			t.Rename(have, want)
		}
	}
	if fill != nil {
		t.FillMasked(*fill)
	}
	return t
}

// CleanUppercase fixes catalogs from services that deliver coordinates
// as RA/DEC: columns are renamed to ra/dec and assigned degree units.
// In place.
func CleanUppercase(t *Catalog) {
	t.Rename("RA", "ra")
	t.Rename("DEC", "dec")
	for _, k := range []string{"ra", "dec"} {
		if c := t.Col(k); c != nil {
			c.Unit = "deg"
		}
	}
}

// SortBySeparation returns the catalog rows reordered by ascending
// angular separation from ref.  raCol and decCol name the coordinate
// columns, in degrees.  With addSep a separation column in arcmin is
// appended (to the input catalog as well) before sorting.
func SortBySeparation(t *Catalog, ref Coord, raCol, decCol string, addSep bool) (*Catalog, error) {
	for _, k := range []string{raCol, decCol} {
		if !t.Has(k) {
			return nil, &SchemaError{Missing: k}
		}
	}
	ra := t.Col(raCol).Data
	dec := t.Col(decCol).Data
	seps := make([]float64, t.Len())
	for i := range seps {
		seps[i] = ref.Separation(CoordFromDeg(ra[i], dec[i])).Min()
	}
	if addSep {
		t.Add("separation", seps).Unit = "arcmin"
	}
	order := make([]int, len(seps))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return seps[order[i]] < seps[order[j]]
	})
	return t.reorder(order), nil
}
