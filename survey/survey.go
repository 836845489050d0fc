// Public domain.

// Package survey frames access to source catalogs delivered by external
// sky-survey services: the query interface, the catalog invariant, and
// per-survey column-map configuration.
package survey

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/soniakeys/unit"
	"gopkg.in/yaml.v3"

	"github.com/frbhosts/hostgal/catalog"
)

// Source queries one survey for sources around a sky position.
// Implementations live outside this module; the reduction code only
// consumes the catalogs they return.  The survey name travels in the
// catalog metadata.
type Source interface {
	// Query returns the catalog of sources within radius of c.
	Query(c catalog.Coord, radius unit.Angle) (*catalog.Catalog, error)
}

// Base carries a survey query and its catalog product.  Source
// implementations embed it.
type Base struct {
	Coord   catalog.Coord
	Radius  unit.Angle
	Survey  string
	Catalog *catalog.Catalog
}

// Validate checks the catalog invariant: a non-empty catalog must have
// ra and dec columns and survey and radius metadata.  An empty or absent
// catalog passes.
func (b *Base) Validate() error {
	t := b.Catalog
	if t == nil || t.Len() == 0 {
		return nil
	}
	for _, k := range []string{"ra", "dec"} {
		if !t.Has(k) {
			return &catalog.SchemaError{Missing: k}
		}
	}
	if t.Survey == "" {
		return &catalog.SchemaError{Missing: "survey metadata"}
	}
	if t.Radius == 0 {
		return &catalog.SchemaError{Missing: "radius metadata"}
	}
	return nil
}

// ColumnMaps is per-survey column renaming configuration:
// survey name → desired column name → column name the survey delivers.
type ColumnMaps map[string]map[string]string

// LoadColumnMaps reads ColumnMaps from YAML.
func LoadColumnMaps(r io.Reader) (ColumnMaps, error) {
	var m ColumnMaps
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

type jsonColumn struct {
	Name string    `json:"name"`
	Unit string    `json:"unit,omitempty"`
	Data []float64 `json:"data"`
	Mask []bool    `json:"mask,omitempty"`
}

type jsonCatalog struct {
	Survey       string       `json:"survey"`
	RadiusArcmin float64      `json:"radius_arcmin"`
	Columns      []jsonColumn `json:"columns"`
}

// WriteJSON writes a catalog snapshot as indented JSON: survey, query
// radius in arcmin, and the columns in table order.  A column's mask,
// when present, is written alongside its data.
func WriteJSON(w io.Writer, t *catalog.Catalog) error {
	jc := jsonCatalog{Survey: t.Survey, RadiusArcmin: t.Radius.Min()}
	for _, name := range t.Names() {
		c := t.Col(name)
		jc.Columns = append(jc.Columns, jsonColumn{Name: c.Name, Unit: c.Unit, Data: c.Data, Mask: c.Mask})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&jc)
}
