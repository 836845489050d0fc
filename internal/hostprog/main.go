// Public domain.

// Package hostprog implements the hostgal command: reduce a survey
// catalog around an FRB localization and summarize candidate hosts.
package hostprog

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/soniakeys/exit"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/frbhosts/hostgal/catalog"
	"github.com/frbhosts/hostgal/photom"
	"github.com/frbhosts/hostgal/survey"
)

const versionString = "hostgal version 0.1 Go source."
const copyrightString = "Public domain."

func Main() {
	defer exit.Handler()

	cl := parseCommandLine()
	cat := readCatalogFile(cl)

	var maps survey.ColumnMaps
	if cl.mapFile != "" {
		maps = readColumnMaps(cl)
	}
	sorted, sum, err := reduce(cl, cat, maps)
	if err != nil {
		exit.Log(err)
	}

	fmt.Printf("Reference coordinate: %v %v\n",
		sexa.FmtRA(unit.RAFromDeg(cl.ra)), sexa.FmtAngle(unit.AngleFromDeg(cl.dec)))
	for _, s := range sum {
		fmt.Println(s)
	}

	if cl.jsonFile != "" {
		writeJSON(cl.jsonFile, sorted)
	}
}

// reduce runs the catalog pipeline: normalize names, fill masked cells,
// convert magnitudes to fluxes, sort by separation from the reference,
// and summarize.  With -mag the summary reads the catalog before flux
// conversion so it reports magnitudes, otherwise the converted catalog.
func reduce(cl *commandLine, cat *catalog.Catalog, maps survey.ColumnMaps) (*catalog.Catalog, []string, error) {
	cat.Survey = cl.survey
	cat.Radius = unit.AngleFromMin(cl.queryRadius)
	catalog.CleanUppercase(cat)

	if maps != nil {
		m, ok := maps[cl.survey]
		if !ok {
			return nil, nil, fmt.Errorf("no column map for survey %s", cl.survey)
		}
		catalog.Normalize(cat, m, nil)
	}
	if cl.fill != nil {
		cat.FillMasked(*cl.fill)
	}

	b := survey.Base{
		Coord:   cl.ref,
		Radius:  cat.Radius,
		Survey:  cl.survey,
		Catalog: cat,
	}
	if err := b.Validate(); err != nil {
		return nil, nil, err
	}

	flux, err := photom.ConvertMagsToFlux(cat, cl.units)
	if err != nil {
		return nil, nil, err
	}
	sorted, err := catalog.SortBySeparation(flux, cl.ref, "ra", "dec", true)
	if err != nil {
		return nil, nil, err
	}

	var sum []string
	if cl.photomCol != "" {
		src := sorted
		if cl.isMag {
			src = cat
		}
		sum, err = catalog.Summarize(cl.ref, src,
			unit.AngleFromSec(cl.sumRadius), cl.photomCol, cl.isMag)
		if err != nil {
			return nil, nil, err
		}
	}
	return sorted, sum, nil
}

type commandLine struct {
	ra, dec     float64
	ref         catalog.Coord
	survey      string
	mapFile     string
	fill        *float64
	units       string
	photomCol   string
	isMag       bool
	sumRadius   float64 // arcsec
	queryRadius float64 // arcmin
	jsonFile    string
	fnCat       string
}

func parseCommandLine() *commandLine {
	var cl commandLine
	var fill string
	flag.Float64Var(&cl.ra, "ra", math.NaN(), "")
	flag.Float64Var(&cl.dec, "dec", math.NaN(), "")
	flag.StringVar(&cl.survey, "s", "", "")
	flag.StringVar(&cl.mapFile, "map", "", "")
	flag.StringVar(&fill, "fill", "", "")
	flag.StringVar(&cl.units, "u", "mJy", "")
	flag.StringVar(&cl.photomCol, "col", "", "")
	flag.BoolVar(&cl.isMag, "mag", false, "")
	flag.Float64Var(&cl.sumRadius, "r", 10, "")
	flag.Float64Var(&cl.queryRadius, "qr", 1, "")
	flag.StringVar(&cl.jsonFile, "json", "", "")
	vers := flag.Bool("v", false, "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: hostgal [options] <catalog.csv>   reduce catalog in file
       hostgal [options] -               reduce catalog from stdin
       hostgal -v                        display version and copyright

Options:
       -ra <deg> -dec <deg>   reference (FRB) coordinate, required
       -s <survey>            survey name for metadata and column map
       -map <file>            column map configuration, YAML
       -fill <value>          fill masked cells with this value
       -u <units>             flux units: Jy, mJy, uJy (default mJy)
       -col <column>          photometry column to summarize
       -mag                   summarized column holds magnitudes
       -r <arcsec>            summary radius (default 10)
       -qr <arcmin>           query radius metadata (default 1)
       -json <file>           write reduced catalog as JSON
`)
	}
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() != 1 || math.IsNaN(cl.ra) || math.IsNaN(cl.dec) {
		flag.Usage()
		os.Exit(1)
	}
	cl.fnCat = flag.Arg(0)
	cl.ref = catalog.CoordFromDeg(cl.ra, cl.dec)
	if fill != "" {
		v, err := strconv.ParseFloat(fill, 64)
		if err != nil {
			exit.Log("bad -fill value: " + fill)
		}
		cl.fill = &v
	}
	return &cl
}

func readCatalogFile(cl *commandLine) *catalog.Catalog {
	f := os.Stdin
	if cl.fnCat != "-" {
		var err error
		f, err = os.Open(cl.fnCat)
		if err != nil {
			exit.Log(err)
		}
		defer f.Close()
	}
	cat, err := ReadCSV(f)
	if err != nil {
		exit.Log(err)
	}
	return cat
}

// ReadCSV builds a catalog from CSV with a header row.  Cells that do
// not parse as numbers are masked; columns with no numeric cells at all
// are dropped with a log notice.
func ReadCSV(r io.Reader) (*catalog.Catalog, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	cat := catalog.New("", 0)
	if len(recs) < 2 {
		return cat, nil
	}
	header := recs[0]
	rows := recs[1:]
	for j, name := range header {
		data := make([]float64, len(rows))
		var mask []bool
		numeric := 0
		for i, rec := range rows {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				if mask == nil {
					mask = make([]bool, len(rows))
				}
				mask[i] = true
				continue
			}
			data[i] = v
			numeric++
		}
		if numeric == 0 {
			log.Println("dropping non-numeric column:", name)
			continue
		}
		cat.Add(name, data).Mask = mask
	}
	return cat, nil
}

func readColumnMaps(cl *commandLine) survey.ColumnMaps {
	f, err := os.Open(cl.mapFile)
	if err != nil {
		exit.Log(err)
	}
	defer f.Close()
	maps, err := survey.LoadColumnMaps(f)
	if err != nil {
		exit.Log(err)
	}
	return maps
}

func writeJSON(fn string, t *catalog.Catalog) {
	f, err := os.Create(fn)
	if err != nil {
		exit.Log(err)
	}
	if err = survey.WriteJSON(f, t); err != nil {
		f.Close()
		exit.Log(err)
	}
	if err = f.Close(); err != nil {
		exit.Log(err)
	}
}
