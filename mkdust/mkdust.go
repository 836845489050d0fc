// Public domain.

// Command mkdust regenerates the Galactic extinction curve table
// embedded by the nebular package.  The curve is the Cardelli, Clayton
// and Mathis 1989 parameterization, evaluated over 0.3 to 10 inverse
// microns and written as a wave/Al_AV text table, normalized attenuation
// against wavelength in Å.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/soniakeys/exit"
)

const versionString = "mkdust version 0.1 Go source."
const copyrightString = "Public domain."

func main() {
	defer exit.Handler()

	flag.Usage = func() {
		os.Stderr.WriteString(`Usage:
  mkdust [-o <file>] [-rv <ratio>]   Write extinction curve table.
  mkdust -v                          Display version and copyright.

Default:
  -o=MW_dust.dat -rv=3.1
`)
	}
	fn := flag.String("o", "MW_dust.dat", "output file")
	rv := flag.Float64("rv", 3.1, "total-to-selective extinction ratio")
	vers := flag.Bool("v", false, "display version and copyright")
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Create(*fn)
	if err != nil {
		exit.Log(err)
	}
	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "wave Al_AV")
	for x := .3; x <= 10.0001; x += .05 {
		fmt.Fprintf(w, "%10.3f %8.5f\n", 1e4/x, ccm89(x, *rv))
	}
	if err = w.Flush(); err != nil {
		exit.Log(err)
	}
	if err = f.Close(); err != nil {
		exit.Log(err)
	}
}

// ccm89 evaluates A_λ/A_V at x inverse microns, valid on [.3, 10).
func ccm89(x, rv float64) float64 {
	var a, b float64
	switch {
	case x < 1.1: // infrared
		t := math.Pow(x, 1.61)
		a = .574 * t
		b = -.527 * t
	case x < 3.3: // optical, NIR
		y := x - 1.82
		a = 1 + y*(.17699+y*(-.50447+y*(-.02427+y*(.72085+y*(.01979+y*(-.7753+y*.32999))))))
		b = y * (1.41338 + y*(2.28305+y*(1.07233+y*(-5.38434+y*(-.62251+y*(5.3026+y*-2.09002))))))
	case x < 8: // ultraviolet
		var fa, fb float64
		if x >= 5.9 {
			y := x - 5.9
			fa = y * y * (-.04473 + y*-.009779)
			fb = y * y * (.213 + y*.1207)
		}
		a = 1.752 - .316*x - .104/((x-4.67)*(x-4.67)+.341) + fa
		b = -3.09 + 1.825*x + 1.206/((x-4.62)*(x-4.62)+.263) + fb
	default: // far ultraviolet
		y := x - 8
		a = -1.073 + y*(-.628+y*(.137+y*-.07))
		b = 13.67 + y*(4.257+y*(-.42+y*.374))
	}
	return a + b/rv
}
