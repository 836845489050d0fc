// Public domain.

// Package linelist supplies vacuum rest wavelengths of common galaxy
// emission lines.
package linelist

// List maps emission-line names to vacuum rest wavelengths in Å.
type List map[string]float64

// Galaxy returns the nebular lines used in host-galaxy analysis.
func Galaxy() List {
	return List{
		"Halpha":      6564.613,
		"Hbeta":       4862.683,
		"Hgamma":      4341.684,
		"[OII] 3726":  3727.092,
		"[OII] 3729":  3729.875,
		"[OIII] 4959": 4960.295,
		"[OIII] 5007": 5008.240,
		"[NII] 6548":  6549.860,
		"[NII] 6584":  6585.270,
		"[SII] 6716":  6718.294,
		"[SII] 6731":  6732.674,
	}
}

// RestWave looks up a line, satisfying the nebular.LineList collaborator
// interface.
func (l List) RestWave(line string) (float64, bool) {
	w, ok := l[line]
	return w, ok
}
