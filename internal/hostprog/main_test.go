// Public domain.

package hostprog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frbhosts/hostgal/internal/hostprog"
)

func TestReadCSV(t *testing.T) {
	cat, err := hostprog.ReadCSV(strings.NewReader(
		"id,ra,dec,W1\n" +
			"J214425-405400,180.01,0.01,15.5\n" +
			"J214426-405401,180.02,,16.1\n"))
	require.NoError(t, err)

	// non-numeric id column is dropped
	require.Equal(t, []string{"ra", "dec", "W1"}, cat.Names())
	require.Equal(t, 2, cat.Len())
	require.Equal(t, []float64{180.01, 180.02}, cat.Col("ra").Data)

	// empty cell is masked
	dec := cat.Col("dec")
	require.NotNil(t, dec.Mask)
	require.False(t, dec.Mask[0])
	require.True(t, dec.Mask[1])

	// fully numeric column has no mask
	require.Nil(t, cat.Col("W1").Mask)
}

func TestReadCSVEmpty(t *testing.T) {
	cat, err := hostprog.ReadCSV(strings.NewReader("ra,dec\n"))
	require.NoError(t, err)
	require.Equal(t, 0, cat.Len())
}
