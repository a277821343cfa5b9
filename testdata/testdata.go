// Package testdata embeds sample METAR and TAF reports, one per line,
// for corpus tests.
package testdata

import (
	"bufio"
	"compress/gzip"
	"embed"
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed *.gz
var data embed.FS

func lines(t *testing.T, path string) iter.Seq[string] {
	f, err := data.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, f.Close())
	})

	r, err := gzip.NewReader(f)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, r.Close())
	})

	scanner := bufio.NewScanner(r)
	return func(yield func(string) bool) {
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if !yield(line) {
				return
			}
		}
		require.NoError(t, scanner.Err())
	}
}

// METAR returns the sample METAR reports
func METAR(t *testing.T) iter.Seq[string] {
	return lines(t, "metar.txt.gz")
}

// TAF returns the sample TAF reports
func TAF(t *testing.T) iter.Seq[string] {
	return lines(t, "taf.txt.gz")
}
