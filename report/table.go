package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/notargets/dielectric/sweep"
)

// Column names of a refractive index table
const (
	ColWavelength  = "wavelength"
	ColN           = "n"
	ColK           = "k"
	ColReflectance = "reflectance"
)

// ErrNoSamples is returned when there is nothing to report
var ErrNoSamples = errors.New("report: no samples")

// Frame arranges samples as a dataframe with one row per wavelength.
// Values are kept as shortest round-trip decimal strings.
func Frame(samples []sweep.Sample) dataframe.DataFrame {
	var (
		wl   = make([]string, len(samples))
		n    = make([]string, len(samples))
		k    = make([]string, len(samples))
		refl = make([]string, len(samples))
	)
	for i, s := range samples {
		wl[i] = formatFloat(s.Wavelength)
		n[i] = formatFloat(s.N())
		k[i] = formatFloat(s.K())
		refl[i] = formatFloat(s.Reflectance)
	}
	return dataframe.New(
		series.New(wl, series.String, ColWavelength),
		series.New(n, series.String, ColN),
		series.New(k, series.String, ColK),
		series.New(refl, series.String, ColReflectance),
	)
}

// WriteTable writes samples as CSV with a wavelength,n,k,reflectance header
func WriteTable(w io.Writer, samples []sweep.Sample) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}
	df := Frame(samples)
	if df.Err != nil {
		return fmt.Errorf("build table: %w", df.Err)
	}
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// ReadTable parses a table written by WriteTable. The frequency of each
// sample is recomputed as 1/wavelength.
func ReadTable(r io.Reader) ([]sweep.Sample, error) {
	df := dataframe.ReadCSV(r,
		dataframe.WithDelimiter(','),
		dataframe.HasHeader(true))
	if df.Err != nil {
		return nil, fmt.Errorf("read table: %w", df.Err)
	}

	cols := make(map[string][]float64, 4)
	for _, name := range []string{ColWavelength, ColN, ColK, ColReflectance} {
		col := df.Col(name)
		if col.Err != nil {
			return nil, fmt.Errorf("read table: %w", col.Err)
		}
		cols[name] = col.Float()
	}

	samples := make([]sweep.Sample, df.Nrow())
	for i := range samples {
		wl := cols[ColWavelength][i]
		samples[i] = sweep.Sample{
			Wavelength:  wl,
			Frequency:   1 / wl,
			Index:       complex(cols[ColN][i], cols[ColK][i]),
			Reflectance: cols[ColReflectance][i],
		}
	}
	return samples, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
