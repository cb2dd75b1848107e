package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/notargets/dielectric/material"
	"github.com/notargets/dielectric/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indiumScan(t *testing.T) []sweep.Sample {
	t.Helper()
	cfg := sweep.DefaultConfig()
	cfg.WavelengthMax = 2
	cfg.WavelengthStep = 0.1
	samples, err := sweep.Run(material.In4p2, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, samples)
	return samples
}

func TestWriteTable(t *testing.T) {
	samples := indiumScan(t)
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, samples))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(samples)+1)
	assert.Equal(t, "wavelength,n,k,reflectance", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0.5,"), lines[1])
}

func TestTableRoundTrip(t *testing.T) {
	samples := indiumScan(t)
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, samples))

	got, err := ReadTable(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(samples))
	for i := range samples {
		assert.Equal(t, samples[i].Wavelength, got[i].Wavelength)
		assert.Equal(t, samples[i].Index, got[i].Index)
		assert.Equal(t, samples[i].Reflectance, got[i].Reflectance)
		assert.InDelta(t, samples[i].Frequency, got[i].Frequency, 1e-15)
	}
}

func TestReadTableMissingColumn(t *testing.T) {
	_, err := ReadTable(strings.NewReader("wavelength,n,k\n1,2,3\n"))
	assert.Error(t, err)
}

func TestEmptyReports(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteTable(&buf, nil), ErrNoSamples)
	assert.ErrorIs(t, Plot(nil, "empty", filepath.Join(t.TempDir(), "x.png")), ErrNoSamples)
}

func TestPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Ref_In4p2.png")
	require.NoError(t, Plot(indiumScan(t), "In4p2", path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}
