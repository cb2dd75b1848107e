package sweep

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/notargets/dielectric/dielectric"
	"github.com/notargets/dielectric/material"
	"github.com/notargets/dielectric/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWavelengthsDefaultGrid(t *testing.T) {
	wl, err := Wavelengths(DefaultConfig())
	require.NoError(t, err)
	require.Len(t, wl, 475)
	assert.Equal(t, 0.5, wl[0])
	assert.InDelta(t, 9.98, wl[len(wl)-1], 1e-12)
	for i := 1; i < len(wl); i++ {
		assert.InDelta(t, 0.02, wl[i]-wl[i-1], 1e-12)
	}
}

func TestWavelengthsHalfOpen(t *testing.T) {
	cfg := Config{WavelengthMin: 1, WavelengthMax: 2, WavelengthStep: 0.25, SubstrateIndex: 1}
	wl, err := Wavelengths(cfg)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1.25, 1.5, 1.75}, wl)

	cfg.WavelengthStep = 5
	wl, err = Wavelengths(cfg)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, wl)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	mutate := map[string]func(*Config){
		"zero min":      func(c *Config) { c.WavelengthMin = 0 },
		"inverted":      func(c *Config) { c.WavelengthMax = 0.1 },
		"nan step":      func(c *Config) { c.WavelengthStep = math.NaN() },
		"inf max":       func(c *Config) { c.WavelengthMax = math.Inf(1) },
		"no substrate":  func(c *Config) { c.SubstrateIndex = 0 },
		"neg workers":   func(c *Config) { c.Workers = -1 },
		"negative step": func(c *Config) { c.WavelengthStep = -0.1 },
		"tiny step":     func(c *Config) { c.WavelengthStep = 1e-300 },
		"subnormal":     func(c *Config) { c.WavelengthStep = math.SmallestNonzeroFloat64 },
		"too many":      func(c *Config) { c.WavelengthStep = 1e-10 },
	}
	for name, fn := range mutate {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			fn(&cfg)
			assert.True(t, errors.Is(cfg.Validate(), ErrInvalidConfig))
			_, err := Run(material.In4p2, cfg)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestWavelengthsSampleCap(t *testing.T) {
	cfg := Config{WavelengthMin: 1, WavelengthMax: 1 + MaxSamples, WavelengthStep: 1, SubstrateIndex: 1}
	wl, err := Wavelengths(cfg)
	require.NoError(t, err)
	assert.Len(t, wl, MaxSamples)

	cfg.WavelengthMax++
	wl, err = Wavelengths(cfg)
	assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
	assert.Nil(t, wl)

	cfg.WavelengthStep = 1e-300
	_, err = Wavelengths(cfg)
	assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
}

func TestPartitionSamples(t *testing.T) {
	parts := PartitionSamples(10, 3)
	require.Len(t, parts, 3)
	assert.Equal(t, Partition{ID: 0, Start: 0, Count: 4}, parts[0])
	assert.Equal(t, Partition{ID: 1, Start: 4, Count: 3}, parts[1])
	assert.Equal(t, Partition{ID: 2, Start: 7, Count: 3}, parts[2])
	assert.Equal(t, 10, parts[2].End())

	assert.Len(t, PartitionSamples(3, 8), 3)
	assert.Len(t, PartitionSamples(5, 0), 1)
	assert.Nil(t, PartitionSamples(0, 4))

	for _, n := range []int{1, 7, 100, 475} {
		for _, w := range []int{1, 2, 3, 16} {
			parts := PartitionSamples(n, w)
			next := 0
			for _, p := range parts {
				assert.Equal(t, next, p.Start)
				next = p.End()
			}
			assert.Equal(t, n, next)
			stats := Statistics(parts)
			assert.LessOrEqual(t, stats.MaxSamples-stats.MinSamples, 1)
		}
	}

	stats := Statistics(parts)
	assert.Equal(t, 3, stats.NumPartitions)
	assert.Equal(t, 3, stats.MinSamples)
	assert.Equal(t, 4, stats.MaxSamples)
	assert.InDelta(t, 4/(10.0/3), stats.Imbalance, 1e-12)
	assert.Equal(t, PartitionStats{}, Statistics(nil))
}

func TestRunMatchesSerialEvaluation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 7
	samples, err := Run(material.In4p2, cfg)
	require.NoError(t, err)

	wl, err := Wavelengths(cfg)
	require.NoError(t, err)
	require.Len(t, samples, len(wl))
	for i, s := range samples {
		assert.Equal(t, wl[i], s.Wavelength)
		assert.Equal(t, 1/wl[i], s.Frequency)
		n, err := material.In4p2.RefractiveIndex(1 / wl[i])
		require.NoError(t, err)
		assert.Equal(t, n, s.Index)
		assert.Equal(t, dielectric.Reflectance(n, 3.8), s.Reflectance)
		assert.GreaterOrEqual(t, s.Reflectance, 0.0)
		assert.LessOrEqual(t, s.Reflectance, 1.0)
	}

	cfg.Workers = 1
	serial, err := Run(material.In4p2, cfg)
	require.NoError(t, err)
	assert.Equal(t, serial, samples)
}

func TestRunReportsFirstFailingWavelength(t *testing.T) {
	m := dielectric.NewMaterial("birefringent").
		EpsilonTensor(tensor.Vector3{2, 2.5, 2}, tensor.Vector3{}).
		MustBuild()
	cfg := DefaultConfig()
	cfg.Workers = 4
	_, err := Run(m, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dielectric.ErrNonIsotropicMedium))
	assert.True(t, strings.HasPrefix(err.Error(), "wavelength 0.5:"), err.Error())

	var evalErr *dielectric.EvaluationError
	require.True(t, errors.As(err, &evalErr))
	assert.Equal(t, 2.0, evalErr.Frequency)
}

func TestPermittivities(t *testing.T) {
	m := dielectric.NewMaterial("birefringent").
		EpsilonTensor(tensor.Vector3{2, 2.5, 2}, tensor.Vector3{0.1, 0, 0}).
		Lorentzian(1, 0.1, 0.5).
		MustBuild()
	freqs := []float64{0.2, 0.9, 1, 1.1, 3}
	eps, err := Permittivities(m, freqs)
	require.NoError(t, err)
	require.Len(t, eps, len(freqs))
	for i, f := range freqs {
		want, err := m.Permittivity(f)
		require.NoError(t, err)
		assert.Equal(t, want, eps[i])
	}

	_, err = Permittivities(m, []float64{1, 0, -1})
	var evalErr *dielectric.EvaluationError
	require.True(t, errors.As(err, &evalErr))
	assert.Equal(t, 0.0, evalErr.Frequency)
	assert.True(t, errors.Is(err, dielectric.ErrInvalidFrequency))

	empty, err := Permittivities(m, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSampleAccessorsAndExtrema(t *testing.T) {
	s := Sample{Index: complex(0.2, 6.7)}
	assert.Equal(t, 0.2, s.N())
	assert.Equal(t, 6.7, s.K())

	samples := []Sample{{Wavelength: 1, Reflectance: 0.5}, {Wavelength: 2, Reflectance: 0.9}, {Wavelength: 3, Reflectance: 0.1}}
	lo, hi := Extrema(samples)
	assert.Equal(t, 3.0, lo.Wavelength)
	assert.Equal(t, 2.0, hi.Wavelength)
}
