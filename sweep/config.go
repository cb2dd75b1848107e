package sweep

import (
	"errors"
	"fmt"
	"math"
	"runtime"
)

// ErrInvalidConfig is returned by Config.Validate
var ErrInvalidConfig = errors.New("sweep: invalid config")

// MaxSamples caps the number of wavelengths in one grid
const MaxSamples = 1 << 20

// spanTolerance keeps roundoff in (max-min)/step from adding a point
const spanTolerance = 1e-9

// Config describes a wavelength scan. Wavelengths are in units of the
// reference length (µm), the sample frequency is 1/wavelength.
type Config struct {
	WavelengthMin  float64 `yaml:"wavelength_min"`
	WavelengthMax  float64 `yaml:"wavelength_max"`
	WavelengthStep float64 `yaml:"wavelength_step"`
	SubstrateIndex float64 `yaml:"substrate_index"` // n0 of the reflectance interface
	Workers        int     `yaml:"workers"`         // 0 means one per CPU
}

// DefaultConfig scans 0.5 µm to 10 µm in 0.02 µm steps against a
// substrate of index 3.8
func DefaultConfig() Config {
	return Config{
		WavelengthMin:  0.5,
		WavelengthMax:  10,
		WavelengthStep: 0.02,
		SubstrateIndex: 3.8,
		Workers:        runtime.NumCPU(),
	}
}

// Validate checks the configuration for errors
func (c Config) Validate() error {
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"wavelength_min", c.WavelengthMin},
		{"wavelength_max", c.WavelengthMax},
		{"wavelength_step", c.WavelengthStep},
		{"substrate_index", c.SubstrateIndex},
	} {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) || p.v <= 0 {
			return fmt.Errorf("%w: %s must be finite and > 0, got %g", ErrInvalidConfig, p.name, p.v)
		}
	}
	if c.WavelengthMax <= c.WavelengthMin {
		return fmt.Errorf("%w: wavelength_max %g must exceed wavelength_min %g",
			ErrInvalidConfig, c.WavelengthMax, c.WavelengthMin)
	}
	if n := c.span(); n > MaxSamples {
		return fmt.Errorf("%w: grid of %.4g samples exceeds %d, increase wavelength_step",
			ErrInvalidConfig, n, MaxSamples)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// span is the unrounded sample count of the grid, +Inf when the step is
// too small to represent it
func (c Config) span() float64 {
	return math.Ceil((c.WavelengthMax-c.WavelengthMin)/c.WavelengthStep - spanTolerance)
}

func (c Config) workers() int {
	if c.Workers == 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}
