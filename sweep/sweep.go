// Package sweep evaluates materials over wavelength grids, concurrently
// across contiguous partitions of the grid.
package sweep

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/notargets/dielectric/dielectric"
	"github.com/notargets/dielectric/tensor"
	"gonum.org/v1/gonum/floats"
)

// Sample is the evaluated response of a material at one wavelength
type Sample struct {
	Wavelength  float64
	Frequency   float64
	Index       complex128
	Reflectance float64
}

// N is the real part of the refractive index
func (s Sample) N() float64 { return real(s.Index) }

// K is the extinction coefficient, the imaginary part of the index
func (s Sample) K() float64 { return imag(s.Index) }

// Wavelengths returns the half-open grid min, min+step, ... < max
func Wavelengths(cfg Config) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := int(cfg.span())
	if n < 1 {
		n = 1
	}
	wl := make([]float64, n)
	if n == 1 {
		wl[0] = cfg.WavelengthMin
		return wl, nil
	}
	floats.Span(wl, cfg.WavelengthMin, cfg.WavelengthMin+float64(n-1)*cfg.WavelengthStep)
	return wl, nil
}

// Run evaluates m on the wavelength grid of cfg. Partitions of the grid
// are evaluated concurrently; the samples come back in wavelength order.
// On failure the error of the shortest failing wavelength is returned.
func Run(m dielectric.Material, cfg Config) ([]Sample, error) {
	wls, err := Wavelengths(cfg)
	if err != nil {
		return nil, err
	}
	n0 := complex(cfg.SubstrateIndex, 0)
	samples := make([]Sample, len(wls))
	err = parallel(len(wls), cfg.workers(), func(i int) error {
		wl := wls[i]
		f := 1 / wl
		n, err := m.RefractiveIndex(f)
		if err != nil {
			return fmt.Errorf("wavelength %g: %w", wl, err)
		}
		samples[i] = Sample{
			Wavelength:  wl,
			Frequency:   f,
			Index:       n,
			Reflectance: dielectric.Reflectance(n, n0),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return samples, nil
}

// Permittivities evaluates the permittivity tensor of m at every frequency,
// for media that have no scalar index
func Permittivities(m dielectric.Material, freqs []float64) ([]tensor.Tensor3, error) {
	out := make([]tensor.Tensor3, len(freqs))
	err := parallel(len(freqs), 0, func(i int) error {
		eps, err := m.Permittivity(freqs[i])
		if err != nil {
			return err
		}
		out[i] = eps
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// parallel calls fn for every index in [0, n), one goroutine per
// partition, and returns the error with the lowest index
func parallel(n, workers int, fn func(i int) error) error {
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	errs := make([]error, n)
	var wg sync.WaitGroup
	for _, p := range PartitionSamples(n, workers) {
		wg.Add(1)
		go func(p Partition) {
			defer wg.Done()
			for i := p.Start; i < p.End(); i++ {
				errs[i] = fn(i)
			}
		}(p)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Extrema returns the samples with the lowest and highest reflectance
func Extrema(samples []Sample) (lo, hi Sample) {
	if len(samples) == 0 {
		return
	}
	lo, hi = samples[0], samples[0]
	for _, s := range samples[1:] {
		if s.Reflectance < lo.Reflectance {
			lo = s
		}
		if s.Reflectance > hi.Reflectance {
			hi = s
		}
	}
	return
}
