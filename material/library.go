// Package material is a library of fitted oscillator models for named
// materials, plus YAML definitions for user supplied ones.
package material

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/notargets/dielectric/dielectric"
)

// ErrLossFactorRange is returned by LossyPd for a scale factor outside [0,1]
var ErrLossFactorRange = errors.New("material: loss factor must be in [0,1]")

// Library entries, built once at package initialization and never
// modified afterwards
var (
	// In295 is indium at 295 K
	In295 = freeElectron("In295", In295Epsilon, In295PlasmaFrequency, In295Gamma,
		IndiumMinFrequency, IndiumMaxFrequency)

	// In4p2 is indium at 4.2 K
	In4p2 = freeElectron("In4p2", In4p2Epsilon, In4p2PlasmaFrequency, In4p2Gamma,
		IndiumMinFrequency, IndiumMaxFrequency)

	// Pd is the five oscillator palladium reference fit
	Pd = palladium("Pd", pdFit[:], PdMinFrequency, PdMaxFrequency)

	// PdDrude keeps only the free carrier term of the palladium fit and
	// shares the 0.1 µm to 10 µm range of the indium fits
	PdDrude = palladium("PdDrude", pdFit[:1], IndiumMinFrequency, IndiumMaxFrequency)
)

var library = map[string]dielectric.Material{
	In295.Name():   In295,
	In4p2.Name():   In4p2,
	Pd.Name():      Pd,
	PdDrude.Name(): PdDrude,
}

// DrudeStrength converts a plasma frequency into the strength of a Drude
// term with pole frequency f0, σ = fp²/f0²
func DrudeStrength(plasmaFrequency, f0 float64) float64 {
	return plasmaFrequency * plasmaFrequency / (f0 * f0)
}

// OscillatorStrength is the strength of a weighted oscillator,
// σ = weight·fp²/f0²
func OscillatorStrength(weight, plasmaFrequency, f0 float64) float64 {
	return weight * DrudeStrength(plasmaFrequency, f0)
}

func freeElectron(name string, eps, plasma, gamma, fmin, fmax float64) dielectric.Material {
	return dielectric.NewMaterial(name).
		Epsilon(eps).
		Drude(DCFrequency, gamma, DrudeStrength(plasma, DCFrequency)).
		ValidRange(fmin, fmax).
		MustBuild()
}

func palladium(name string, fit []pdOscillator, fmin, fmax float64) dielectric.Material {
	plasma := PdPlasmaEnergyEV * EVUmScale
	b := dielectric.NewMaterial(name).
		Epsilon(PdEpsilon).
		ValidRange(fmin, fmax)
	for _, osc := range fit {
		gamma := osc.dampingEV * EVUmScale
		if osc.resonanceEV == 0 {
			b.Drude(DCFrequency, gamma, OscillatorStrength(osc.strength, plasma, DCFrequency))
			continue
		}
		f0 := osc.resonanceEV * EVUmScale
		b.Lorentzian(f0, gamma, OscillatorStrength(osc.strength, plasma, f0))
	}
	return b.MustBuild()
}

// LossyPd returns the palladium fit with every oscillator strength scaled
// by r. r = 1 is Pd itself, r = 0 leaves only the vacuum background.
func LossyPd(r float64) (dielectric.Material, error) {
	if math.IsNaN(r) || r < 0 || r > 1 {
		return dielectric.Material{}, fmt.Errorf("%w: got %g", ErrLossFactorRange, r)
	}
	return Pd.Scaled(r).WithName(fmt.Sprintf("Pd(r=%g)", r)), nil
}

// Lookup returns the library material with the given name
func Lookup(name string) (dielectric.Material, bool) {
	m, ok := library[name]
	return m, ok
}

// Names returns the library material names in sorted order
func Names() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Library returns a copy of the name to material mapping
func Library() map[string]dielectric.Material {
	lib := make(map[string]dielectric.Material, len(library))
	for name, m := range library {
		lib[name] = m
	}
	return lib
}
