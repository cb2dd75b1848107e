package dielectric

import (
	"fmt"
	"math"

	"github.com/notargets/dielectric/tensor"
)

// MaterialBuilder provides a fluent interface for defining a Material
//
//	m, err := NewMaterial("In4p2").
//		Epsilon(1.0).
//		Drude(1e-10, 0.0471, 6.8353*6.8353/1e-20).
//		ValidRange(0.1, 10).
//		Build()
type MaterialBuilder struct {
	Spec MaterialSpec
}

// MaterialSpec holds everything collected by a MaterialBuilder
type MaterialSpec struct {
	Name             string
	EpsilonDiag      tensor.Vector3
	EpsilonOffDiag   tensor.Vector3
	ConductivityDiag tensor.Vector3
	Terms            []Term
	Range            *FreqRange
}

// NewMaterial starts a material definition with vacuum background
// permittivity, no conductivity and no oscillators
func NewMaterial(name string) *MaterialBuilder {
	return &MaterialBuilder{
		Spec: MaterialSpec{
			Name:        name,
			EpsilonDiag: tensor.Isotropic(1),
		},
	}
}

// Epsilon sets an isotropic background permittivity
func (b *MaterialBuilder) Epsilon(eps float64) *MaterialBuilder {
	b.Spec.EpsilonDiag = tensor.Isotropic(eps)
	b.Spec.EpsilonOffDiag = tensor.Vector3{}
	return b
}

// EpsilonTensor sets an anisotropic background permittivity
func (b *MaterialBuilder) EpsilonTensor(diag, offdiag tensor.Vector3) *MaterialBuilder {
	b.Spec.EpsilonDiag = diag
	b.Spec.EpsilonOffDiag = offdiag
	return b
}

// Conductivity sets the diagonal conductivity. Off-diagonal conductivity
// is not modeled.
func (b *MaterialBuilder) Conductivity(diag tensor.Vector3) *MaterialBuilder {
	b.Spec.ConductivityDiag = diag
	return b
}

// Drude appends a Drude term with isotropic strength
func (b *MaterialBuilder) Drude(frequency, gamma, sigma float64) *MaterialBuilder {
	return b.Term(NewDrude(frequency, gamma, sigma))
}

// Lorentzian appends a Lorentzian term with isotropic strength
func (b *MaterialBuilder) Lorentzian(frequency, gamma, sigma float64) *MaterialBuilder {
	return b.Term(NewLorentzian(frequency, gamma, sigma))
}

// Term appends an arbitrary term
func (b *MaterialBuilder) Term(t Term) *MaterialBuilder {
	b.Spec.Terms = append(b.Spec.Terms, t)
	return b
}

// ValidRange records the advisory validity range [min, max]
func (b *MaterialBuilder) ValidRange(min, max float64) *MaterialBuilder {
	b.Spec.Range = &FreqRange{Min: min, Max: max}
	return b
}

// Validate checks that s describes a usable material
func (s *MaterialSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: material name cannot be empty", ErrInvalidMaterial)
	}
	for _, v := range [][3]float64{s.EpsilonDiag, s.EpsilonOffDiag, s.ConductivityDiag} {
		for _, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("%w: %s has a non-finite tensor component", ErrInvalidMaterial, s.Name)
			}
		}
	}
	for i, t := range s.Terms {
		if err := t.validate(); err != nil {
			return fmt.Errorf("%s term %d: %w", s.Name, i, err)
		}
	}
	if s.Range != nil {
		if !(s.Range.Min > 0 && s.Range.Max > s.Range.Min) || math.IsInf(s.Range.Max, 0) {
			return fmt.Errorf("%w: %s has invalid range [%g, %g]",
				ErrInvalidMaterial, s.Name, s.Range.Min, s.Range.Max)
		}
	}
	return nil
}

// Build validates the collected fields and returns the immutable Material
func (b *MaterialBuilder) Build() (Material, error) {
	if err := b.Spec.Validate(); err != nil {
		return Material{}, err
	}
	m := Material{
		name:             b.Spec.Name,
		epsilonDiag:      b.Spec.EpsilonDiag,
		epsilonOffDiag:   b.Spec.EpsilonOffDiag,
		conductivityDiag: b.Spec.ConductivityDiag,
		terms:            make([]Term, len(b.Spec.Terms)),
	}
	copy(m.terms, b.Spec.Terms)
	if b.Spec.Range != nil {
		r := *b.Spec.Range
		m.validRange = &r
	}
	return m, nil
}

// MustBuild is Build for literal definitions known to be valid; it panics
// on error
func (b *MaterialBuilder) MustBuild() Material {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}
