package dielectric

import (
	"github.com/notargets/dielectric/tensor"
)

// FreqRange is the frequency interval over which a material fit is
// trusted. It is advisory and never enforced by the evaluation.
type FreqRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Contains reports whether Min <= f <= Max
func (r FreqRange) Contains(f float64) bool {
	return f >= r.Min && f <= r.Max
}

// Material holds the oscillator model of a medium. It is built once with a
// MaterialBuilder and never changes afterwards, so values can be shared
// freely between goroutines.
type Material struct {
	name             string
	epsilonDiag      tensor.Vector3
	epsilonOffDiag   tensor.Vector3
	conductivityDiag tensor.Vector3
	terms            []Term
	validRange       *FreqRange
}

func (m Material) Name() string { return m.name }

func (m Material) EpsilonDiag() tensor.Vector3 { return m.epsilonDiag }

func (m Material) EpsilonOffDiag() tensor.Vector3 { return m.epsilonOffDiag }

func (m Material) ConductivityDiag() tensor.Vector3 { return m.conductivityDiag }

// Background returns the frequency independent permittivity tensor
func (m Material) Background() tensor.Tensor3 {
	return tensor.Build(m.epsilonDiag, m.epsilonOffDiag)
}

// Susceptibilities returns a copy of the oscillator terms
func (m Material) Susceptibilities() []Term {
	terms := make([]Term, len(m.terms))
	copy(terms, m.terms)
	return terms
}

// ValidRange returns the advisory validity range, if one was given
func (m Material) ValidRange() (FreqRange, bool) {
	if m.validRange == nil {
		return FreqRange{}, false
	}
	return *m.validRange, true
}

// Scaled returns a new material whose oscillator strength tensors are all
// multiplied by r. The background permittivity and conductivity are kept.
func (m Material) Scaled(r float64) Material {
	scaled := m
	scaled.terms = make([]Term, len(m.terms))
	for i, t := range m.terms {
		scaled.terms[i] = t.Scaled(r)
	}
	return scaled
}

// WithName returns a copy of m carrying a different name
func (m Material) WithName(name string) Material {
	m.name = name
	return m
}

// Permittivity evaluates the permittivity tensor of m at frequency f
func (m Material) Permittivity(f float64) (tensor.Tensor3, error) {
	return Permittivity(m, f)
}

// RefractiveIndex evaluates the scalar refractive index of m at frequency f
func (m Material) RefractiveIndex(f float64) (complex128, error) {
	return RefractiveIndex(m, f)
}
