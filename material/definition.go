package material

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/notargets/dielectric/dielectric"
	"github.com/notargets/dielectric/tensor"
	"gopkg.in/yaml.v3"
)

// Definition describes a material in a YAML document, for example
//
//	# materials.yaml
//	- name: Ag
//	  units: eV
//	  epsilon: 1.0
//	  plasma_frequency: 9.01
//	  valid_range: {min: 0.0806, max: 5.0}
//	  susceptibilities:
//	    - {kind: drude, strength: 0.845, gamma: 0.048}
//	    - {kind: lorentzian, strength: 0.065, frequency: 0.816, gamma: 3.886}
//
// Frequencies, dampings and the plasma frequency are in 1/µm unless units
// is "eV". The valid range is always in 1/µm.
type Definition struct {
	Name             string                `yaml:"name"`
	Units            string                `yaml:"units,omitempty"`
	Epsilon          *float64              `yaml:"epsilon,omitempty"`
	EpsilonDiag      *tensor.Vector3       `yaml:"epsilon_diag,omitempty"`
	EpsilonOffDiag   tensor.Vector3        `yaml:"epsilon_offdiag,omitempty"`
	ConductivityDiag tensor.Vector3        `yaml:"conductivity_diag,omitempty"`
	PlasmaFrequency  float64               `yaml:"plasma_frequency,omitempty"`
	ValidRange       *dielectric.FreqRange `yaml:"valid_range,omitempty"`
	Susceptibilities []TermDefinition      `yaml:"susceptibilities"`
}

// TermDefinition is one oscillator of a Definition. The strength tensor is
// taken from sigma / sigma_diag when given, otherwise it is computed from
// the weight "strength" and the material's plasma frequency.
type TermDefinition struct {
	Kind         string          `yaml:"kind"`
	Frequency    float64         `yaml:"frequency,omitempty"`
	Gamma        float64         `yaml:"gamma"`
	Sigma        *float64        `yaml:"sigma,omitempty"`
	SigmaDiag    *tensor.Vector3 `yaml:"sigma_diag,omitempty"`
	SigmaOffDiag tensor.Vector3  `yaml:"sigma_offdiag,omitempty"`
	Strength     *float64        `yaml:"strength,omitempty"`
}

// ErrDefinition is returned for a Definition that cannot describe a material
var ErrDefinition = errors.New("material: invalid definition")

func (d Definition) unitScale() (float64, error) {
	switch strings.ToLower(d.Units) {
	case "", "um", "µm", "1/um":
		return UmScale, nil
	case "ev":
		return EVUmScale, nil
	default:
		return 0, fmt.Errorf("%w: %s: unknown units %q", ErrDefinition, d.Name, d.Units)
	}
}

// Build converts the definition into a Material. Kind tags are parsed
// here, an unrecognized tag fails the whole definition.
func (d Definition) Build() (dielectric.Material, error) {
	scale, err := d.unitScale()
	if err != nil {
		return dielectric.Material{}, err
	}
	if d.Epsilon != nil && d.EpsilonDiag != nil {
		return dielectric.Material{}, fmt.Errorf("%w: %s: epsilon and epsilon_diag are exclusive", ErrDefinition, d.Name)
	}

	b := dielectric.NewMaterial(d.Name).Conductivity(d.ConductivityDiag)
	switch {
	case d.Epsilon != nil:
		b.EpsilonTensor(tensor.Isotropic(*d.Epsilon), d.EpsilonOffDiag)
	case d.EpsilonDiag != nil:
		b.EpsilonTensor(*d.EpsilonDiag, d.EpsilonOffDiag)
	default:
		b.EpsilonTensor(tensor.Isotropic(1), d.EpsilonOffDiag)
	}
	if d.ValidRange != nil {
		b.ValidRange(d.ValidRange.Min, d.ValidRange.Max)
	}

	plasma := d.PlasmaFrequency * scale
	for i, td := range d.Susceptibilities {
		term, err := td.term(scale, plasma)
		if err != nil {
			return dielectric.Material{}, fmt.Errorf("%s term %d: %w", d.Name, i, err)
		}
		b.Term(term)
	}
	return b.Build()
}

func (td TermDefinition) term(scale, plasma float64) (dielectric.Term, error) {
	kind, err := dielectric.ParseKind(td.Kind)
	if err != nil {
		return dielectric.Term{}, err
	}
	t := dielectric.Term{
		Kind:         kind,
		Frequency:    td.Frequency * scale,
		Gamma:        td.Gamma * scale,
		SigmaOffDiag: td.SigmaOffDiag,
	}
	if kind == dielectric.Drude && t.Frequency == 0 {
		t.Frequency = DCFrequency
	}
	if t.Frequency <= 0 {
		return dielectric.Term{}, fmt.Errorf("%w: %v term needs a positive frequency", ErrDefinition, kind)
	}

	set := 0
	if td.Sigma != nil {
		t.SigmaDiag = tensor.Isotropic(*td.Sigma)
		set++
	}
	if td.SigmaDiag != nil {
		t.SigmaDiag = *td.SigmaDiag
		set++
	}
	if td.Strength != nil {
		if plasma == 0 {
			return dielectric.Term{}, fmt.Errorf("%w: strength needs plasma_frequency", ErrDefinition)
		}
		t.SigmaDiag = tensor.Isotropic(OscillatorStrength(*td.Strength, plasma, t.Frequency))
		set++
	}
	if set != 1 {
		return dielectric.Term{}, fmt.Errorf("%w: exactly one of sigma, sigma_diag, strength is required", ErrDefinition)
	}
	return t, nil
}

// LoadDefinitions decodes a YAML list of material definitions
func LoadDefinitions(r io.Reader) ([]Definition, error) {
	var defs []Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&defs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode material definitions: %w", err)
	}
	return defs, nil
}

// BuildAll converts definitions into materials, rejecting duplicate names
// and names that shadow the library
func BuildAll(defs []Definition) (map[string]dielectric.Material, error) {
	out := make(map[string]dielectric.Material, len(defs))
	for _, d := range defs {
		if _, ok := library[d.Name]; ok {
			return nil, fmt.Errorf("%w: %s shadows a library material", ErrDefinition, d.Name)
		}
		if _, ok := out[d.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate material %s", ErrDefinition, d.Name)
		}
		m, err := d.Build()
		if err != nil {
			return nil, err
		}
		out[d.Name] = m
	}
	return out, nil
}
