package dielectric

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/dielectric/tensor"
)

// Kind selects the pole form of a susceptibility term. The zero value is
// not a valid kind.
type Kind uint8

const (
	KindUnknown Kind = iota // zero value, rejected everywhere
	Drude                   // free carriers, pole at zero frequency
	Lorentzian              // bound charge, resonance at Frequency
)

func (k Kind) String() string {
	switch k {
	case Drude:
		return "drude"
	case Lorentzian:
		return "lorentzian"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// ParseKind maps "drude" or "lorentzian" (any case) to a Kind
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "drude":
		return Drude, nil
	case "lorentzian", "lorentz":
		return Lorentzian, nil
	default:
		return KindUnknown, fmt.Errorf("%w: %q", ErrUnrecognizedSusceptibility, s)
	}
}

// Term is one additive oscillator contribution to the permittivity
type Term struct {
	Kind         Kind
	Frequency    float64        // pole or resonance frequency f0
	Gamma        float64        // damping rate
	SigmaDiag    tensor.Vector3 // oscillator strength, diagonal
	SigmaOffDiag tensor.Vector3 // oscillator strength, off-diagonal
}

// NewDrude returns a Drude term with isotropic strength sigma
func NewDrude(frequency, gamma, sigma float64) Term {
	return Term{
		Kind:      Drude,
		Frequency: frequency,
		Gamma:     gamma,
		SigmaDiag: tensor.Isotropic(sigma),
	}
}

// NewLorentzian returns a Lorentzian term with isotropic strength sigma
func NewLorentzian(frequency, gamma, sigma float64) Term {
	return Term{
		Kind:      Lorentzian,
		Frequency: frequency,
		Gamma:     gamma,
		SigmaDiag: tensor.Isotropic(sigma),
	}
}

// Sigma returns the oscillator strength tensor
func (t Term) Sigma() tensor.Tensor3 {
	return tensor.Build(t.SigmaDiag, t.SigmaOffDiag)
}

// Scaled returns a copy with the oscillator strength multiplied by r
func (t Term) Scaled(r float64) Term {
	t.SigmaDiag = t.SigmaDiag.Scale(r)
	t.SigmaOffDiag = t.SigmaOffDiag.Scale(r)
	return t
}

func (t Term) validate() error {
	if t.Kind != Drude && t.Kind != Lorentzian {
		return fmt.Errorf("%w: %v", ErrUnrecognizedSusceptibility, t.Kind)
	}
	vals := []float64{t.Frequency, t.Gamma}
	vals = append(vals, t.SigmaDiag[:]...)
	vals = append(vals, t.SigmaOffDiag[:]...)
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v term has non-finite parameter", ErrInvalidMaterial, t.Kind)
		}
	}
	return nil
}

// Evaluate returns the contribution of one term at frequency f:
//
//	Drude:      σ·f0² / (−f² − i·f·γ)
//	Lorentzian: σ·f0² / (f0² − f² − i·f·γ)
//
// The sign of the damping term makes Im(ε) ≥ 0 for γ ≥ 0 and σ ≥ 0.
// A result that overflows, as at f = f0 with γ = 0, fails with
// ErrInvalidFrequency.
func Evaluate(term Term, f float64) (tensor.Tensor3, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return tensor.Tensor3{}, fmt.Errorf("%w: %g", ErrInvalidFrequency, f)
	}
	var (
		f0     = term.Frequency
		gamma  = term.Gamma
		sigma  = term.Sigma()
		damped = complex(-f*f, -f*gamma)
		denom  complex128
	)
	switch term.Kind {
	case Drude:
		if f == 0 {
			return tensor.Tensor3{}, fmt.Errorf("%w: drude term at zero frequency", ErrInvalidFrequency)
		}
		denom = damped
	case Lorentzian:
		denom = complex(f0*f0, 0) + damped
	default:
		return tensor.Tensor3{}, fmt.Errorf("%w: %v", ErrUnrecognizedSusceptibility, term.Kind)
	}
	// σ·f0·f0 before the division, so a DC placeholder f0 with a huge σ
	// stays in range
	chi := sigma.Scale(complex(f0, 0)).Scale(complex(f0, 0)).Scale(1 / denom)
	if !chi.IsFinite() {
		return tensor.Tensor3{}, fmt.Errorf("%w: %g is on the undamped pole of a %v term (f0=%g, gamma=%g)",
			ErrInvalidFrequency, f, term.Kind, f0, gamma)
	}
	return chi, nil
}
