package dielectric

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/notargets/dielectric/tensor"
)

// Permittivity returns the permittivity tensor of m at frequency f > 0:
//
//	ε(f) = (I + i·σc/(2π·f)) · (ε∞ + Σ χ_k(f))
//
// where σc is the diagonal conductivity, ε∞ the background tensor and χ_k
// the susceptibility terms. The conduction factor multiplies the full
// tensor as a matrix product.
func Permittivity(m Material, f float64) (tensor.Tensor3, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return tensor.Tensor3{}, &EvaluationError{
			Material:  m.name,
			Frequency: f,
			Err:       fmt.Errorf("%w: must be finite and > 0", ErrInvalidFrequency),
		}
	}

	sigma := tensor.BuildDiagonal(m.conductivityDiag)
	conduction := tensor.Identity().Add(sigma.Scale(complex(0, 1/(2*math.Pi*f))))

	eps := m.Background()
	for _, term := range m.terms {
		chi, err := Evaluate(term, f)
		if err != nil {
			return tensor.Tensor3{}, &EvaluationError{Material: m.name, Frequency: f, Err: err}
		}
		eps = eps.Add(chi)
	}

	return conduction.Mul(eps), nil
}

// RefractiveIndex returns n = sqrt(ε) for an isotropic permittivity, using
// the principal square root (Re(n) ≥ 0). A tensor that does not reduce to
// a scalar yields ErrNonIsotropicMedium.
func RefractiveIndex(m Material, f float64) (complex128, error) {
	eps, err := Permittivity(m, f)
	if err != nil {
		return 0, err
	}
	scalar, ok := tensor.Reduce(eps)
	if !ok {
		return 0, &EvaluationError{Material: m.name, Frequency: f, Err: ErrNonIsotropicMedium}
	}
	return cmplx.Sqrt(scalar), nil
}

// Reflectance is the normal incidence power reflectance |(n−n0)/(n+n0)|²
// of an interface between media of index n0 and n
func Reflectance(n, n0 complex128) float64 {
	r := cmplx.Abs((n - n0) / (n + n0))
	return r * r
}
