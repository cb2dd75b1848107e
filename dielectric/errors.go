package dielectric

import (
	"errors"
	"fmt"
)

// Every sentinel is prefixed with "dielectric:" and is matched with
// errors.Is. None of them is transient: the same inputs always fail the
// same way.
var (
	// ErrInvalidFrequency is returned when a frequency is NaN, infinite,
	// negative, zero where its reciprocal is taken (conductivity, Drude), or
	// sits on an undamped pole.
	ErrInvalidFrequency = errors.New("dielectric: invalid frequency")

	// ErrUnrecognizedSusceptibility is returned for a susceptibility term
	// whose kind is neither Drude nor Lorentzian.
	ErrUnrecognizedSusceptibility = errors.New("dielectric: unrecognized susceptibility kind")

	// ErrNonIsotropicMedium is returned when a scalar refractive index is
	// requested for a permittivity tensor that is not a multiple of the
	// identity.
	ErrNonIsotropicMedium = errors.New("dielectric: non-isotropic medium")

	// ErrInvalidMaterial is returned by MaterialBuilder.Build for
	// non-finite parameters or an inconsistent validity range.
	ErrInvalidMaterial = errors.New("dielectric: invalid material")
)

// EvaluationError attaches the material and frequency to a failed
// evaluation
type EvaluationError struct {
	Material  string
	Frequency float64
	Err       error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("%s at frequency %g: %v", e.Material, e.Frequency, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
