package tensor

import "gonum.org/v1/gonum/mat"

// IsotropyTolerance is the absolute and relative tolerance applied per
// element, to the real and imaginary parts separately, when deciding
// whether a tensor is a scalar multiple of the identity. Legitimate
// near-isotropic tensors whose diagonal spread exceeds this are rejected.
const IsotropyTolerance = 1e-8

// ApproxEqual compares a and b elementwise. Real and imaginary parts must
// each agree within tol, absolutely or relatively.
func ApproxEqual(a, b Tensor3, tol float64) bool {
	return mat.EqualApprox(a.Real(), b.Real(), tol) &&
		mat.EqualApprox(a.Imag(), b.Imag(), tol)
}

// Reduce collapses t to the mean of its diagonal when t is numerically a
// uniform multiple of the identity. The second return is false when the
// tensor is anisotropic or carries off-diagonal terms; no averaging is
// done in that case.
func Reduce(t Tensor3) (complex128, bool) {
	a := t.Trace() / 3
	if !ApproxEqual(t, Scalar(a), IsotropyTolerance) {
		return 0, false
	}
	return a, true
}
