package tensor

import (
	"fmt"
	"math/cmplx"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Vector3 is a real triple, used for the diagonal (a,b,c) or the
// off-diagonal (u,v,w) components of a symmetric tensor
type Vector3 [3]float64

// Isotropic returns the triple (x,x,x)
func Isotropic(x float64) Vector3 {
	return Vector3{x, x, x}
}

// Scale returns r times the triple
func (v Vector3) Scale(r float64) Vector3 {
	return Vector3{r * v[0], r * v[1], r * v[2]}
}

// Tensor3 is a 3×3 complex tensor stored row major. It is a value type,
// every operation returns a new tensor and never modifies its operands.
type Tensor3 [3][3]complex128

// Build assembles the symmetric tensor
//
//	[[a,u,v],
//	 [u,b,w],
//	 [v,w,c]]
//
// from diag = (a,b,c) and offdiag = (u,v,w)
func Build(diag, offdiag Vector3) Tensor3 {
	var (
		a, b, c = complex(diag[0], 0), complex(diag[1], 0), complex(diag[2], 0)
		u, v, w = complex(offdiag[0], 0), complex(offdiag[1], 0), complex(offdiag[2], 0)
	)
	return Tensor3{
		{a, u, v},
		{u, b, w},
		{v, w, c},
	}
}

// BuildDiagonal is Build with a zero off-diagonal triple
func BuildDiagonal(diag Vector3) Tensor3 {
	return Build(diag, Vector3{})
}

// Identity returns the 3×3 identity
func Identity() Tensor3 {
	return BuildDiagonal(Isotropic(1))
}

// Scalar returns a·I
func Scalar(a complex128) Tensor3 {
	return Tensor3{
		{a, 0, 0},
		{0, a, 0},
		{0, 0, a},
	}
}

// At returns element (i,j)
func (t Tensor3) At(i, j int) complex128 {
	return t[i][j]
}

// Diagonal returns (T00, T11, T22)
func (t Tensor3) Diagonal() [3]complex128 {
	return [3]complex128{t[0][0], t[1][1], t[2][2]}
}

func (t Tensor3) Trace() complex128 {
	return t[0][0] + t[1][1] + t[2][2]
}

func (t Tensor3) Transpose() (tt Tensor3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			tt[j][i] = t[i][j]
		}
	}
	return
}

// Add returns the elementwise sum t + o
func (t Tensor3) Add(o Tensor3) (r Tensor3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = t[i][j] + o[i][j]
		}
	}
	return
}

// Sub returns the elementwise difference t - o
func (t Tensor3) Sub(o Tensor3) (r Tensor3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = t[i][j] - o[i][j]
		}
	}
	return
}

// Scale returns s·t
func (t Tensor3) Scale(s complex128) (r Tensor3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = s * t[i][j]
		}
	}
	return
}

// Mul returns the matrix product t·o (not the elementwise product)
func (t Tensor3) Mul(o Tensor3) (r Tensor3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum complex128
			for k := 0; k < 3; k++ {
				sum += t[i][k] * o[k][j]
			}
			r[i][j] = sum
		}
	}
	return
}

// IsSymmetric reports whether t equals its transpose exactly
func (t Tensor3) IsSymmetric() bool {
	return t == t.Transpose()
}

// IsFinite reports whether no element is NaN or infinite
func (t Tensor3) IsFinite() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if cmplx.IsNaN(t[i][j]) || cmplx.IsInf(t[i][j]) {
				return false
			}
		}
	}
	return true
}

// CDense copies the tensor into a gonum complex matrix
func (t Tensor3) CDense() *mat.CDense {
	data := make([]complex128, 0, 9)
	for i := 0; i < 3; i++ {
		data = append(data, t[i][:]...)
	}
	return mat.NewCDense(3, 3, data)
}

// Real returns the real part of the tensor as a gonum matrix
func (t Tensor3) Real() *mat.Dense {
	return t.part(func(c complex128) float64 { return real(c) })
}

// Imag returns the imaginary part of the tensor as a gonum matrix
func (t Tensor3) Imag() *mat.Dense {
	return t.part(func(c complex128) float64 { return imag(c) })
}

func (t Tensor3) part(f func(complex128) float64) *mat.Dense {
	data := make([]float64, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			data[3*i+j] = f(t[i][j])
		}
	}
	return mat.NewDense(3, 3, data)
}

func (t Tensor3) String() string {
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		sb.WriteString("[")
		for j := 0; j < 3; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("%.6g", t[i][j]))
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
