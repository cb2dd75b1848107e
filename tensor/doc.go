// Package tensor implements the 3×3 complex symmetric tensors used to
// represent permittivity, conductivity and oscillator strength.
//
// Tensors are assembled from a diagonal triple (a,b,c) and an off-diagonal
// triple (u,v,w):
//
//	[[a,u,v],
//	 [u,b,w],
//	 [v,w,c]]
//
// Reduce collapses an isotropic tensor to its scalar value. Tensors can be
// exported to gonum matrices with CDense, Real and Imag.
package tensor
