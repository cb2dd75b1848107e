// Package dielectric evaluates the frequency dependent permittivity of a
// material described by an oscillator model, and derives its refractive
// index.
//
// Frequencies are in normalized units, the inverse of a reference length
// (1/µm in the material library), so f = 1/λ.
//
// A Material combines a background permittivity tensor, a diagonal
// conductivity and any number of Drude or Lorentzian susceptibility terms.
// All evaluations are pure functions of their inputs and are safe to run
// concurrently.
package dielectric
