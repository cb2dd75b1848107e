// Package report formats sweep results: CSV tables of n, k and reflectance
// against wavelength, and plots of the index.
package report
