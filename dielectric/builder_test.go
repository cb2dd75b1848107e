package dielectric

import (
	"errors"
	"math"
	"testing"

	"github.com/notargets/dielectric/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderDefaults(t *testing.T) {
	m, err := NewMaterial("vacuum").Build()
	require.NoError(t, err)
	assert.Equal(t, "vacuum", m.Name())
	assert.Equal(t, tensor.Identity(), m.Background())
	assert.Equal(t, tensor.Vector3{}, m.ConductivityDiag())
	assert.Empty(t, m.Susceptibilities())
	_, ok := m.ValidRange()
	assert.False(t, ok)
}

func TestBuilderCollectsEverything(t *testing.T) {
	m, err := NewMaterial("In4p2").
		Epsilon(1.0).
		Conductivity(tensor.Vector3{0.1, 0.2, 0.3}).
		Drude(1e-10, 0.0471, 6.8353*6.8353/1e-20).
		Lorentzian(1.2, 0.3, 0.9).
		ValidRange(0.1, 10).
		Build()
	require.NoError(t, err)

	terms := m.Susceptibilities()
	require.Len(t, terms, 2)
	assert.Equal(t, Drude, terms[0].Kind)
	assert.Equal(t, Lorentzian, terms[1].Kind)
	assert.Equal(t, tensor.Vector3{0.1, 0.2, 0.3}, m.ConductivityDiag())

	r, ok := m.ValidRange()
	require.True(t, ok)
	assert.Equal(t, FreqRange{Min: 0.1, Max: 10}, r)
	assert.True(t, r.Contains(1))
	assert.False(t, r.Contains(20))

	// Mutating the returned slice cannot reach the material
	terms[0].Gamma = 99
	assert.Equal(t, 0.0471, m.Susceptibilities()[0].Gamma)
}

func TestBuilderIsolation(t *testing.T) {
	b := NewMaterial("growing").Lorentzian(1, 0.1, 1)
	first := b.MustBuild()
	b.Lorentzian(2, 0.1, 1)
	second := b.MustBuild()
	assert.Len(t, first.Susceptibilities(), 1)
	assert.Len(t, second.Susceptibilities(), 2)
}

func TestBuilderValidation(t *testing.T) {
	cases := map[string]*MaterialBuilder{
		"empty name":     NewMaterial(""),
		"nan epsilon":    NewMaterial("x").Epsilon(math.NaN()),
		"inf sigma":      NewMaterial("x").Conductivity(tensor.Vector3{0, math.Inf(1), 0}),
		"nan gamma":      NewMaterial("x").Drude(1e-10, math.NaN(), 1),
		"inverted range": NewMaterial("x").ValidRange(10, 0.1),
		"zero range min": NewMaterial("x").ValidRange(0, 1),
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := b.Build()
			assert.True(t, errors.Is(err, ErrInvalidMaterial), "got %v", err)
		})
	}

	_, err := NewMaterial("x").Term(Term{Kind: KindUnknown, Frequency: 1}).Build()
	assert.True(t, errors.Is(err, ErrUnrecognizedSusceptibility))

	assert.Panics(t, func() { NewMaterial("").MustBuild() })
}

func TestMaterialScaled(t *testing.T) {
	m := NewMaterial("metal").
		Epsilon(2).
		Conductivity(tensor.Isotropic(0.5)).
		Drude(1e-10, 0.05, 40/1e-20).
		Lorentzian(1, 0.2, 3).
		MustBuild()

	zero := m.Scaled(0)
	for _, f := range []float64{0.1, 1, 5} {
		got, err := zero.Permittivity(f)
		require.NoError(t, err)
		bare, err := NewMaterial("bare").Epsilon(2).Conductivity(tensor.Isotropic(0.5)).MustBuild().Permittivity(f)
		require.NoError(t, err)
		assert.Equal(t, bare, got)
	}

	half := m.Scaled(0.5)
	for i, term := range half.Susceptibilities() {
		assert.Equal(t, m.Susceptibilities()[i].SigmaDiag.Scale(0.5), term.SigmaDiag)
	}
	assert.Equal(t, m.Background(), half.Background())
	assert.Equal(t, "metal", half.Name())
	assert.Equal(t, "renamed", half.WithName("renamed").Name())
	assert.Equal(t, "metal", half.Name())
}
