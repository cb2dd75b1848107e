package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/notargets/dielectric/material"
	"github.com/notargets/dielectric/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func scan(t *testing.T, r float64) (sweep.Config, []sweep.Sample, string) {
	t.Helper()
	m, err := material.LossyPd(r)
	require.NoError(t, err)
	cfg := sweep.DefaultConfig()
	cfg.WavelengthMax = 3
	cfg.WavelengthStep = 0.05
	samples, err := sweep.Run(m, cfg)
	require.NoError(t, err)
	return cfg, samples, m.Name()
}

func TestSaveAndLoadRun(t *testing.T) {
	db := openTemp(t)
	cfg, samples, name := scan(t, 0.5)

	id, err := db.SaveRun(name, cfg, samples)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	got, err := db.LoadRun(id)
	require.NoError(t, err)
	assert.Equal(t, samples, got)
}

func TestRuns(t *testing.T) {
	db := openTemp(t)
	runs, err := db.Runs()
	require.NoError(t, err)
	assert.Empty(t, runs)

	ids := make(map[string]string)
	for _, r := range []float64{0, 1} {
		cfg, samples, name := scan(t, r)
		id, err := db.SaveRun(name, cfg, samples)
		require.NoError(t, err)
		ids[id] = name
	}

	runs, err = db.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	for _, run := range runs {
		assert.Equal(t, ids[run.ID], run.Material)
		assert.Equal(t, 50, run.Samples)
		assert.Equal(t, 3.0, run.Config.WavelengthMax)
		assert.Equal(t, 3.8, run.Config.SubstrateIndex)
		assert.False(t, run.CreatedAt.IsZero())
	}
}

func TestLoadUnknownRun(t *testing.T) {
	db := openTemp(t)
	_, err := db.LoadRun(uuid.NewString())
	assert.True(t, errors.Is(err, ErrRunNotFound))
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	db, err := Open(path)
	require.NoError(t, err)
	cfg, samples, name := scan(t, 1)
	id, err := db.SaveRun(name, cfg, samples)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()
	got, err := db.LoadRun(id)
	require.NoError(t, err)
	assert.Len(t, got, len(samples))
}
