// Package store archives sweep runs in a SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/notargets/dielectric/sweep"
)

// ErrRunNotFound is returned by LoadRun for an unknown run id
var ErrRunNotFound = errors.New("store: run not found")

// Run describes one archived sweep
type Run struct {
	ID        string
	Material  string
	CreatedAt time.Time
	Config    sweep.Config
	Samples   int
}

// DB wraps a SQLite connection holding sweep runs
type DB struct {
	conn *sqlx.DB
}

type runRow struct {
	ID             string  `db:"id"`
	Material       string  `db:"material"`
	CreatedAt      int64   `db:"created_at"`
	WavelengthMin  float64 `db:"wavelength_min"`
	WavelengthMax  float64 `db:"wavelength_max"`
	WavelengthStep float64 `db:"wavelength_step"`
	SubstrateIndex float64 `db:"substrate_index"`
	Samples        int     `db:"samples"`
}

type sampleRow struct {
	Wavelength  float64 `db:"wavelength"`
	Frequency   float64 `db:"frequency"`
	N           float64 `db:"n"`
	K           float64 `db:"k"`
	Reflectance float64 `db:"reflectance"`
}

// Open opens or creates a database at the given path
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		material TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		wavelength_min REAL NOT NULL,
		wavelength_max REAL NOT NULL,
		wavelength_step REAL NOT NULL,
		substrate_index REAL NOT NULL,
		samples INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS samples (
		run_id TEXT NOT NULL REFERENCES runs(id),
		idx INTEGER NOT NULL,
		wavelength REAL NOT NULL,
		frequency REAL NOT NULL,
		n REAL NOT NULL,
		k REAL NOT NULL,
		reflectance REAL NOT NULL,
		PRIMARY KEY (run_id, idx)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_material ON runs(material);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun stores the samples of one sweep and returns the new run id
func (db *DB) SaveRun(material string, cfg sweep.Config, samples []sweep.Sample) (string, error) {
	id := uuid.NewString()

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.NamedExec(`INSERT INTO runs
		(id, material, created_at, wavelength_min, wavelength_max, wavelength_step, substrate_index, samples)
		VALUES (:id, :material, :created_at, :wavelength_min, :wavelength_max, :wavelength_step, :substrate_index, :samples)`,
		runRow{
			ID:             id,
			Material:       material,
			CreatedAt:      time.Now().UnixNano(),
			WavelengthMin:  cfg.WavelengthMin,
			WavelengthMax:  cfg.WavelengthMax,
			WavelengthStep: cfg.WavelengthStep,
			SubstrateIndex: cfg.SubstrateIndex,
			Samples:        len(samples),
		})
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO samples
		(run_id, idx, wavelength, frequency, n, k, reflectance)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i, s := range samples {
		if _, err := stmt.Exec(id, i, s.Wavelength, s.Frequency, s.N(), s.K(), s.Reflectance); err != nil {
			return "", fmt.Errorf("insert sample %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// LoadRun returns the samples of a run in wavelength order
func (db *DB) LoadRun(id string) ([]sweep.Sample, error) {
	var count int
	if err := db.conn.Get(&count, "SELECT samples FROM runs WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		return nil, err
	}

	var rows []sampleRow
	err := db.conn.Select(&rows,
		"SELECT wavelength, frequency, n, k, reflectance FROM samples WHERE run_id = ? ORDER BY idx",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", id, err)
	}
	if len(rows) != count {
		return nil, fmt.Errorf("load run %s: have %d samples, want %d", id, len(rows), count)
	}

	samples := make([]sweep.Sample, len(rows))
	for i, r := range rows {
		samples[i] = sweep.Sample{
			Wavelength:  r.Wavelength,
			Frequency:   r.Frequency,
			Index:       complex(r.N, r.K),
			Reflectance: r.Reflectance,
		}
	}
	return samples, nil
}

// Runs lists the archived runs, oldest first
func (db *DB) Runs() ([]Run, error) {
	var rows []runRow
	err := db.conn.Select(&rows, `SELECT id, material, created_at, wavelength_min, wavelength_max,
		wavelength_step, substrate_index, samples FROM runs ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}

	runs := make([]Run, len(rows))
	for i, r := range rows {
		runs[i] = Run{
			ID:        r.ID,
			Material:  r.Material,
			CreatedAt: time.Unix(0, r.CreatedAt),
			Config: sweep.Config{
				WavelengthMin:  r.WavelengthMin,
				WavelengthMax:  r.WavelengthMax,
				WavelengthStep: r.WavelengthStep,
				SubstrateIndex: r.SubstrateIndex,
			},
			Samples: r.Samples,
		}
	}
	return runs, nil
}
