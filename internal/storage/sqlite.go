package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/rcweston90/Weight2Plate/internal/models"
)

// SQLiteStore is the default file-backed preset store. The schema is
// created on open.
type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check: SQLiteStore satisfies Store.
var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (or creates) the preset database at the given path,
// creating parent directories as needed.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening preset db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS presets (
		id                TEXT NOT NULL,
		name              TEXT PRIMARY KEY,
		unit              TEXT NOT NULL,
		barbell_id        TEXT NOT NULL,
		final_side_weight REAL NOT NULL,
		drop_percent      REAL NOT NULL,
		created_at        TIMESTAMP NOT NULL,
		updated_at        TIMESTAMP NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating presets table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get retrieves a preset by name.
func (s *SQLiteStore) Get(ctx context.Context, name string) (models.Preset, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, unit, barbell_id, final_side_weight, drop_percent, created_at, updated_at
		 FROM presets WHERE name = ?`, name)

	p, err := scanPreset(row)
	if err == sql.ErrNoRows {
		return models.Preset{}, ErrNotFound
	}
	if err != nil {
		return models.Preset{}, fmt.Errorf("querying preset: %w", err)
	}
	return p, nil
}

// Put upserts a preset by name. A new name gets a fresh ID and creation
// time; an existing one keeps both and bumps updated_at.
func (s *SQLiteStore) Put(ctx context.Context, preset models.Preset) (models.Preset, error) {
	now := time.Now().UTC()
	preset.ID = uuid.New()
	preset.CreatedAt = now
	preset.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO presets (id, name, unit, barbell_id, final_side_weight, drop_percent, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			unit = excluded.unit,
			barbell_id = excluded.barbell_id,
			final_side_weight = excluded.final_side_weight,
			drop_percent = excluded.drop_percent,
			updated_at = excluded.updated_at`,
		preset.ID.String(), preset.Name, preset.Unit, preset.BarbellID,
		preset.FinalSideWeight, preset.DropPercent, preset.CreatedAt, preset.UpdatedAt)
	if err != nil {
		return models.Preset{}, fmt.Errorf("upserting preset: %w", err)
	}

	return s.Get(ctx, preset.Name)
}

// List returns all presets ordered by name.
func (s *SQLiteStore) List(ctx context.Context) ([]models.Preset, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, unit, barbell_id, final_side_weight, drop_percent, created_at, updated_at
		 FROM presets ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}
	defer rows.Close()

	var out []models.Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning preset: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes a preset by name.
func (s *SQLiteStore) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM presets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting preset: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner) (models.Preset, error) {
	var p models.Preset
	var id string
	err := row.Scan(&id, &p.Name, &p.Unit, &p.BarbellID,
		&p.FinalSideWeight, &p.DropPercent, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Preset{}, err
	}
	p.ID, err = uuid.Parse(id)
	if err != nil {
		return models.Preset{}, fmt.Errorf("parsing preset id: %w", err)
	}
	return p, nil
}
