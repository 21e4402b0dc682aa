package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rcweston90/Weight2Plate/internal/models"
)

// PostgresStore persists presets in PostgreSQL for shared deployments.
type PostgresStore struct {
	Pool *pgxpool.Pool
}

// Compile-time check: PostgresStore satisfies Store.
var _ Store = (*PostgresStore)(nil)

// OpenPostgres creates a PostgresStore with a connection pool.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &PostgresStore{Pool: pool}, nil
}

// RunMigrations applies all pending migrations from the given directory.
func RunMigrations(dsn, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// Get retrieves a preset by name.
func (s *PostgresStore) Get(ctx context.Context, name string) (models.Preset, error) {
	row := s.Pool.QueryRow(ctx,
		`SELECT id, name, unit, barbell_id, final_side_weight, drop_percent, created_at, updated_at
		 FROM presets WHERE name = $1`, name)

	var p models.Preset
	err := row.Scan(&p.ID, &p.Name, &p.Unit, &p.BarbellID,
		&p.FinalSideWeight, &p.DropPercent, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Preset{}, ErrNotFound
	}
	if err != nil {
		return models.Preset{}, fmt.Errorf("querying preset: %w", err)
	}
	return p, nil
}

// Put upserts a preset by name. Concurrent writers resolve last-write-wins.
func (s *PostgresStore) Put(ctx context.Context, preset models.Preset) (models.Preset, error) {
	now := time.Now().UTC()
	preset.ID = uuid.New()
	preset.CreatedAt = now
	preset.UpdatedAt = now

	_, err := s.Pool.Exec(ctx,
		`INSERT INTO presets (id, name, unit, barbell_id, final_side_weight, drop_percent, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (name) DO UPDATE SET
			unit = EXCLUDED.unit,
			barbell_id = EXCLUDED.barbell_id,
			final_side_weight = EXCLUDED.final_side_weight,
			drop_percent = EXCLUDED.drop_percent,
			updated_at = EXCLUDED.updated_at`,
		preset.ID, preset.Name, preset.Unit, preset.BarbellID,
		preset.FinalSideWeight, preset.DropPercent, preset.CreatedAt, preset.UpdatedAt)
	if err != nil {
		return models.Preset{}, fmt.Errorf("upserting preset: %w", err)
	}

	return s.Get(ctx, preset.Name)
}

// List returns all presets ordered by name.
func (s *PostgresStore) List(ctx context.Context) ([]models.Preset, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT id, name, unit, barbell_id, final_side_weight, drop_percent, created_at, updated_at
		 FROM presets ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}
	defer rows.Close()

	var out []models.Preset
	for rows.Next() {
		var p models.Preset
		if err := rows.Scan(&p.ID, &p.Name, &p.Unit, &p.BarbellID,
			&p.FinalSideWeight, &p.DropPercent, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning preset: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes a preset by name.
func (s *PostgresStore) Delete(ctx context.Context, name string) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM presets WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("deleting preset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	s.Pool.Close()
	return nil
}
