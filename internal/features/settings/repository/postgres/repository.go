package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jdifek/fitziz-adminka/internal/features/settings/models"
	"github.com/jdifek/fitziz-adminka/internal/features/settings/repository"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.SettingsRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]*models.Setting, error) {
	rows, err := r.pool.Query(ctx, `SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	settings := []*models.Setting{}
	for rows.Next() {
		var s models.Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

func (r *postgresRepository) Get(ctx context.Context, key string) (*models.Setting, error) {
	var s models.Setting
	err := r.pool.QueryRow(ctx, `SELECT key, value FROM settings WHERE key = $1`, key).
		Scan(&s.Key, &s.Value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to get setting %q: %w", key, err)
	}
	return &s, nil
}

func (r *postgresRepository) Upsert(ctx context.Context, setting *models.Setting) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO settings (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		setting.Key, setting.Value)
	if err != nil {
		return fmt.Errorf("failed to upsert setting %q: %w", setting.Key, err)
	}
	return nil
}
