package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jdifek/fitziz-adminka/internal/features/feature/models"
	"github.com/jdifek/fitziz-adminka/internal/features/feature/repository"
)

// SQLSTATE нарушения внешнего ключа.
const foreignKeyViolation = "23503"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.FeatureRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]*models.Feature, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, mask_id FROM features ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list features: %w", err)
	}
	defer rows.Close()

	features := []*models.Feature{}
	for rows.Next() {
		var f models.Feature
		if err := rows.Scan(&f.ID, &f.Name, &f.MaskID); err != nil {
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		features = append(features, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list features: %w", err)
	}
	return features, nil
}

func (r *postgresRepository) Create(ctx context.Context, feature *models.Feature) (*models.Feature, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO features (name, mask_id) VALUES ($1, $2) RETURNING id`,
		feature.Name, feature.MaskID).
		Scan(&feature.ID)
	if err != nil {
		if isUnknownMask(err) {
			return nil, repository.ErrUnknownMask
		}
		return nil, fmt.Errorf("failed to create feature: %w", err)
	}
	return feature, nil
}

func (r *postgresRepository) Update(ctx context.Context, feature *models.Feature) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE features SET name = $2, mask_id = $3 WHERE id = $1`,
		feature.ID, feature.Name, feature.MaskID)
	if err != nil {
		if isUnknownMask(err) {
			return repository.ErrUnknownMask
		}
		return fmt.Errorf("failed to update feature: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrFeatureNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM features WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete feature: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrFeatureNotFound
	}
	return nil
}

func isUnknownMask(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
