package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jdifek/fitziz-adminka/internal/features/review/models"
	"github.com/jdifek/fitziz-adminka/internal/features/review/repository"
)

const foreignKeyViolation = "23503"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.ReviewRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]*models.Review, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_name, rating, comment, mask_id FROM reviews ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*models.Review{}
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.UserName, &rv.Rating, &rv.Comment, &rv.MaskID); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, &rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (r *postgresRepository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO reviews (user_name, rating, comment, mask_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		review.UserName, review.Rating, review.Comment, review.MaskID).
		Scan(&review.ID)
	if err != nil {
		if isUnknownMask(err) {
			return nil, repository.ErrUnknownMask
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

func (r *postgresRepository) Update(ctx context.Context, review *models.Review) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE reviews SET user_name = $2, rating = $3, comment = $4, mask_id = $5 WHERE id = $1`,
		review.ID, review.UserName, review.Rating, review.Comment, review.MaskID)
	if err != nil {
		if isUnknownMask(err) {
			return repository.ErrUnknownMask
		}
		return fmt.Errorf("failed to update review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrReviewNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrReviewNotFound
	}
	return nil
}

func isUnknownMask(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
