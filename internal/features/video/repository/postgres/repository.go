package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jdifek/fitziz-adminka/internal/features/video/models"
	"github.com/jdifek/fitziz-adminka/internal/features/video/repository"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.VideoRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]*models.Video, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, url, description, duration, thumbnail_url FROM videos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer rows.Close()

	videos := []*models.Video{}
	for rows.Next() {
		var v models.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.URL, &v.Description, &v.Duration, &v.ThumbnailURL); err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, nil
}

func (r *postgresRepository) Create(ctx context.Context, video *models.Video) (*models.Video, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO videos (title, url, description, duration, thumbnail_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		video.Title, video.URL, video.Description, video.Duration, video.ThumbnailURL).
		Scan(&video.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	return video, nil
}

func (r *postgresRepository) Update(ctx context.Context, video *models.Video) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE videos
		SET title = $2, url = $3, description = $4, duration = $5, thumbnail_url = $6
		WHERE id = $1`,
		video.ID, video.Title, video.URL, video.Description, video.Duration, video.ThumbnailURL)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrVideoNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrVideoNotFound
	}
	return nil
}
