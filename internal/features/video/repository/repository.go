package repository

import (
	"context"
	"errors"

	"github.com/jdifek/fitziz-adminka/internal/features/video/models"
)

var ErrVideoNotFound = errors.New("video not found")

type VideoRepository interface {
	List(ctx context.Context) ([]*models.Video, error)
	Create(ctx context.Context, video *models.Video) (*models.Video, error)
	Update(ctx context.Context, video *models.Video) error
	Delete(ctx context.Context, id int) error
}
