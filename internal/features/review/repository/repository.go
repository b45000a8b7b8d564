package repository

import (
	"context"
	"errors"

	"github.com/jdifek/fitziz-adminka/internal/features/review/models"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrUnknownMask    = errors.New("referenced mask does not exist")
)

type ReviewRepository interface {
	List(ctx context.Context) ([]*models.Review, error)
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id int) error
}
