package repository

import (
	"context"
	"errors"

	"github.com/jdifek/fitziz-adminka/internal/features/feature/models"
)

var (
	ErrFeatureNotFound = errors.New("feature not found")
	ErrUnknownMask     = errors.New("referenced mask does not exist")
)

type FeatureRepository interface {
	List(ctx context.Context) ([]*models.Feature, error)
	Create(ctx context.Context, feature *models.Feature) (*models.Feature, error)
	Update(ctx context.Context, feature *models.Feature) error
	Delete(ctx context.Context, id int) error
}
