package repository

import (
	"context"
	"errors"

	"github.com/jdifek/fitziz-adminka/internal/features/mask/models"
)

var ErrMaskNotFound = errors.New("mask not found")

type MaskRepository interface {
	List(ctx context.Context) ([]*models.Mask, error)
	GetByID(ctx context.Context, id int) (*models.Mask, error)
	// Create сохраняет маску и ее доп. характеристики, возвращает id.
	Create(ctx context.Context, mask *models.Mask, extras []models.KeyValue) (int, error)
	// Update перезаписывает поля маски и заменяет доп. характеристики целиком.
	Update(ctx context.Context, id int, mask *models.Mask, extras []models.KeyValue) error
	Delete(ctx context.Context, id int) error
}
