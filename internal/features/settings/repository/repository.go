package repository

import (
	"context"
	"errors"

	"github.com/jdifek/fitziz-adminka/internal/features/settings/models"
)

var ErrSettingNotFound = errors.New("setting not found")

type SettingsRepository interface {
	List(ctx context.Context) ([]*models.Setting, error)
	Get(ctx context.Context, key string) (*models.Setting, error)
	// Upsert создает настройку или заменяет значение существующей.
	Upsert(ctx context.Context, setting *models.Setting) error
}
