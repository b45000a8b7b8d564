package repository

import (
	"context"
	"errors"

	"github.com/jdifek/fitziz-adminka/internal/features/user/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	// List возвращает пользователей; непустой filter сужает выборку
	// до telegramId, содержащих подстроку.
	List(ctx context.Context, filter string) ([]*models.User, error)
	GetByTelegramID(ctx context.Context, telegramID string) (*models.User, error)
	UpdateMask(ctx context.Context, telegramID string, maskID *int) error
	Delete(ctx context.Context, telegramID string) error
	// ListTelegramIDs отдает идентификаторы всех чатов для рассылки.
	ListTelegramIDs(ctx context.Context) ([]string, error)
}
