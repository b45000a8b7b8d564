package service

import (
	"context"

	"github.com/jdifek/fitziz-adminka/internal/features/user/models"
	"github.com/jdifek/fitziz-adminka/internal/features/user/repository"
)

var ErrUserNotFound = repository.ErrUserNotFound

type UserService interface {
	List(ctx context.Context, filter string) ([]*models.User, error)
	AssignMask(ctx context.Context, telegramID string, maskID *int) (*models.User, error)
	Delete(ctx context.Context, telegramID string) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context, filter string) ([]*models.User, error) {
	return s.repo.List(ctx, filter)
}

func (s *userService) AssignMask(ctx context.Context, telegramID string, maskID *int) (*models.User, error) {
	if err := s.repo.UpdateMask(ctx, telegramID, maskID); err != nil {
		return nil, err
	}
	return s.repo.GetByTelegramID(ctx, telegramID)
}

func (s *userService) Delete(ctx context.Context, telegramID string) error {
	return s.repo.Delete(ctx, telegramID)
}
