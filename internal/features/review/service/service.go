package service

import (
	"context"
	"errors"

	"github.com/jdifek/fitziz-adminka/internal/features/review/models"
	"github.com/jdifek/fitziz-adminka/internal/features/review/repository"
)

var (
	ErrReviewNotFound = repository.ErrReviewNotFound
	ErrUnknownMask    = repository.ErrUnknownMask

	// ErrInvalidRating: оценка обязательна и должна лежать в диапазоне 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

type ReviewService interface {
	List(ctx context.Context) ([]*models.Review, error)
	Create(ctx context.Context, payload *models.ReviewPayload) (*models.Review, error)
	Update(ctx context.Context, id int, payload *models.ReviewPayload) (*models.Review, error)
	Delete(ctx context.Context, id int) error
}

type reviewService struct {
	repo repository.ReviewRepository
}

func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) List(ctx context.Context) ([]*models.Review, error) {
	return s.repo.List(ctx)
}

func (s *reviewService) Create(ctx context.Context, payload *models.ReviewPayload) (*models.Review, error) {
	review, err := reviewFromPayload(payload)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, review)
}

func (s *reviewService) Update(ctx context.Context, id int, payload *models.ReviewPayload) (*models.Review, error) {
	review, err := reviewFromPayload(payload)
	if err != nil {
		return nil, err
	}
	review.ID = id
	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func reviewFromPayload(payload *models.ReviewPayload) (*models.Review, error) {
	if payload.Rating < 1 || payload.Rating > 5 {
		return nil, ErrInvalidRating
	}
	review := &models.Review{
		UserName: payload.UserName,
		Rating:   payload.Rating,
		MaskID:   payload.MaskID,
	}
	if payload.Comment != "" {
		comment := payload.Comment
		review.Comment = &comment
	}
	return review, nil
}
