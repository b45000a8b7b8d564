package service

import (
	"context"

	"github.com/jdifek/fitziz-adminka/internal/features/feature/models"
	"github.com/jdifek/fitziz-adminka/internal/features/feature/repository"
)

var (
	ErrFeatureNotFound = repository.ErrFeatureNotFound
	ErrUnknownMask     = repository.ErrUnknownMask
)

type FeatureService interface {
	List(ctx context.Context) ([]*models.Feature, error)
	Create(ctx context.Context, payload *models.FeaturePayload) (*models.Feature, error)
	Update(ctx context.Context, id int, payload *models.FeaturePayload) (*models.Feature, error)
	Delete(ctx context.Context, id int) error
}

type featureService struct {
	repo repository.FeatureRepository
}

func NewFeatureService(repo repository.FeatureRepository) FeatureService {
	return &featureService{repo: repo}
}

func (s *featureService) List(ctx context.Context) ([]*models.Feature, error) {
	return s.repo.List(ctx)
}

func (s *featureService) Create(ctx context.Context, payload *models.FeaturePayload) (*models.Feature, error) {
	return s.repo.Create(ctx, &models.Feature{Name: payload.Name, MaskID: payload.MaskID})
}

func (s *featureService) Update(ctx context.Context, id int, payload *models.FeaturePayload) (*models.Feature, error) {
	feature := &models.Feature{ID: id, Name: payload.Name, MaskID: payload.MaskID}
	if err := s.repo.Update(ctx, feature); err != nil {
		return nil, err
	}
	return feature, nil
}

func (s *featureService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
