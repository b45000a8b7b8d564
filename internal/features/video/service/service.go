package service

import (
	"context"

	"github.com/jdifek/fitziz-adminka/internal/features/video/models"
	"github.com/jdifek/fitziz-adminka/internal/features/video/repository"
)

var ErrVideoNotFound = repository.ErrVideoNotFound

type VideoService interface {
	List(ctx context.Context) ([]*models.Video, error)
	Create(ctx context.Context, payload *models.VideoPayload) (*models.Video, error)
	Update(ctx context.Context, id int, payload *models.VideoPayload) (*models.Video, error)
	Delete(ctx context.Context, id int) error
}

type videoService struct {
	repo repository.VideoRepository
}

func NewVideoService(repo repository.VideoRepository) VideoService {
	return &videoService{repo: repo}
}

func (s *videoService) List(ctx context.Context) ([]*models.Video, error) {
	return s.repo.List(ctx)
}

func (s *videoService) Create(ctx context.Context, payload *models.VideoPayload) (*models.Video, error) {
	return s.repo.Create(ctx, videoFromPayload(0, payload))
}

func (s *videoService) Update(ctx context.Context, id int, payload *models.VideoPayload) (*models.Video, error) {
	video := videoFromPayload(id, payload)
	if err := s.repo.Update(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *videoService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func videoFromPayload(id int, p *models.VideoPayload) *models.Video {
	return &models.Video{
		ID:           id,
		Title:        p.Title,
		URL:          optional(p.URL),
		Description:  optional(p.Description),
		Duration:     optional(p.Duration),
		ThumbnailURL: optional(p.ThumbnailURL),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
