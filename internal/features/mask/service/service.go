package service

import (
	"context"
	"strings"

	"github.com/jdifek/fitziz-adminka/internal/features/mask/models"
	"github.com/jdifek/fitziz-adminka/internal/features/mask/repository"
)

var ErrMaskNotFound = repository.ErrMaskNotFound

// Notifier уведомляет пользователей о появлении новой маски.
// Конкретная реализация сама решает, как и когда отправлять.
type Notifier interface {
	MaskAdded(maskName string)
}

type MaskService interface {
	List(ctx context.Context) ([]*models.Mask, error)
	Create(ctx context.Context, payload *models.MaskPayload) (*models.Mask, error)
	Update(ctx context.Context, id int, payload *models.MaskPayload) (*models.Mask, error)
	Delete(ctx context.Context, id int) error
}

type maskService struct {
	repo     repository.MaskRepository
	notifier Notifier
}

func NewMaskService(repo repository.MaskRepository, notifier Notifier) MaskService {
	return &maskService{repo: repo, notifier: notifier}
}

func (s *maskService) List(ctx context.Context) ([]*models.Mask, error) {
	return s.repo.List(ctx)
}

func (s *maskService) Create(ctx context.Context, payload *models.MaskPayload) (*models.Mask, error) {
	id, err := s.repo.Create(ctx, maskFromPayload(payload), extrasFromPayload(payload))
	if err != nil {
		return nil, err
	}

	mask, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.MaskAdded(mask.Name)
	}
	return mask, nil
}

func (s *maskService) Update(ctx context.Context, id int, payload *models.MaskPayload) (*models.Mask, error) {
	if err := s.repo.Update(ctx, id, maskFromPayload(payload), extrasFromPayload(payload)); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *maskService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// maskFromPayload переводит плоские поля формы в сущность каталога.
// Соответствие полей унаследовано от исторической админки:
// model→name, fullName→instructions, article→description,
// visibleArea→viewArea, shadeLevel→shadeRange, lightState→power,
// body→material, retailPrice→price.
func maskFromPayload(p *models.MaskPayload) *models.Mask {
	return &models.Mask{
		Name:            strings.TrimSpace(p.Model),
		Instructions:    optional(p.FullName),
		Description:     optional(p.Article),
		ImageURL:        optional(p.ImageURL),
		ViewArea:        optional(p.VisibleArea),
		Sensors:         p.SensorsCount,
		ShadeRange:      optional(p.ShadeLevel),
		Power:           optional(p.LightState),
		Material:        optional(p.Body),
		Price:           optional(p.RetailPrice),
		Weight:          optional(p.Weight),
		OperatingTemp:   optional(p.OperatingTemp),
		WeldingTypes:    optional(p.WeldingTypes),
		SFireProtection: optional(p.SFireProtection),
		PackageHeight:   optional(p.PackageHeight),
		PackageWidth:    optional(p.PackageWidth),
		PackageLength:   optional(p.PackageLength),
	}
}

// extrasFromPayload собирает строки extra_fields: сначала известные
// ключи с непустыми значениями, затем свободные пары из формы.
func extrasFromPayload(p *models.MaskPayload) []models.KeyValue {
	extras := make([]models.KeyValue, 0, len(models.KnownExtraKeys)+len(p.ExtraFields))
	for _, kv := range p.KnownExtraValues() {
		if kv.Value != "" {
			extras = append(extras, kv)
		}
	}
	for _, kv := range p.ExtraFields {
		if kv.Key != "" {
			extras = append(extras, kv)
		}
	}
	return extras
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
