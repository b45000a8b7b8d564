package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jdifek/fitziz-adminka/internal/features/mask/models"
	"github.com/jdifek/fitziz-adminka/internal/features/mask/repository"
)

type fakeMaskRepo struct {
	nextID int
	masks  map[int]*models.Mask
	extras map[int][]models.KeyValue
}

func newFakeMaskRepo() *fakeMaskRepo {
	return &fakeMaskRepo{nextID: 1, masks: map[int]*models.Mask{}, extras: map[int][]models.KeyValue{}}
}

func (r *fakeMaskRepo) List(ctx context.Context) ([]*models.Mask, error) {
	out := []*models.Mask{}
	for _, m := range r.masks {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMaskRepo) GetByID(ctx context.Context, id int) (*models.Mask, error) {
	m, ok := r.masks[id]
	if !ok {
		return nil, repository.ErrMaskNotFound
	}
	fields := make([]models.ExtraField, 0, len(r.extras[id]))
	for i, kv := range r.extras[id] {
		fields = append(fields, models.ExtraField{ID: i + 1, Key: kv.Key, Value: kv.Value, MaskID: id})
	}
	copied := *m
	copied.ExtraFields = fields
	return &copied, nil
}

func (r *fakeMaskRepo) Create(ctx context.Context, mask *models.Mask, extras []models.KeyValue) (int, error) {
	id := r.nextID
	r.nextID++
	mask.ID = id
	r.masks[id] = mask
	r.extras[id] = extras
	return id, nil
}

func (r *fakeMaskRepo) Update(ctx context.Context, id int, mask *models.Mask, extras []models.KeyValue) error {
	if _, ok := r.masks[id]; !ok {
		return repository.ErrMaskNotFound
	}
	mask.ID = id
	r.masks[id] = mask
	r.extras[id] = extras
	return nil
}

func (r *fakeMaskRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.masks[id]; !ok {
		return repository.ErrMaskNotFound
	}
	delete(r.masks, id)
	delete(r.extras, id)
	return nil
}

type fakeNotifier struct {
	added []string
}

func (n *fakeNotifier) MaskAdded(maskName string) {
	n.added = append(n.added, maskName)
}

func TestCreateMapsPayloadFields(t *testing.T) {
	repo := newFakeMaskRepo()
	svc := NewMaskService(repo, nil)

	sensors := 4
	mask, err := svc.Create(context.Background(), &models.MaskPayload{
		Model:        "  FS-11 PRO ",
		FullName:     "Маска сварщика FS-11 PRO",
		Article:      "АРТ-11",
		VisibleArea:  "100x53",
		SensorsCount: &sensors,
		ShadeLevel:   "DIN 9-13",
		LightState:   "солнечная батарея",
		Body:         "ударопрочный пластик",
		RetailPrice:  "6990",
	})
	require.NoError(t, err)

	require.Equal(t, "FS-11 PRO", mask.Name)
	require.Equal(t, "Маска сварщика FS-11 PRO", *mask.Instructions)
	require.Equal(t, "АРТ-11", *mask.Description)
	require.Equal(t, "100x53", *mask.ViewArea)
	require.Equal(t, 4, *mask.Sensors)
	require.Equal(t, "DIN 9-13", *mask.ShadeRange)
	require.Equal(t, "солнечная батарея", *mask.Power)
	require.Equal(t, "ударопрочный пластик", *mask.Material)
	require.Equal(t, "6990", *mask.Price)
	require.Nil(t, mask.Weight)
}

func TestCreateCollectsExtras(t *testing.T) {
	repo := newFakeMaskRepo()
	svc := NewMaskService(repo, nil)

	mask, err := svc.Create(context.Background(), &models.MaskPayload{
		Model:       "FS-12",
		HDColorTech: "да",
		TestButton:  "есть",
		ExtraFields: []models.KeyValue{
			{Key: "Гарантия", Value: "2 года"},
			{Key: "", Value: "потерянное значение"},
		},
	})
	require.NoError(t, err)

	stored := repo.extras[mask.ID]
	require.Equal(t, []models.KeyValue{
		{Key: models.KeyTestButton, Value: "есть"},
		{Key: models.KeyHDColor, Value: "да"},
		{Key: "Гарантия", Value: "2 года"},
	}, stored)
}

func TestCreateNotifies(t *testing.T) {
	repo := newFakeMaskRepo()
	notifier := &fakeNotifier{}
	svc := NewMaskService(repo, notifier)

	_, err := svc.Create(context.Background(), &models.MaskPayload{Model: "FS-13"})
	require.NoError(t, err)
	require.Equal(t, []string{"FS-13"}, notifier.added)
}

func TestUpdateReplacesExtrasWholesale(t *testing.T) {
	repo := newFakeMaskRepo()
	svc := NewMaskService(repo, nil)

	created, err := svc.Create(context.Background(), &models.MaskPayload{
		Model:       "FS-14",
		ExtraFields: []models.KeyValue{{Key: "Гарантия", Value: "1 год"}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &models.MaskPayload{
		Model:       "FS-14",
		ExtraFields: []models.KeyValue{{Key: "Комплектация", Value: "сумка"}},
	})
	require.NoError(t, err)

	require.Len(t, updated.ExtraFields, 1)
	require.Equal(t, "Комплектация", updated.ExtraFields[0].Key)
}

func TestUpdateUnknownMask(t *testing.T) {
	svc := NewMaskService(newFakeMaskRepo(), nil)

	_, err := svc.Update(context.Background(), 99, &models.MaskPayload{Model: "FS-15"})
	require.ErrorIs(t, err, ErrMaskNotFound)
}

func TestDeleteUnknownMask(t *testing.T) {
	svc := NewMaskService(newFakeMaskRepo(), nil)
	require.ErrorIs(t, svc.Delete(context.Background(), 42), ErrMaskNotFound)
}
