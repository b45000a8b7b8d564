package sync

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jdifek/fitziz-adminka/internal/features/mask/models"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func TestDraftFromMaskPartitionsKnownKeys(t *testing.T) {
	mask := &models.Mask{
		ID:   1,
		Name: "FS-11 PRO",
		ExtraFields: []models.ExtraField{
			{Key: "HD COLOR", Value: "да"},
			{Key: "Гарантия", Value: "2 года"},
			{Key: "Оголовье", Value: "эргономичное"},
		},
	}

	d := DraftFromMask(mask)

	require.Equal(t, "да", d.HDColorTech)
	require.Equal(t, "эргономичное", d.Headband)
	require.Equal(t, []models.KeyValue{{Key: "Гарантия", Value: "2 года"}}, d.Extra)
}

func TestDraftFromMaskMapsNullsToEmpty(t *testing.T) {
	mask := &models.Mask{ID: 2, Name: "FS-10"}

	d := DraftFromMask(mask)

	require.Equal(t, "FS-10", d.Model)
	require.Empty(t, d.FullName)
	require.Empty(t, d.RetailPrice)
	require.Empty(t, d.SensorsCount)
	require.Nil(t, d.Extra)
}

func TestDraftFromMaskFieldMapping(t *testing.T) {
	mask := &models.Mask{
		ID:           3,
		Name:         "FS-12",
		Instructions: strPtr("полное имя"),
		Description:  strPtr("АРТ-123"),
		ViewArea:     strPtr("100x50"),
		ShadeRange:   strPtr("DIN 9-13"),
		Power:        strPtr("солнечная батарея"),
		Material:     strPtr("пластик"),
		Price:        strPtr("4990"),
		Sensors:      intPtr(4),
	}

	d := DraftFromMask(mask)

	require.Equal(t, "полное имя", d.FullName)
	require.Equal(t, "АРТ-123", d.Article)
	require.Equal(t, "100x50", d.VisibleArea)
	require.Equal(t, "DIN 9-13", d.ShadeLevel)
	require.Equal(t, "солнечная батарея", d.LightState)
	require.Equal(t, "пластик", d.Body)
	require.Equal(t, "4990", d.RetailPrice)
	require.Equal(t, "4", d.SensorsCount)
}

func TestMaskDraftRoundTrip(t *testing.T) {
	mask := &models.Mask{
		ID:         4,
		Name:       "FS-13",
		Price:      strPtr("5990"),
		ViewArea:   strPtr("98x43"),
		Sensors:    intPtr(2),
		ShadeRange: strPtr("DIN 5-9"),
		ExtraFields: []models.ExtraField{
			{Key: "HD COLOR", Value: "да"},
			{Key: "Комплектация", Value: "сумка"},
		},
	}

	payload, err := DraftFromMask(mask).Payload()
	require.NoError(t, err)

	require.Equal(t, "FS-13", payload.Model)
	require.Equal(t, "5990", payload.RetailPrice)
	require.Equal(t, "98x43", payload.VisibleArea)
	require.Equal(t, "DIN 5-9", payload.ShadeLevel)
	require.NotNil(t, payload.SensorsCount)
	require.Equal(t, 2, *payload.SensorsCount)
	require.Equal(t, "да", payload.HDColorTech)
	require.Equal(t, []models.KeyValue{{Key: "Комплектация", Value: "сумка"}}, payload.ExtraFields)
}

func TestMaskDraftSensorsCoercion(t *testing.T) {
	d := MaskDraft{Model: "FS-14"}

	payload, err := d.Payload()
	require.NoError(t, err)
	require.Nil(t, payload.SensorsCount)

	d.SensorsCount = " 3 "
	payload, err = d.Payload()
	require.NoError(t, err)
	require.Equal(t, 3, *payload.SensorsCount)

	d.SensorsCount = "many"
	_, err = d.Payload()
	require.Error(t, err)
	require.Contains(t, err.Error(), "sensorsCount")
}
