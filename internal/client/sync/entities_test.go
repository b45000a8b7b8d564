package sync

import (
	"testing"

	"github.com/stretchr/testify/require"

	reviewmodels "github.com/jdifek/fitziz-adminka/internal/features/review/models"
	usermodels "github.com/jdifek/fitziz-adminka/internal/features/user/models"
	videomodels "github.com/jdifek/fitziz-adminka/internal/features/video/models"
)

func TestReviewDraftRequiresRating(t *testing.T) {
	d := ReviewDraft{UserName: "Иван"}

	_, err := d.Payload()
	require.Error(t, err)
	require.Contains(t, err.Error(), "rating")

	d.Rating = "4.5"
	payload, err := d.Payload()
	require.NoError(t, err)
	require.Equal(t, 4.5, payload.Rating)
	require.Nil(t, payload.MaskID)

	d.Rating = "отлично"
	_, err = d.Payload()
	require.Error(t, err)
}

func TestReviewDraftOptionalMask(t *testing.T) {
	d := ReviewDraft{UserName: "Иван", Rating: "5", MaskID: "3"}

	payload, err := d.Payload()
	require.NoError(t, err)
	require.Equal(t, 3, *payload.MaskID)

	d.MaskID = "third"
	_, err = d.Payload()
	require.Error(t, err)
}

func TestDraftFromReview(t *testing.T) {
	comment := "хорошая маска"
	maskID := 9
	d := DraftFromReview(&reviewmodels.Review{
		ID:       1,
		UserName: "Иван",
		Rating:   4.5,
		Comment:  &comment,
		MaskID:   &maskID,
	})

	require.Equal(t, "4.5", d.Rating)
	require.Equal(t, "хорошая маска", d.Comment)
	require.Equal(t, "9", d.MaskID)
}

func TestFeatureDraftRequiresMask(t *testing.T) {
	d := FeatureDraft{Name: "автозатемнение"}

	_, err := d.Payload()
	require.Error(t, err)

	d.MaskID = "2"
	payload, err := d.Payload()
	require.NoError(t, err)
	require.Equal(t, 2, payload.MaskID)
}

func TestVideoDraftRoundTrip(t *testing.T) {
	url := "https://example.com/v"
	v := &videomodels.Video{ID: 1, Title: "Обзор", URL: &url}

	d := DraftFromVideo(v)
	require.Equal(t, "Обзор", d.Title)
	require.Equal(t, url, d.URL)
	require.Empty(t, d.Description)

	payload := d.Payload()
	require.Equal(t, "Обзор", payload.Title)
	require.Equal(t, url, payload.URL)
}

func TestDraftFromUser(t *testing.T) {
	maskID := 5
	d := DraftFromUser(&usermodels.User{TelegramID: "100", MaskID: &maskID})
	require.Equal(t, "5", d.MaskID)

	d = DraftFromUser(&usermodels.User{TelegramID: "200"})
	require.Empty(t, d.MaskID)
}
