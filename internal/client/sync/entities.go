package sync

import (
	"context"
	"errors"
	"strconv"

	"github.com/jdifek/fitziz-adminka/internal/client/api"
	featuremodels "github.com/jdifek/fitziz-adminka/internal/features/feature/models"
	reviewmodels "github.com/jdifek/fitziz-adminka/internal/features/review/models"
	usermodels "github.com/jdifek/fitziz-adminka/internal/features/user/models"
	videomodels "github.com/jdifek/fitziz-adminka/internal/features/video/models"
)

// VideoDraft содержит форму видео, все поля свободный текст.
type VideoDraft struct {
	Title        string
	URL          string
	Description  string
	Duration     string
	ThumbnailURL string
}

func DraftFromVideo(v *videomodels.Video) VideoDraft {
	return VideoDraft{
		Title:        v.Title,
		URL:          deref(v.URL),
		Description:  deref(v.Description),
		Duration:     deref(v.Duration),
		ThumbnailURL: deref(v.ThumbnailURL),
	}
}

func (d VideoDraft) Payload() *videomodels.VideoPayload {
	return &videomodels.VideoPayload{
		Title:        d.Title,
		URL:          d.URL,
		Description:  d.Description,
		Duration:     d.Duration,
		ThumbnailURL: d.ThumbnailURL,
	}
}

func NewVideoController(client *api.Client, reporter *Reporter) *Controller[int, *videomodels.Video, VideoDraft] {
	return NewController("video", Ops[int, *videomodels.Video, VideoDraft]{
		Fetch: client.ListVideos,
		Create: func(ctx context.Context, form VideoDraft) error {
			_, err := client.CreateVideo(ctx, form.Payload())
			return err
		},
		Update: func(ctx context.Context, id int, form VideoDraft) error {
			_, err := client.UpdateVideo(ctx, id, form.Payload())
			return err
		},
		Delete: client.DeleteVideo,
		Draft:  DraftFromVideo,
		IDOf:   func(v *videomodels.Video) int { return v.ID },
	}, reporter)
}

// FeatureDraft содержит форму особенности; маска обязательна.
type FeatureDraft struct {
	Name   string
	MaskID string
}

func DraftFromFeature(f *featuremodels.Feature) FeatureDraft {
	return FeatureDraft{Name: f.Name, MaskID: strconv.Itoa(f.MaskID)}
}

func (d FeatureDraft) Payload() (*featuremodels.FeaturePayload, error) {
	maskID, err := RequiredInt("maskId", d.MaskID)
	if err != nil {
		return nil, err
	}
	return &featuremodels.FeaturePayload{Name: d.Name, MaskID: maskID}, nil
}

func NewFeatureController(client *api.Client, reporter *Reporter) *Controller[int, *featuremodels.Feature, FeatureDraft] {
	return NewController("feature", Ops[int, *featuremodels.Feature, FeatureDraft]{
		Fetch: client.ListFeatures,
		Create: func(ctx context.Context, form FeatureDraft) error {
			payload, err := form.Payload()
			if err != nil {
				return err
			}
			_, err = client.CreateFeature(ctx, payload)
			return err
		},
		Update: func(ctx context.Context, id int, form FeatureDraft) error {
			payload, err := form.Payload()
			if err != nil {
				return err
			}
			_, err = client.UpdateFeature(ctx, id, payload)
			return err
		},
		Delete: client.DeleteFeature,
		Draft:  DraftFromFeature,
		IDOf:   func(f *featuremodels.Feature) int { return f.ID },
	}, reporter)
}

// ReviewDraft содержит форму отзыва; оценка обязательна, маска опциональна.
type ReviewDraft struct {
	UserName string
	Rating   string
	Comment  string
	MaskID   string
}

func DraftFromReview(r *reviewmodels.Review) ReviewDraft {
	d := ReviewDraft{
		UserName: r.UserName,
		Rating:   strconv.FormatFloat(r.Rating, 'f', -1, 64),
		Comment:  deref(r.Comment),
	}
	if r.MaskID != nil {
		d.MaskID = strconv.Itoa(*r.MaskID)
	}
	return d
}

func (d ReviewDraft) Payload() (*reviewmodels.ReviewPayload, error) {
	rating, err := RequiredFloat("rating", d.Rating)
	if err != nil {
		return nil, err
	}
	maskID, err := OptionalInt("maskId", d.MaskID)
	if err != nil {
		return nil, err
	}
	return &reviewmodels.ReviewPayload{
		UserName: d.UserName,
		Rating:   rating,
		Comment:  d.Comment,
		MaskID:   maskID,
	}, nil
}

func NewReviewController(client *api.Client, reporter *Reporter) *Controller[int, *reviewmodels.Review, ReviewDraft] {
	return NewController("review", Ops[int, *reviewmodels.Review, ReviewDraft]{
		Fetch: client.ListReviews,
		Create: func(ctx context.Context, form ReviewDraft) error {
			payload, err := form.Payload()
			if err != nil {
				return err
			}
			_, err = client.CreateReview(ctx, payload)
			return err
		},
		Update: func(ctx context.Context, id int, form ReviewDraft) error {
			payload, err := form.Payload()
			if err != nil {
				return err
			}
			_, err = client.UpdateReview(ctx, id, payload)
			return err
		},
		Delete: client.DeleteReview,
		Draft:  DraftFromReview,
		IDOf:   func(r *reviewmodels.Review) int { return r.ID },
	}, reporter)
}

// UserDraft содержит форму пользователя: менять можно только привязку маски.
type UserDraft struct {
	MaskID string
}

func DraftFromUser(u *usermodels.User) UserDraft {
	var d UserDraft
	if u.MaskID != nil {
		d.MaskID = strconv.Itoa(*u.MaskID)
	}
	return d
}

// UserController надстраивает Controller фильтром по telegramId.
// Пользователи создаются ботом, поэтому отправка формы без
// редактируемого элемента невозможна.
type UserController struct {
	*Controller[string, *usermodels.User, UserDraft]
	filter string
}

func NewUserController(client *api.Client, reporter *Reporter) *UserController {
	uc := &UserController{}
	uc.Controller = NewController("user", Ops[string, *usermodels.User, UserDraft]{
		Fetch: func(ctx context.Context) ([]*usermodels.User, error) {
			return client.ListUsers(ctx, uc.filter)
		},
		Create: func(ctx context.Context, form UserDraft) error {
			return errors.New("users are created by the bot, not the admin panel")
		},
		Update: func(ctx context.Context, telegramID string, form UserDraft) error {
			maskID, err := OptionalInt("maskId", form.MaskID)
			if err != nil {
				return err
			}
			_, err = client.AssignUserMask(ctx, telegramID, maskID)
			return err
		},
		Delete: client.DeleteUser,
		Draft:  DraftFromUser,
		IDOf:   func(u *usermodels.User) string { return u.TelegramID },
	}, reporter)
	return uc
}

func (uc *UserController) Filter() string { return uc.filter }

// SetFilter задает подстроку telegramId для последующих загрузок.
func (uc *UserController) SetFilter(filter string) { uc.filter = filter }
