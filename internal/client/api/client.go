// Package api реализует типизированный REST-клиент админки.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	featuremodels "github.com/jdifek/fitziz-adminka/internal/features/feature/models"
	maskmodels "github.com/jdifek/fitziz-adminka/internal/features/mask/models"
	reviewmodels "github.com/jdifek/fitziz-adminka/internal/features/review/models"
	settingsmodels "github.com/jdifek/fitziz-adminka/internal/features/settings/models"
	usermodels "github.com/jdifek/fitziz-adminka/internal/features/user/models"
	videomodels "github.com/jdifek/fitziz-adminka/internal/features/video/models"
)

// ErrUnauthorized возвращается при неверных логине или пароле.
var ErrUnauthorized = errors.New("invalid credentials")

// APIError описывает ответ сервера со статусом вне 2xx.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken задает bearer-токен для последующих запросов.
func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) Token() string { return c.token }

// Login обменивает логин и пароль на токен сессии. Токен в клиенте
// не сохраняется: этим занимается менеджер сессии.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}

	var resp struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/admin/login", nil, body, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return "", ErrUnauthorized
		}
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/admin/logout", nil, nil, nil)
}

func (c *Client) ListMasks(ctx context.Context) ([]*maskmodels.Mask, error) {
	var masks []*maskmodels.Mask
	if err := c.do(ctx, http.MethodGet, "/admin/masks", nil, nil, &masks); err != nil {
		return nil, err
	}
	return masks, nil
}

func (c *Client) CreateMask(ctx context.Context, payload *maskmodels.MaskPayload) (*maskmodels.Mask, error) {
	var mask maskmodels.Mask
	if err := c.do(ctx, http.MethodPost, "/admin/masks", nil, payload, &mask); err != nil {
		return nil, err
	}
	return &mask, nil
}

func (c *Client) UpdateMask(ctx context.Context, id int, payload *maskmodels.MaskPayload) (*maskmodels.Mask, error) {
	var mask maskmodels.Mask
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/masks/%d", id), nil, payload, &mask); err != nil {
		return nil, err
	}
	return &mask, nil
}

func (c *Client) DeleteMask(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/masks/%d", id), nil, nil, nil)
}

func (c *Client) ListVideos(ctx context.Context) ([]*videomodels.Video, error) {
	var videos []*videomodels.Video
	if err := c.do(ctx, http.MethodGet, "/admin/videos", nil, nil, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (c *Client) CreateVideo(ctx context.Context, payload *videomodels.VideoPayload) (*videomodels.Video, error) {
	var video videomodels.Video
	if err := c.do(ctx, http.MethodPost, "/admin/videos", nil, payload, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

func (c *Client) UpdateVideo(ctx context.Context, id int, payload *videomodels.VideoPayload) (*videomodels.Video, error) {
	var video videomodels.Video
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/videos/%d", id), nil, payload, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

func (c *Client) DeleteVideo(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/videos/%d", id), nil, nil, nil)
}

// ListUsers возвращает пользователей; непустой filter добавляет
// параметр telegramId.
func (c *Client) ListUsers(ctx context.Context, filter string) ([]*usermodels.User, error) {
	var query url.Values
	if filter != "" {
		query = url.Values{"telegramId": {filter}}
	}

	var users []*usermodels.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", query, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) AssignUserMask(ctx context.Context, telegramID string, maskID *int) (*usermodels.User, error) {
	var user usermodels.User
	err := c.do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(telegramID), nil,
		&usermodels.UserUpdate{MaskID: maskID}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, telegramID string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(telegramID), nil, nil, nil)
}

func (c *Client) ListFeatures(ctx context.Context) ([]*featuremodels.Feature, error) {
	var features []*featuremodels.Feature
	if err := c.do(ctx, http.MethodGet, "/admin/features", nil, nil, &features); err != nil {
		return nil, err
	}
	return features, nil
}

func (c *Client) CreateFeature(ctx context.Context, payload *featuremodels.FeaturePayload) (*featuremodels.Feature, error) {
	var feature featuremodels.Feature
	if err := c.do(ctx, http.MethodPost, "/admin/features", nil, payload, &feature); err != nil {
		return nil, err
	}
	return &feature, nil
}

func (c *Client) UpdateFeature(ctx context.Context, id int, payload *featuremodels.FeaturePayload) (*featuremodels.Feature, error) {
	var feature featuremodels.Feature
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/features/%d", id), nil, payload, &feature); err != nil {
		return nil, err
	}
	return &feature, nil
}

func (c *Client) DeleteFeature(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/features/%d", id), nil, nil, nil)
}

func (c *Client) ListReviews(ctx context.Context) ([]*reviewmodels.Review, error) {
	var reviews []*reviewmodels.Review
	if err := c.do(ctx, http.MethodGet, "/admin/reviews", nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, payload *reviewmodels.ReviewPayload) (*reviewmodels.Review, error) {
	var review reviewmodels.Review
	if err := c.do(ctx, http.MethodPost, "/admin/reviews", nil, payload, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) UpdateReview(ctx context.Context, id int, payload *reviewmodels.ReviewPayload) (*reviewmodels.Review, error) {
	var review reviewmodels.Review
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/reviews/%d", id), nil, payload, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) DeleteReview(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/reviews/%d", id), nil, nil, nil)
}

func (c *Client) ListSettings(ctx context.Context) ([]*settingsmodels.Setting, error) {
	var settings []*settingsmodels.Setting
	if err := c.do(ctx, http.MethodGet, "/admin/settings", nil, nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *Client) SaveSetting(ctx context.Context, key, value string) (*settingsmodels.Setting, error) {
	var setting settingsmodels.Setting
	err := c.do(ctx, http.MethodPost, "/admin/settings", nil,
		&settingsmodels.SettingPayload{Key: key, Value: value}, &setting)
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (c *Client) SendMessage(ctx context.Context, text string) error {
	return c.do(ctx, http.MethodPost, "/admin/send-message", nil,
		&settingsmodels.BroadcastPayload{Text: text}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func errorMessage(body io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 4096)).Decode(&payload); err != nil {
		return ""
	}
	return payload.Error
}
