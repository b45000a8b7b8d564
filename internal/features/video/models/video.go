package models

// Video представляет обзорный ролик из публичного каталога.
type Video struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	URL          *string `json:"url"`
	Description  *string `json:"description"`
	Duration     *string `json:"duration"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}

// VideoPayload содержит форму создания/редактирования видео.
type VideoPayload struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	Description  string `json:"description"`
	Duration     string `json:"duration"`
	ThumbnailURL string `json:"thumbnailUrl"`
}
