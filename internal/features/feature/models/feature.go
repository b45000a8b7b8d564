package models

// Feature представляет особенность маски, показываемую в карточке товара.
type Feature struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	MaskID int    `json:"maskId"`
}

type FeaturePayload struct {
	Name   string `json:"name"`
	MaskID int    `json:"maskId"`
}
