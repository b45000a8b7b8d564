package models

// Review представляет отзыв покупателя; может быть привязан к конкретной маске.
type Review struct {
	ID       int     `json:"id"`
	UserName string  `json:"userName"`
	Rating   float64 `json:"rating"`
	Comment  *string `json:"comment"`
	MaskID   *int    `json:"maskId"`
}

type ReviewPayload struct {
	UserName string  `json:"userName"`
	Rating   float64 `json:"rating"`
	Comment  string  `json:"comment"`
	MaskID   *int    `json:"maskId"`
}
