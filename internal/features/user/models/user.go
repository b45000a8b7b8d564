package models

// User представляет конечного пользователя Telegram-бота. Создается ботом;
// админка может только назначить маску или удалить запись.
// telegramId неизменяем после создания.
type User struct {
	ID         int     `json:"id"`
	TelegramID string  `json:"telegramId"`
	FirstName  *string `json:"firstName"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	MaskID     *int    `json:"maskId"`
}

// UserUpdate содержит единственное, что админка меняет у пользователя.
type UserUpdate struct {
	MaskID *int `json:"maskId"`
}
