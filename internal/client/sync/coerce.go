package sync

import (
	"fmt"
	"strconv"
	"strings"
)

// OptionalInt превращает текст поля формы в опциональное число:
// пустая строка означает отсутствие значения, мусор дает ошибку,
// а не молчаливый nil.
func OptionalInt(field, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %q is not a number", field, raw)
	}
	return &n, nil
}

// RequiredFloat парсит обязательное числовое поле формы.
func RequiredFloat(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", field, raw)
	}
	return f, nil
}

// RequiredInt парсит обязательное целое поле формы.
func RequiredInt(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", field, raw)
	}
	return n, nil
}
