package models

// Setting представляет пару ключ/значение из таблицы настроек.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// KeyMaskAddedTemplate задает ключ шаблона сообщения, рассылаемого при добавлении маски.
// Плейсхолдер {name} заменяется на имя маски.
const KeyMaskAddedTemplate = "TG_MESSAGE_ON_ADD_MASK"

type SettingPayload struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

type BroadcastPayload struct {
	Text string `json:"text" binding:"required"`
}
