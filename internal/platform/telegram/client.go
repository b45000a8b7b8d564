package telegram

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	apperrors "github.com/jdifek/fitziz-adminka/internal/common/errors"
)

// Client отправляет сообщения пользователям через Telegram Bot API.
type Client struct {
	bot *tgbotapi.BotAPI
}

// NewClient создает клиент бота. Пустой токен допустим: в этом случае
// отправка сообщений отключена (удобно для локальной разработки без бота).
func NewClient(token string, debug bool) (*Client, error) {
	if token == "" {
		log.Warn().Msg("BOT_TOKEN is empty, telegram notifications are disabled")
		return &Client{}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	bot.Debug = debug

	log.Info().Str("bot", bot.Self.UserName).Msg("telegram bot authorized")
	return &Client{bot: bot}, nil
}

// SendMessage отправляет текст в чат по строковому telegramId.
func (c *Client) SendMessage(telegramID string, text string) error {
	if c.bot == nil {
		return nil
	}

	chatID, err := strconv.ParseInt(telegramID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid telegram id %q: %w", telegramID, err)
	}

	if _, err := c.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return apperrors.NewTelegramAPIError(fmt.Sprintf("send message to %d", chatID), err)
	}
	return nil
}
