package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jdifek/fitziz-adminka/internal/features/settings/models"
	"github.com/jdifek/fitziz-adminka/internal/features/settings/repository"
)

var ErrSettingNotFound = repository.ErrSettingNotFound

// ChatLister отдает telegramId всех пользователей, которым идет рассылка.
type ChatLister interface {
	ListTelegramIDs(ctx context.Context) ([]string, error)
}

// Sender отправляет одно сообщение в один чат.
type Sender interface {
	SendMessage(telegramID string, text string) error
}

type SettingsService interface {
	List(ctx context.Context) ([]*models.Setting, error)
	Save(ctx context.Context, key, value string) (*models.Setting, error)
	// Broadcast рассылает текст всем пользователям. Список чатов читается
	// синхронно, сами отправки идут в фоне: сбой одного чата не прерывает
	// остальные и лишь пишется в лог.
	Broadcast(ctx context.Context, text string) error
	// MaskAdded рассылает уведомление о новой маске по шаблону
	// TG_MESSAGE_ON_ADD_MASK. Без шаблона рассылка не выполняется.
	MaskAdded(maskName string)
}

type settingsService struct {
	repo   repository.SettingsRepository
	chats  ChatLister
	sender Sender
}

func NewSettingsService(repo repository.SettingsRepository, chats ChatLister, sender Sender) SettingsService {
	return &settingsService{repo: repo, chats: chats, sender: sender}
}

func (s *settingsService) List(ctx context.Context) ([]*models.Setting, error) {
	return s.repo.List(ctx)
}

func (s *settingsService) Save(ctx context.Context, key, value string) (*models.Setting, error) {
	setting := &models.Setting{Key: key, Value: value}
	if err := s.repo.Upsert(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *settingsService) Broadcast(ctx context.Context, text string) error {
	ids, err := s.chats.ListTelegramIDs(ctx)
	if err != nil {
		return err
	}
	go s.sendToAll(ids, text)
	return nil
}

func (s *settingsService) MaskAdded(maskName string) {
	go func() {
		ctx := context.Background()

		template, err := s.repo.Get(ctx, models.KeyMaskAddedTemplate)
		if err != nil {
			if !errors.Is(err, repository.ErrSettingNotFound) {
				log.Error().Err(err).Msg("failed to load mask notification template")
			}
			return
		}
		if template.Value == "" {
			return
		}

		ids, err := s.chats.ListTelegramIDs(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to list chats for mask notification")
			return
		}

		s.sendToAll(ids, strings.ReplaceAll(template.Value, "{name}", maskName))
	}()
}

func (s *settingsService) sendToAll(telegramIDs []string, text string) {
	sent := 0
	for _, id := range telegramIDs {
		if err := s.sender.SendMessage(id, text); err != nil {
			log.Error().Err(err).Str("telegram_id", id).Msg("failed to send broadcast message")
			continue
		}
		sent++
	}
	log.Info().Int("sent", sent).Int("total", len(telegramIDs)).Msg("broadcast finished")
}
