package sync

import (
	"context"

	"github.com/jdifek/fitziz-adminka/internal/client/api"
	"github.com/jdifek/fitziz-adminka/internal/features/settings/models"
)

// Settings реализует панель настроек и рассылки: шаблон уведомления о новой
// маске плюс отправка произвольного сообщения всем пользователям.
type Settings struct {
	client   *api.Client
	reporter *Reporter

	settings []*models.Setting
	template string
}

func NewSettings(client *api.Client, reporter *Reporter) *Settings {
	return &Settings{client: client, reporter: reporter}
}

// Fetch загружает настройки и выделяет шаблон уведомления.
// При ошибке прежние значения сохраняются.
func (s *Settings) Fetch(ctx context.Context) error {
	settings, err := s.client.ListSettings(ctx)
	if err != nil {
		s.report(OpFetch, err)
		return err
	}

	s.settings = settings
	s.template = ""
	for _, setting := range settings {
		if setting.Key == models.KeyMaskAddedTemplate {
			s.template = setting.Value
			break
		}
	}
	s.report(OpFetch, nil)
	return nil
}

// All возвращает все настройки из последней успешной загрузки.
func (s *Settings) All() []*models.Setting { return s.settings }

// Template возвращает текущий шаблон уведомления о новой маске.
func (s *Settings) Template() string { return s.template }

// SaveTemplate сохраняет шаблон и перечитывает настройки.
func (s *Settings) SaveTemplate(ctx context.Context, text string) error {
	if _, err := s.client.SaveSetting(ctx, models.KeyMaskAddedTemplate, text); err != nil {
		s.report(OpSave, err)
		return err
	}
	s.report(OpSave, nil)
	return s.Fetch(ctx)
}

// SendBroadcast запускает рассылку текста всем пользователям.
func (s *Settings) SendBroadcast(ctx context.Context, text string) error {
	err := s.client.SendMessage(ctx, text)
	s.report(OpSend, err)
	return err
}

func (s *Settings) report(op Op, err error) {
	if s.reporter != nil {
		s.reporter.Report(Result{Op: op, Entity: "settings", Err: err})
	}
}
