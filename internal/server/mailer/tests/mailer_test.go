package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"catkeeper/internal/server/config"
	"catkeeper/internal/server/mailer"
	serr "catkeeper/internal/shared/errors"
	"catkeeper/internal/shared/models"
)

// фейковый источник пользователей
type fakeUsers struct {
	users []models.User
	err   error
}

func (f *fakeUsers) List(ctx context.Context) ([]models.User, error) {
	return f.users, f.err
}

func testMailerConfig() config.MailerConfig {
	return config.MailerConfig{
		Host:         "smtp.example.com",
		Port:         587,
		From:         "noreply@example.com",
		RemindDomain: "@gmail.com",
	}
}

// Фильтрация по домену рассылки
func TestFilterRecipients(t *testing.T) {
	users := []models.User{
		{ID: 1, Email: "cat.owner@gmail.com"},
		{ID: 2, Email: "other@yandex.ru"},
		{ID: 3, Email: "second@gmail.com"},
		{ID: 4, Email: "corp@example.com"},
	}

	got := mailer.FilterRecipients(users, "@gmail.com")

	require.Equal(t, []string{"cat.owner@gmail.com", "second@gmail.com"}, got)
}

// Пустой вход — пустой выход
func TestFilterRecipients_Empty(t *testing.T) {
	require.Empty(t, mailer.FilterRecipients(nil, "@gmail.com"))
}

// Нет подходящих адресатов — штатный пропуск без похода в SMTP и без ошибки:
// ночной запуск на пустой базе не должен логироваться как упавшая задача
func TestSendReminders_NoRecipients_ReturnsNil(t *testing.T) {
	src := &fakeUsers{users: []models.User{
		{ID: 1, Email: "other@yandex.ru"},
	}}

	m := mailer.NewMailer(src, testMailerConfig(), zap.NewNop())

	require.NoError(t, m.SendReminders(context.Background()))
}

// Рассылка собирается в одно письмо на всех адресатов; ошибка на этапе
// сборки письма отдаётся наружу как ошибка отправки
func TestSendReminders_BadFromAddress_ReturnsSendFailed(t *testing.T) {
	src := &fakeUsers{users: []models.User{
		{ID: 1, Email: "cat.owner@gmail.com"},
		{ID: 2, Email: "second@gmail.com"},
	}}

	cfg := testMailerConfig()
	cfg.From = "not-an-email"

	m := mailer.NewMailer(src, cfg, zap.NewNop())

	err := m.SendReminders(context.Background())

	require.ErrorIs(t, err, serr.ErrSendFailed)
}

// Ошибка чтения пользователей пробрасывается наружу
func TestSendReminders_ListError(t *testing.T) {
	src := &fakeUsers{err: errors.New("db down")}

	m := mailer.NewMailer(src, testMailerConfig(), zap.NewNop())

	err := m.SendReminders(context.Background())

	require.Error(t, err)
	require.NotErrorIs(t, err, serr.ErrSendFailed)
}
