// Package mailer отвечает за рассылку напоминаний владельцам котов по SMTP.
package mailer

import (
	"context"
	"strings"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"catkeeper/internal/server/config"
	serr "catkeeper/internal/shared/errors"
	"catkeeper/internal/shared/models"
)

const (
	reminderSubject = "Cat Management App"
	reminderBody    = "This is a reminder for to feed your cats today, if you have not done it already :)"
)

// UsersSource поставляет список пользователей для рассылки.
type UsersSource interface {
	List(ctx context.Context) ([]models.User, error)
}

type Mailer struct {
	users UsersSource
	cfg   config.MailerConfig
	log   *zap.Logger
}

func NewMailer(users UsersSource, cfg config.MailerConfig, log *zap.Logger) *Mailer {
	return &Mailer{users: users, cfg: cfg, log: log}
}

// FilterRecipients оставляет только адреса, относящиеся к домену рассылки.
func FilterRecipients(users []models.User, domain string) []string {
	emails := make([]string, 0, len(users))
	for _, u := range users {
		if strings.Contains(u.Email, domain) {
			emails = append(emails, u.Email)
		}
	}
	return emails
}

// SendReminders отправляет одно письмо-напоминание сразу всем подходящим
// адресатам. Отсутствие адресатов — штатная ситуация, не ошибка.
func (m *Mailer) SendReminders(ctx context.Context) error {
	users, err := m.users.List(ctx)
	if err != nil {
		m.log.Error("не удалось получить список пользователей для рассылки", zap.Error(err))
		return err
	}

	recipients := FilterRecipients(users, m.cfg.RemindDomain)
	if len(recipients) == 0 {
		m.log.Info("подходящих адресатов нет, рассылка пропущена")
		return nil
	}

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		m.log.Error("не удалось создать smtp-клиент", zap.Error(err))
		return serr.ErrSendFailed
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		m.log.Error("некорректный адрес отправителя", zap.Error(err))
		return serr.ErrSendFailed
	}
	if err := msg.To(recipients...); err != nil {
		m.log.Error("некорректный адрес получателя", zap.Error(err))
		return serr.ErrSendFailed
	}
	msg.Subject(reminderSubject)
	msg.SetBodyString(mail.TypeTextPlain, reminderBody)

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		m.log.Error("рассылка не отправлена",
			zap.Int("recipients", len(recipients)), zap.Error(err))
		return serr.ErrSendFailed
	}

	m.log.Info("напоминание отправлено", zap.Int("recipients", len(recipients)))
	return nil
}
