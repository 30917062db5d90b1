package service

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/muffme/bakery-backend/internal/domain"
	"go.uber.org/zap"
)

// SMTPMailSender отправляет письма через SMTP с аутентификацией PLAIN
type SMTPMailSender struct {
	host     string
	port     int
	username string
	password string
	to       string
}

// NewSMTPMailSender создает новый SMTPMailSender. Письма уходят на
// адрес to из конфигурации.
func NewSMTPMailSender(host string, port int, username, password, to string) *SMTPMailSender {
	return &SMTPMailSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		to:       to,
	}
}

// SendPreorder отправляет заявку на предзаказ письмом
func (s *SMTPMailSender) SendPreorder(ctx context.Context, req domain.PreorderRequest) error {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.username)
	fmt.Fprintf(&b, "To: %s\r\n", s.to)
	b.WriteString("Subject: =?UTF-8?B?0J3QvtCy0YvQuSDQv9GA0LXQtNC30LDQutCw0Lc=?=\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Телефон: %s\r\n", req.Phone)
	if req.Email != "" {
		fmt.Fprintf(&b, "Email: %s\r\n", req.Email)
	}
	fmt.Fprintf(&b, "\r\n%s\r\n", req.Message)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := smtp.SendMail(addr, auth, s.username, []string{s.to}, []byte(b.String())); err != nil {
		return fmt.Errorf("mail sender: failed to send to %s: %w", s.to, err)
	}
	return nil
}

// LogMailSender пишет заявку в лог вместо отправки. Используется в режиме
// разработки без настроенного SMTP.
type LogMailSender struct {
	logger *zap.Logger
}

// NewLogMailSender создает новый LogMailSender
func NewLogMailSender(logger *zap.Logger) *LogMailSender {
	return &LogMailSender{logger: logger}
}

// SendPreorder логирует заявку вместо отправки письма
func (s *LogMailSender) SendPreorder(ctx context.Context, req domain.PreorderRequest) error {
	s.logger.Info("preorder mail skipped",
		zap.String("phone", req.Phone),
		zap.String("email", req.Email),
		zap.String("message", req.Message),
	)
	return nil
}
