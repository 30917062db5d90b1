package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/muffme/bakery-backend/internal/domain"
	"github.com/muffme/bakery-backend/internal/utils/phone"
)

// PreorderService принимает заявки на предзаказ и пересылает их на
// почту кондитерской
type PreorderService struct {
	mailSender domain.MailSender
}

// NewPreorderService создает новый PreorderService
func NewPreorderService(mailSender domain.MailSender) *PreorderService {
	return &PreorderService{mailSender: mailSender}
}

// Submit проверяет заявку и отправляет ее письмом
func (s *PreorderService) Submit(ctx context.Context, req domain.PreorderRequest) error {
	if !phone.Valid(req.Phone) {
		return domain.ErrInvalidPhone
	}
	if req.Email != "" && !strings.Contains(req.Email, "@") {
		return domain.ErrInvalidInput
	}
	if strings.TrimSpace(req.Message) == "" {
		return domain.ErrInvalidInput
	}

	if err := s.mailSender.SendPreorder(ctx, req); err != nil {
		return fmt.Errorf("preorder service: failed to send mail: %w", err)
	}
	return nil
}
