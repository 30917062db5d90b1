package service

import (
	"context"
	"errors"
	"testing"

	"github.com/muffme/bakery-backend/internal/domain"
	domainmocks "github.com/muffme/bakery-backend/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPreorderService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockMail := domainmocks.NewMailSenderMock(t)
		svc := NewPreorderService(mockMail)

		req := domain.PreorderRequest{
			Phone:   "+79991234567",
			Email:   "anna@example.com",
			Message: "Торт на день рождения, 12 персон",
		}
		mockMail.EXPECT().SendPreorder(mock.Anything, req).Return(nil).Once()

		assert.NoError(t, svc.Submit(ctx, req))
	})

	t.Run("Email is optional", func(t *testing.T) {
		mockMail := domainmocks.NewMailSenderMock(t)
		svc := NewPreorderService(mockMail)

		req := domain.PreorderRequest{Phone: "+79991234567", Message: "Капкейки к пятнице"}
		mockMail.EXPECT().SendPreorder(mock.Anything, req).Return(nil).Once()

		assert.NoError(t, svc.Submit(ctx, req))
	})

	t.Run("Invalid phone", func(t *testing.T) {
		svc := NewPreorderService(nil)

		req := domain.PreorderRequest{Phone: "abc", Message: "Торт"}
		assert.ErrorIs(t, svc.Submit(ctx, req), domain.ErrInvalidPhone)
	})

	t.Run("Invalid email", func(t *testing.T) {
		svc := NewPreorderService(nil)

		req := domain.PreorderRequest{Phone: "+79991234567", Email: "not-an-email", Message: "Торт"}
		assert.ErrorIs(t, svc.Submit(ctx, req), domain.ErrInvalidInput)
	})

	t.Run("Blank message", func(t *testing.T) {
		svc := NewPreorderService(nil)

		req := domain.PreorderRequest{Phone: "+79991234567", Message: "   "}
		assert.ErrorIs(t, svc.Submit(ctx, req), domain.ErrInvalidInput)
	})

	t.Run("Mail error", func(t *testing.T) {
		mockMail := domainmocks.NewMailSenderMock(t)
		svc := NewPreorderService(mockMail)

		req := domain.PreorderRequest{Phone: "+79991234567", Message: "Торт"}
		mockMail.EXPECT().SendPreorder(mock.Anything, req).Return(errors.New("smtp error")).Once()

		assert.Error(t, svc.Submit(ctx, req))
	})
}
