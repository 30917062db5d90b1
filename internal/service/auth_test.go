package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muffme/bakery-backend/internal/domain"
	domainmocks "github.com/muffme/bakery-backend/internal/domain/mocks"
	"github.com/muffme/bakery-backend/internal/utils/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestJWTManager() *jwt.Manager {
	return jwt.NewManager("test-secret", time.Hour)
}

func TestAuthService_RequestCode(t *testing.T) {
	ctx := context.Background()

	t.Run("Success in production mode", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockVerificationRepo := domainmocks.NewVerificationRepositoryMock(t)
		mockSMS := domainmocks.NewSMSSenderMock(t)
		svc := NewAuthService(mockUserRepo, mockVerificationRepo, nil, mockSMS, newTestJWTManager(), false)

		var sentCode string
		mockVerificationRepo.EXPECT().
			CreateCode(mock.Anything, "+79991234567", mock.Anything, mock.Anything).
			Run(func(ctx context.Context, phoneNumber, code string, expiresAt time.Time) {
				sentCode = code
				assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, time.Minute)
			}).
			Return(nil).Once()
		mockSMS.EXPECT().
			SendVerificationCode(mock.Anything, "+79991234567", mock.Anything).
			Return(nil).Once()

		message, err := svc.RequestCode(ctx, "8 (999) 123-45-67")
		require.NoError(t, err)
		assert.Equal(t, "Verification code sent successfully", message)
		assert.Len(t, sentCode, 4)
	})

	t.Run("Dev mode skips SMS", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockVerificationRepo := domainmocks.NewVerificationRepositoryMock(t)
		mockSMS := domainmocks.NewSMSSenderMock(t)
		svc := NewAuthService(mockUserRepo, mockVerificationRepo, nil, mockSMS, newTestJWTManager(), true)

		mockVerificationRepo.EXPECT().
			CreateCode(mock.Anything, "+79991234567", "1234", mock.Anything).
			Return(nil).Once()

		message, err := svc.RequestCode(ctx, "+79991234567")
		require.NoError(t, err)
		assert.Contains(t, message, "1234")
	})

	t.Run("Invalid phone", func(t *testing.T) {
		svc := NewAuthService(nil, nil, nil, nil, newTestJWTManager(), false)

		_, err := svc.RequestCode(ctx, "not a phone")
		assert.ErrorIs(t, err, domain.ErrInvalidPhone)
	})

	t.Run("SMS gateway error echoes the code", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockVerificationRepo := domainmocks.NewVerificationRepositoryMock(t)
		mockSMS := domainmocks.NewSMSSenderMock(t)
		svc := NewAuthService(mockUserRepo, mockVerificationRepo, nil, mockSMS, newTestJWTManager(), false)

		var storedCode string
		mockVerificationRepo.EXPECT().
			CreateCode(mock.Anything, "+79991234567", mock.Anything, mock.Anything).
			Run(func(ctx context.Context, phoneNumber, code string, expiresAt time.Time) {
				storedCode = code
			}).
			Return(nil).Once()
		mockSMS.EXPECT().
			SendVerificationCode(mock.Anything, "+79991234567", mock.Anything).
			Return(errors.New("gateway unavailable")).Once()

		// Сохраненный код остается действительным и возвращается пользователю
		message, err := svc.RequestCode(ctx, "+79991234567")
		require.NoError(t, err)
		assert.Contains(t, message, storedCode)
		assert.Contains(t, message, "Failed to send SMS")
	})

	t.Run("Database error", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockVerificationRepo := domainmocks.NewVerificationRepositoryMock(t)
		svc := NewAuthService(mockUserRepo, mockVerificationRepo, nil, nil, newTestJWTManager(), true)

		mockVerificationRepo.EXPECT().
			CreateCode(mock.Anything, "+79991234567", "1234", mock.Anything).
			Return(errors.New("db error")).Once()

		_, err := svc.RequestCode(ctx, "+79991234567")
		assert.Error(t, err)
	})
}

func TestAuthService_VerifyCode(t *testing.T) {
	ctx := context.Background()
	existing := &domain.User{ID: 1, PhoneNumber: "+79991234567", BonusLevel: domain.LevelStandard}
	profile := &domain.UserProfile{ID: 1, PhoneNumber: "+79991234567"}

	t.Run("Success for existing user", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockVerificationRepo := domainmocks.NewVerificationRepositoryMock(t)
		mockProfiles := domainmocks.NewUserServiceMock(t)
		svc := NewAuthService(mockUserRepo, mockVerificationRepo, mockProfiles, nil, newTestJWTManager(), false)

		mockVerificationRepo.EXPECT().ConsumeCode(mock.Anything, "+79991234567", "5678").Return(nil).Once()
		mockUserRepo.EXPECT().GetUserByPhone(mock.Anything, "+79991234567").Return(existing, nil).Once()
		mockUserRepo.EXPECT().TouchLastLogin(mock.Anything, int64(1)).Return(nil).Once()
		mockProfiles.EXPECT().GetProfile(mock.Anything, int64(1)).Return(profile, nil).Once()

		result, err := svc.VerifyCode(ctx, "+79991234567", "5678")
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.False(t, result.IsNew)
		assert.Equal(t, profile, result.User)

		// Токен содержит пользовательскую роль
		userID, role, err := newTestJWTManager().Validate(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(1), userID)
		assert.Equal(t, domain.RoleUser, role)
	})

	t.Run("New user is created", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockVerificationRepo := domainmocks.NewVerificationRepositoryMock(t)
		mockProfiles := domainmocks.NewUserServiceMock(t)
		svc := NewAuthService(mockUserRepo, mockVerificationRepo, mockProfiles, nil, newTestJWTManager(), false)

		mockVerificationRepo.EXPECT().ConsumeCode(mock.Anything, "+79991234567", "5678").Return(nil).Once()
		mockUserRepo.EXPECT().GetUserByPhone(mock.Anything, "+79991234567").Return(nil, domain.ErrUserNotFound).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, "+79991234567").Return(existing, nil).Once()
		mockUserRepo.EXPECT().TouchLastLogin(mock.Anything, int64(1)).Return(nil).Once()
		mockProfiles.EXPECT().GetProfile(mock.Anything, int64(1)).Return(profile, nil).Once()

		result, err := svc.VerifyCode(ctx, "+79991234567", "5678")
		require.NoError(t, err)
		assert.True(t, result.IsNew)
	})

	t.Run("Concurrent registration falls back to existing user", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockVerificationRepo := domainmocks.NewVerificationRepositoryMock(t)
		mockProfiles := domainmocks.NewUserServiceMock(t)
		svc := NewAuthService(mockUserRepo, mockVerificationRepo, mockProfiles, nil, newTestJWTManager(), false)

		mockVerificationRepo.EXPECT().ConsumeCode(mock.Anything, "+79991234567", "5678").Return(nil).Once()
		mockUserRepo.EXPECT().GetUserByPhone(mock.Anything, "+79991234567").Return(nil, domain.ErrUserNotFound).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, "+79991234567").Return(nil, domain.ErrUserExists).Once()
		mockUserRepo.EXPECT().GetUserByPhone(mock.Anything, "+79991234567").Return(existing, nil).Once()
		mockUserRepo.EXPECT().TouchLastLogin(mock.Anything, int64(1)).Return(nil).Once()
		mockProfiles.EXPECT().GetProfile(mock.Anything, int64(1)).Return(profile, nil).Once()

		result, err := svc.VerifyCode(ctx, "+79991234567", "5678")
		require.NoError(t, err)
		assert.False(t, result.IsNew)
	})

	t.Run("Dev code bypasses verification", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockVerificationRepo := domainmocks.NewVerificationRepositoryMock(t)
		mockProfiles := domainmocks.NewUserServiceMock(t)
		svc := NewAuthService(mockUserRepo, mockVerificationRepo, mockProfiles, nil, newTestJWTManager(), true)

		mockUserRepo.EXPECT().GetUserByPhone(mock.Anything, "+79991234567").Return(existing, nil).Once()
		mockUserRepo.EXPECT().TouchLastLogin(mock.Anything, int64(1)).Return(nil).Once()
		mockProfiles.EXPECT().GetProfile(mock.Anything, int64(1)).Return(profile, nil).Once()

		result, err := svc.VerifyCode(ctx, "+79991234567", "1234")
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("Invalid code", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockVerificationRepo := domainmocks.NewVerificationRepositoryMock(t)
		svc := NewAuthService(mockUserRepo, mockVerificationRepo, nil, nil, newTestJWTManager(), false)

		mockVerificationRepo.EXPECT().ConsumeCode(mock.Anything, "+79991234567", "0000").Return(domain.ErrInvalidCode).Once()

		_, err := svc.VerifyCode(ctx, "+79991234567", "0000")
		assert.ErrorIs(t, err, domain.ErrInvalidCode)
	})

	t.Run("Invalid phone", func(t *testing.T) {
		svc := NewAuthService(nil, nil, nil, nil, newTestJWTManager(), false)

		_, err := svc.VerifyCode(ctx, "abc", "1234")
		assert.ErrorIs(t, err, domain.ErrInvalidPhone)
	})
}
