package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/muffme/bakery-backend/internal/domain"
	domainmocks "github.com/muffme/bakery-backend/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockBonus := domainmocks.NewBonusServiceMock(t)
		svc := NewUserService(mockUserRepo, mockBonus)

		user := &domain.User{ID: 1, Name: "Анна", PhoneNumber: "+79991234567", BonusLevel: domain.LevelSilver}
		summary := &domain.BonusSummary{Balance: 250, Level: domain.LevelSilver}

		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(1)).Return(user, nil).Once()
		mockBonus.EXPECT().GetSummary(mock.Anything, int64(1), DefaultHistoryLimit).Return(summary, nil).Once()

		profile, err := svc.GetProfile(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Анна", profile.Name)
		assert.Equal(t, "+79991234567", profile.PhoneNumber)
		require.NotNil(t, profile.Bonus)
		assert.Equal(t, int64(250), profile.Bonus.Balance)
	})

	t.Run("User not found", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockBonus := domainmocks.NewBonusServiceMock(t)
		svc := NewUserService(mockUserRepo, mockBonus)

		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(42)).Return(nil, domain.ErrUserNotFound).Once()

		_, err := svc.GetProfile(ctx, 42)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockBonus := domainmocks.NewBonusServiceMock(t)
		svc := NewUserService(mockUserRepo, mockBonus)

		name := "Анна"
		birthday := time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC)
		upd := domain.ProfileUpdate{Name: &name, Birthday: &birthday}

		user := &domain.User{ID: 1, Name: "Анна", Birthday: &birthday, BonusLevel: domain.LevelStandard}
		summary := &domain.BonusSummary{Level: domain.LevelStandard}

		mockUserRepo.EXPECT().UpdateProfile(mock.Anything, int64(1), upd).Return(user, nil).Once()
		mockBonus.EXPECT().GetSummary(mock.Anything, int64(1), DefaultHistoryLimit).Return(summary, nil).Once()

		profile, err := svc.UpdateProfile(ctx, 1, upd)
		require.NoError(t, err)
		assert.Equal(t, "Анна", profile.Name)
		require.NotNil(t, profile.Birthday)
		assert.Equal(t, birthday, *profile.Birthday)
	})

	t.Run("Empty name", func(t *testing.T) {
		svc := NewUserService(nil, nil)

		name := ""
		_, err := svc.UpdateProfile(ctx, 1, domain.ProfileUpdate{Name: &name})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Name too long", func(t *testing.T) {
		svc := NewUserService(nil, nil)

		name := strings.Repeat("a", maxNameLength+1)
		_, err := svc.UpdateProfile(ctx, 1, domain.ProfileUpdate{Name: &name})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("User not found", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockBonus := domainmocks.NewBonusServiceMock(t)
		svc := NewUserService(mockUserRepo, mockBonus)

		name := "Анна"
		upd := domain.ProfileUpdate{Name: &name}
		mockUserRepo.EXPECT().UpdateProfile(mock.Anything, int64(42), upd).Return(nil, domain.ErrUserNotFound).Once()

		_, err := svc.UpdateProfile(ctx, 42, upd)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
