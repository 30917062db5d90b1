package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muffme/bakery-backend/internal/domain"
	domainmocks "github.com/muffme/bakery-backend/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBonusService_ComputeAccrual(t *testing.T) {
	svc := NewBonusService(domain.DefaultTierTable(), nil, nil)

	tests := []struct {
		name         string
		level        domain.BonusLevel
		amount       int64
		bonusPercent int
		expected     int64
	}{
		{"Standard level", domain.LevelStandard, 1000, 5, 50},
		{"Gold multiplier", domain.LevelGold, 1000, 5, 75},
		{"Platinum multiplier", domain.LevelPlatinum, 1000, 5, 100},
		{"Fractional points are dropped", domain.LevelSilver, 999, 5, 59},
		{"Zero amount", domain.LevelStandard, 0, 5, 0},
		{"Zero percent", domain.LevelGold, 1000, 0, 0},
		{"Small order below one point", domain.LevelStandard, 10, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := svc.ComputeAccrual(tt.level, tt.amount, tt.bonusPercent)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, points)
		})
	}

	t.Run("Negative amount", func(t *testing.T) {
		_, err := svc.ComputeAccrual(domain.LevelStandard, -100, 5)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("Percent out of range", func(t *testing.T) {
		_, err := svc.ComputeAccrual(domain.LevelStandard, 100, 101)
		assert.Error(t, err)
	})

	t.Run("Unknown level", func(t *testing.T) {
		_, err := svc.ComputeAccrual("DIAMOND", 100, 5)
		assert.Error(t, err)
	})
}

func TestBonusService_Debit(t *testing.T) {
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockLedgerRepo := domainmocks.NewLedgerRepositoryMock(t)
	svc := NewBonusService(domain.DefaultTierTable(), mockUserRepo, mockLedgerRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		orderID := int64(3)
		entry := &domain.LedgerEntry{ID: 1, Amount: -100, Type: domain.EntryTypeSpentOnPurchase}

		mockLedgerRepo.EXPECT().
			Debit(mock.Anything, int64(1), int64(100), "Spent 100 bonus points on order #3", &orderID).
			Return(entry, nil).Once()

		got, err := svc.Debit(ctx, 1, 100, orderID)
		require.NoError(t, err)
		assert.Equal(t, int64(-100), got.Amount)
	})

	t.Run("Invalid amount", func(t *testing.T) {
		_, err := svc.Debit(ctx, 1, 0, 3)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		_, err = svc.Debit(ctx, 1, -50, 3)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		mockLedgerRepo.EXPECT().
			Debit(mock.Anything, int64(1), int64(500), mock.Anything, mock.Anything).
			Return(nil, domain.ErrInsufficientBalance).Once()

		_, err := svc.Debit(ctx, 1, 500, 3)
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	})
}

func TestBonusService_Refund(t *testing.T) {
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockLedgerRepo := domainmocks.NewLedgerRepositoryMock(t)
	svc := NewBonusService(domain.DefaultTierTable(), mockUserRepo, mockLedgerRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		orderID := int64(5)
		entry := &domain.LedgerEntry{ID: 2, Amount: 100, Type: domain.EntryTypeRefund}

		mockLedgerRepo.EXPECT().
			Credit(mock.Anything, int64(1), int64(100), domain.EntryTypeRefund, "Refund for cancelled order #5", &orderID).
			Return(entry, nil).Once()

		got, err := svc.Refund(ctx, 1, 100, orderID)
		require.NoError(t, err)
		assert.Equal(t, int64(100), got.Amount)
		assert.Equal(t, domain.EntryTypeRefund, got.Type)
	})

	t.Run("Invalid amount", func(t *testing.T) {
		_, err := svc.Refund(ctx, 1, 0, 5)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestBonusService_EvaluatePromotion(t *testing.T) {
	ctx := context.Background()

	t.Run("Not enough spent", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockLedgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewBonusService(domain.DefaultTierTable(), mockUserRepo, mockLedgerRepo)

		user := &domain.User{ID: 1, BonusLevel: domain.LevelStandard, TotalSpent: 999}
		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(1)).Return(user, nil).Once()

		entries, err := svc.EvaluatePromotion(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Single promotion", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockLedgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewBonusService(domain.DefaultTierTable(), mockUserRepo, mockLedgerRepo)

		entry := &domain.LedgerEntry{ID: 1, Amount: 100, Type: domain.EntryTypeLevelUpBonus}
		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(1)).
			Return(&domain.User{ID: 1, BonusLevel: domain.LevelStandard, TotalSpent: 1500}, nil).Once()
		mockLedgerRepo.EXPECT().
			Promote(mock.Anything, int64(1), domain.LevelStandard, domain.LevelSilver, int64(100), "Level up bonus for reaching SILVER level").
			Return(entry, nil).Once()
		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(1)).
			Return(&domain.User{ID: 1, BonusLevel: domain.LevelSilver, TotalSpent: 1500}, nil).Once()

		entries, err := svc.EvaluatePromotion(ctx, 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(100), entries[0].Amount)
	})

	t.Run("Single purchase crosses two thresholds", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockLedgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewBonusService(domain.DefaultTierTable(), mockUserRepo, mockLedgerRepo)

		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(1)).
			Return(&domain.User{ID: 1, BonusLevel: domain.LevelStandard, TotalSpent: 6000}, nil).Once()
		mockLedgerRepo.EXPECT().
			Promote(mock.Anything, int64(1), domain.LevelStandard, domain.LevelSilver, int64(100), "Level up bonus for reaching SILVER level").
			Return(&domain.LedgerEntry{ID: 1, Amount: 100}, nil).Once()
		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(1)).
			Return(&domain.User{ID: 1, BonusLevel: domain.LevelSilver, TotalSpent: 6000}, nil).Once()
		mockLedgerRepo.EXPECT().
			Promote(mock.Anything, int64(1), domain.LevelSilver, domain.LevelGold, int64(500), "Level up bonus for reaching GOLD level").
			Return(&domain.LedgerEntry{ID: 2, Amount: 500}, nil).Once()
		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(1)).
			Return(&domain.User{ID: 1, BonusLevel: domain.LevelGold, TotalSpent: 6000}, nil).Once()

		entries, err := svc.EvaluatePromotion(ctx, 1)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, int64(100), entries[0].Amount)
		assert.Equal(t, int64(500), entries[1].Amount)
	})

	t.Run("Top level stays put", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockLedgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewBonusService(domain.DefaultTierTable(), mockUserRepo, mockLedgerRepo)

		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(1)).
			Return(&domain.User{ID: 1, BonusLevel: domain.LevelPlatinum, TotalSpent: 100000}, nil).Once()

		entries, err := svc.EvaluatePromotion(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Concurrent level change retries", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockLedgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewBonusService(domain.DefaultTierTable(), mockUserRepo, mockLedgerRepo)

		// Первая попытка проигрывает гонку, после перечитывания уровень
		// уже поднят параллельной операцией
		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(1)).
			Return(&domain.User{ID: 1, BonusLevel: domain.LevelStandard, TotalSpent: 1500}, nil).Once()
		mockLedgerRepo.EXPECT().
			Promote(mock.Anything, int64(1), domain.LevelStandard, domain.LevelSilver, int64(100), mock.Anything).
			Return(nil, domain.ErrLevelChanged).Once()
		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(1)).
			Return(&domain.User{ID: 1, BonusLevel: domain.LevelSilver, TotalSpent: 1500}, nil).Once()

		entries, err := svc.EvaluatePromotion(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("User not found", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockLedgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewBonusService(domain.DefaultTierTable(), mockUserRepo, mockLedgerRepo)

		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(42)).
			Return(nil, domain.ErrUserNotFound).Once()

		_, err := svc.EvaluatePromotion(ctx, 42)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestBonusService_GetSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("Success with progress", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockLedgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewBonusService(domain.DefaultTierTable(), mockUserRepo, mockLedgerRepo)

		user := &domain.User{ID: 1, BonusBalance: 250, BonusLevel: domain.LevelSilver, TotalSpent: 3000}
		entries := []*domain.LedgerEntry{
			{ID: 2, Amount: -100, Type: domain.EntryTypeSpentOnPurchase, CreatedAt: time.Now()},
			{ID: 1, Amount: 350, Type: domain.EntryTypeEarnedFromPurchase, CreatedAt: time.Now().Add(-time.Hour)},
		}

		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(1)).Return(user, nil).Once()
		mockLedgerRepo.EXPECT().ListRecentEntries(mock.Anything, int64(1), 10).Return(entries, nil).Once()

		summary, err := svc.GetSummary(ctx, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(250), summary.Balance)
		assert.Equal(t, domain.LevelSilver, summary.Level)
		require.NotNil(t, summary.Progress)
		assert.Equal(t, domain.LevelGold, summary.Progress.NextLevel)
		assert.Equal(t, int64(5000), summary.Progress.RequiredSpent)
		assert.Equal(t, int64(2000), summary.Progress.Remaining)
		assert.Len(t, summary.RecentHistory, 2)
	})

	t.Run("Top level has no progress", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockLedgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewBonusService(domain.DefaultTierTable(), mockUserRepo, mockLedgerRepo)

		user := &domain.User{ID: 1, BonusBalance: 5000, BonusLevel: domain.LevelPlatinum, TotalSpent: 50000}
		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(1)).Return(user, nil).Once()
		mockLedgerRepo.EXPECT().ListRecentEntries(mock.Anything, int64(1), 10).Return(nil, nil).Once()

		summary, err := svc.GetSummary(ctx, 1, 0)
		require.NoError(t, err)
		assert.Nil(t, summary.Progress)
		assert.NotNil(t, summary.RecentHistory)
		assert.Empty(t, summary.RecentHistory)
	})

	t.Run("User not found", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockLedgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewBonusService(domain.DefaultTierTable(), mockUserRepo, mockLedgerRepo)

		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(42)).Return(nil, domain.ErrUserNotFound).Once()

		_, err := svc.GetSummary(ctx, 42, 0)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("History error", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		mockLedgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewBonusService(domain.DefaultTierTable(), mockUserRepo, mockLedgerRepo)

		user := &domain.User{ID: 1, BonusLevel: domain.LevelStandard}
		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(1)).Return(user, nil).Once()
		mockLedgerRepo.EXPECT().ListRecentEntries(mock.Anything, int64(1), 10).Return(nil, errors.New("db error")).Once()

		_, err := svc.GetSummary(ctx, 1, 0)
		assert.Error(t, err)
	})
}
