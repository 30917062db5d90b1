package service

import (
	"context"
	"errors"
	"testing"

	"github.com/muffme/bakery-backend/internal/domain"
	domainmocks "github.com/muffme/bakery-backend/internal/domain/mocks"
	passwordmocks "github.com/muffme/bakery-backend/internal/utils/password/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminService_Login(t *testing.T) {
	ctx := context.Background()
	jwtManager := newTestJWTManager()

	t.Run("Success", func(t *testing.T) {
		mockStatsRepo := domainmocks.NewStatsRepositoryMock(t)
		mockHasher := passwordmocks.NewHasherMock(t)
		svc := NewAdminService(mockStatsRepo, mockHasher, jwtManager, "$2a$10$hash")

		mockHasher.EXPECT().Check("$2a$10$hash", "secret").Return(nil).Once()

		token, err := svc.Login(ctx, "secret")
		require.NoError(t, err)

		_, role, err := jwtManager.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, role)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockStatsRepo := domainmocks.NewStatsRepositoryMock(t)
		mockHasher := passwordmocks.NewHasherMock(t)
		svc := NewAdminService(mockStatsRepo, mockHasher, jwtManager, "$2a$10$hash")

		mockHasher.EXPECT().Check("$2a$10$hash", "wrong").Return(errors.New("password does not match")).Once()

		_, err := svc.Login(ctx, "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Login disabled without hash", func(t *testing.T) {
		mockStatsRepo := domainmocks.NewStatsRepositoryMock(t)
		mockHasher := passwordmocks.NewHasherMock(t)
		svc := NewAdminService(mockStatsRepo, mockHasher, jwtManager, "")

		_, err := svc.Login(ctx, "anything")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAdminService_GetPopularProducts(t *testing.T) {
	ctx := context.Background()
	jwtManager := newTestJWTManager()

	t.Run("Success", func(t *testing.T) {
		mockStatsRepo := domainmocks.NewStatsRepositoryMock(t)
		svc := NewAdminService(mockStatsRepo, nil, jwtManager, "")

		products := []*domain.PopularProduct{{ProductID: 10, Name: "Маффин черничный", TotalOrdered: 42}}
		mockStatsRepo.EXPECT().GetPopularProducts(mock.Anything, 5).Return(products, nil).Once()

		got, err := svc.GetPopularProducts(ctx, 5)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Zero limit uses default", func(t *testing.T) {
		mockStatsRepo := domainmocks.NewStatsRepositoryMock(t)
		svc := NewAdminService(mockStatsRepo, nil, jwtManager, "")

		mockStatsRepo.EXPECT().GetPopularProducts(mock.Anything, DefaultPopularLimit).Return(nil, nil).Once()

		got, err := svc.GetPopularProducts(ctx, 0)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Database error", func(t *testing.T) {
		mockStatsRepo := domainmocks.NewStatsRepositoryMock(t)
		svc := NewAdminService(mockStatsRepo, nil, jwtManager, "")

		mockStatsRepo.EXPECT().GetPopularProducts(mock.Anything, 5).Return(nil, errors.New("db error")).Once()

		_, err := svc.GetPopularProducts(ctx, 5)
		assert.Error(t, err)
	})
}

func TestAdminService_GetPeriodStats(t *testing.T) {
	ctx := context.Background()
	jwtManager := newTestJWTManager()

	t.Run("Success", func(t *testing.T) {
		mockStatsRepo := domainmocks.NewStatsRepositoryMock(t)
		svc := NewAdminService(mockStatsRepo, nil, jwtManager, "")

		stats := &domain.PeriodStats{}
		mockStatsRepo.EXPECT().GetPeriodStats(mock.Anything, 7).Return(stats, nil).Once()

		got, err := svc.GetPeriodStats(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("Invalid days", func(t *testing.T) {
		svc := NewAdminService(nil, nil, jwtManager, "")

		_, err := svc.GetPeriodStats(ctx, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
