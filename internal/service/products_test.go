package service

import (
	"context"
	"errors"
	"testing"

	"github.com/muffme/bakery-backend/internal/domain"
	domainmocks "github.com/muffme/bakery-backend/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockProductRepo := domainmocks.NewProductRepositoryMock(t)
		svc := NewProductService(mockProductRepo)

		products := []*domain.Product{
			{ID: 10, Name: "Маффин черничный", Price: 150, BonusPercent: 5},
			{ID: 11, Name: "Капкейк", Price: 200, BonusPercent: 3},
		}
		mockProductRepo.EXPECT().ListProducts(mock.Anything).Return(products, nil).Once()

		got, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Empty catalog", func(t *testing.T) {
		mockProductRepo := domainmocks.NewProductRepositoryMock(t)
		svc := NewProductService(mockProductRepo)

		mockProductRepo.EXPECT().ListProducts(mock.Anything).Return(nil, nil).Once()

		got, err := svc.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Database error", func(t *testing.T) {
		mockProductRepo := domainmocks.NewProductRepositoryMock(t)
		svc := NewProductService(mockProductRepo)

		mockProductRepo.EXPECT().ListProducts(mock.Anything).Return(nil, errors.New("db error")).Once()

		_, err := svc.List(ctx)
		assert.Error(t, err)
	})
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockProductRepo := domainmocks.NewProductRepositoryMock(t)
		svc := NewProductService(mockProductRepo)

		input := domain.ProductInput{Name: "Маффин черничный", Price: 150, BonusPercent: 5}
		product := &domain.Product{ID: 10, Name: "Маффин черничный", Price: 150, BonusPercent: 5}
		mockProductRepo.EXPECT().CreateProduct(mock.Anything, input).Return(product, nil).Once()

		got, err := svc.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, int64(10), got.ID)
	})

	t.Run("Empty name", func(t *testing.T) {
		svc := NewProductService(nil)

		_, err := svc.Create(ctx, domain.ProductInput{Price: 150})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Negative price", func(t *testing.T) {
		svc := NewProductService(nil)

		_, err := svc.Create(ctx, domain.ProductInput{Name: "Маффин", Price: -1})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("Bonus percent out of range", func(t *testing.T) {
		svc := NewProductService(nil)

		_, err := svc.Create(ctx, domain.ProductInput{Name: "Маффин", Price: 150, BonusPercent: 101})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockProductRepo := domainmocks.NewProductRepositoryMock(t)
		svc := NewProductService(mockProductRepo)

		input := domain.ProductInput{Name: "Маффин шоколадный", Price: 180, BonusPercent: 5}
		product := &domain.Product{ID: 10, Name: "Маффин шоколадный", Price: 180, BonusPercent: 5}
		mockProductRepo.EXPECT().UpdateProduct(mock.Anything, int64(10), input).Return(product, nil).Once()

		got, err := svc.Update(ctx, 10, input)
		require.NoError(t, err)
		assert.Equal(t, "Маффин шоколадный", got.Name)
	})

	t.Run("Not found", func(t *testing.T) {
		mockProductRepo := domainmocks.NewProductRepositoryMock(t)
		svc := NewProductService(mockProductRepo)

		input := domain.ProductInput{Name: "Маффин", Price: 150}
		mockProductRepo.EXPECT().UpdateProduct(mock.Anything, int64(99), input).
			Return(nil, domain.ErrProductNotFound).Once()

		_, err := svc.Update(ctx, 99, input)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockProductRepo := domainmocks.NewProductRepositoryMock(t)
		svc := NewProductService(mockProductRepo)

		mockProductRepo.EXPECT().DeleteProduct(mock.Anything, int64(10)).Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, 10))
	})

	t.Run("Not found", func(t *testing.T) {
		mockProductRepo := domainmocks.NewProductRepositoryMock(t)
		svc := NewProductService(mockProductRepo)

		mockProductRepo.EXPECT().DeleteProduct(mock.Anything, int64(99)).Return(domain.ErrProductNotFound).Once()

		assert.ErrorIs(t, svc.Delete(ctx, 99), domain.ErrProductNotFound)
	})
}
