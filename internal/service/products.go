package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/muffme/bakery-backend/internal/domain"
)

// ProductRepository определяет методы работы с каталогом
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, input domain.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// ProductService реализует операции над каталогом продукции
type ProductService struct {
	productRepo ProductRepository
}

// NewProductService создает новый ProductService
func NewProductService(productRepo ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List возвращает все продукты каталога
func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product service: failed to list products: %w", err)
	}
	if products == nil {
		products = []*domain.Product{}
	}
	return products, nil
}

// Get возвращает продукт по идентификатору
func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("product service: failed to get product %d: %w", id, err)
	}
	return product, nil
}

// Create добавляет продукт в каталог
func (s *ProductService) Create(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := s.productRepo.CreateProduct(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("product service: failed to create product: %w", err)
	}
	return product, nil
}

// Update изменяет продукт каталога
func (s *ProductService) Update(ctx context.Context, id int64, input domain.ProductInput) (*domain.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := s.productRepo.UpdateProduct(ctx, id, input)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("product service: failed to update product %d: %w", id, err)
	}
	return product, nil
}

// Delete удаляет продукт из каталога
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return err
		}
		return fmt.Errorf("product service: failed to delete product %d: %w", id, err)
	}
	return nil
}

func validateProductInput(input domain.ProductInput) error {
	if input.Name == "" {
		return domain.ErrInvalidInput
	}
	if input.Price < 0 {
		return domain.ErrInvalidAmount
	}
	if input.BonusPercent < 0 || input.BonusPercent > 100 {
		return domain.ErrInvalidInput
	}
	return nil
}
