package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/muffme/bakery-backend/internal/domain"
)

// CartRepository определяет методы работы с корзиной
type CartRepository interface {
	GetCart(ctx context.Context, userID int64) (*domain.Cart, error)
	AddItem(ctx context.Context, userID int64, item domain.CartItemInput) (*domain.Cart, error)
	UpdateItemQuantity(ctx context.Context, userID, productID int64, quantity int, totalPrice, earnedBonus int64) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, productID int64) (*domain.Cart, error)
	ClearCart(ctx context.Context, userID int64) error
}

// CartService реализует операции над корзиной. Цена и ожидаемое начисление
// баллов фиксируются в позиции в момент добавления, по текущему уровню
// пользователя.
type CartService struct {
	cartRepo    CartRepository
	productRepo ProductRepository
	userRepo    BonusUserRepository
	bonus       domain.BonusService
}

// NewCartService создает новый CartService
func NewCartService(cartRepo CartRepository, productRepo ProductRepository, userRepo BonusUserRepository, bonus domain.BonusService) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		bonus:       bonus,
	}
}

// GetCart возвращает корзину пользователя, пустую для нового пользователя
func (s *CartService) GetCart(ctx context.Context, userID int64) (*domain.Cart, error) {
	cart, err := s.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cart service: failed to get cart for user %d: %w", userID, err)
	}
	return cart, nil
}

// AddItem добавляет продукт в корзину. Повторное добавление того же
// продукта увеличивает количество.
func (s *CartService) AddItem(ctx context.Context, userID, productID int64, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	input, err := s.buildItem(ctx, userID, productID, quantity)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.AddItem(ctx, userID, *input)
	if err != nil {
		return nil, fmt.Errorf("cart service: failed to add product %d to cart: %w", productID, err)
	}
	return cart, nil
}

// UpdateItem выставляет количество позиции. Стоимость и ожидаемое
// начисление пересчитываются по текущей цене продукта.
func (s *CartService) UpdateItem(ctx context.Context, userID, productID int64, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	input, err := s.buildItem(ctx, userID, productID, quantity)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.UpdateItemQuantity(ctx, userID, productID, quantity, input.TotalPrice, input.EarnedBonus)
	if err != nil {
		if errors.Is(err, domain.ErrCartItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("cart service: failed to update product %d in cart: %w", productID, err)
	}
	return cart, nil
}

// RemoveItem убирает позицию из корзины
func (s *CartService) RemoveItem(ctx context.Context, userID, productID int64) (*domain.Cart, error) {
	cart, err := s.cartRepo.RemoveItem(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, domain.ErrCartItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("cart service: failed to remove product %d from cart: %w", productID, err)
	}
	return cart, nil
}

// Clear опустошает корзину пользователя
func (s *CartService) Clear(ctx context.Context, userID int64) error {
	if err := s.cartRepo.ClearCart(ctx, userID); err != nil {
		return fmt.Errorf("cart service: failed to clear cart for user %d: %w", userID, err)
	}
	return nil
}

func (s *CartService) buildItem(ctx context.Context, userID, productID int64, quantity int) (*domain.CartItemInput, error) {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("cart service: failed to get product %d: %w", productID, err)
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("cart service: failed to get user %d: %w", userID, err)
	}

	totalPrice := product.Price * int64(quantity)
	earnedBonus, err := s.bonus.ComputeAccrual(user.BonusLevel, totalPrice, product.BonusPercent)
	if err != nil {
		return nil, fmt.Errorf("cart service: failed to compute accrual: %w", err)
	}

	return &domain.CartItemInput{
		ProductID:   productID,
		Quantity:    quantity,
		Price:       product.Price,
		TotalPrice:  totalPrice,
		EarnedBonus: earnedBonus,
	}, nil
}
