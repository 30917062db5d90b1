package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/muffme/bakery-backend/internal/domain"
)

// OrderRepository определяет методы работы с заказами
type OrderRepository interface {
	CreateOrder(ctx context.Context, userID, totalAmount, usedBonus, totalBonus int64, items []domain.OrderItemInput) (*domain.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*domain.Order, error)
	GetOrdersByUserID(ctx context.Context, userID int64) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, from, to domain.OrderStatus) error
	DeleteOrder(ctx context.Context, id int64) error
}

// OrderService реализует оформление заказов из корзины. Списание баллов
// при оплате и возврат при отмене проходят через движок лояльности;
// начисление заработанных баллов выполняет воркер расчета после
// завершения заказа.
type OrderService struct {
	orderRepo OrderRepository
	cartRepo  CartRepository
	bonus     domain.BonusService
}

// NewOrderService создает новый OrderService
func NewOrderService(orderRepo OrderRepository, cartRepo CartRepository, bonus domain.BonusService) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		bonus:     bonus,
	}
}

// Create оформляет заказ из текущей корзины. bonusAmount списывается с
// бонусного счета и уменьшает сумму к оплате, не ниже нуля. При нехватке
// баллов заказ не создается, корзина не очищается.
func (s *OrderService) Create(ctx context.Context, userID, bonusAmount int64) (*domain.Order, error) {
	if bonusAmount < 0 {
		return nil, domain.ErrInvalidAmount
	}

	cart, err := s.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get cart for user %d: %w", userID, err)
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrCartEmpty
	}

	finalAmount := cart.TotalAmount - bonusAmount
	if finalAmount < 0 {
		finalAmount = 0
	}

	items := make([]domain.OrderItemInput, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, domain.OrderItemInput{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			TotalPrice:  item.TotalPrice,
			EarnedBonus: item.EarnedBonus,
		})
	}

	order, err := s.orderRepo.CreateOrder(ctx, userID, finalAmount, bonusAmount, cart.TotalBonus, items)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to create order for user %d: %w", userID, err)
	}

	if bonusAmount > 0 {
		if _, err := s.bonus.Debit(ctx, userID, bonusAmount, order.ID); err != nil {
			// Заказ без оплаченного списания не оставляем
			if delErr := s.orderRepo.DeleteOrder(ctx, order.ID); delErr != nil {
				return nil, fmt.Errorf("order service: failed to roll back order %d after debit error %v: %w", order.ID, err, delErr)
			}
			if errors.Is(err, domain.ErrInsufficientBalance) {
				return nil, err
			}
			return nil, fmt.Errorf("order service: failed to debit bonus for order %d: %w", order.ID, err)
		}
	}

	if err := s.cartRepo.ClearCart(ctx, userID); err != nil {
		return nil, fmt.Errorf("order service: failed to clear cart for user %d: %w", userID, err)
	}

	return order, nil
}

// GetOrders возвращает заказы пользователя, новые первыми
func (s *OrderService) GetOrders(ctx context.Context, userID int64) ([]*domain.Order, error) {
	orders, err := s.orderRepo.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get orders for user %d: %w", userID, err)
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	return orders, nil
}

// GetOrder возвращает заказ пользователя. Чужой заказ неотличим от
// несуществующего.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	order, err := s.getOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Cancel отменяет заказ в статусе PENDING и возвращает списанные баллы
func (s *OrderService) Cancel(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	order, err := s.getOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, domain.OrderStatusPending, domain.OrderStatusCancelled); err != nil {
		if errors.Is(err, domain.ErrOrderStateConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to cancel order %d: %w", orderID, err)
	}

	if order.UsedBonus > 0 {
		if _, err := s.bonus.Refund(ctx, userID, order.UsedBonus, orderID); err != nil {
			return nil, fmt.Errorf("order service: failed to refund bonus for order %d: %w", orderID, err)
		}
	}

	order, err = s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get order %d: %w", orderID, err)
	}
	return order, nil
}

// Complete переводит заказ в COMPLETED. Начисление баллов и пересчет
// уровня выполнит воркер расчета.
func (s *OrderService) Complete(ctx context.Context, orderID int64) error {
	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, domain.OrderStatusPending, domain.OrderStatusCompleted); err != nil {
		if errors.Is(err, domain.ErrOrderStateConflict) {
			return err
		}
		return fmt.Errorf("order service: failed to complete order %d: %w", orderID, err)
	}
	return nil
}

func (s *OrderService) getOwnedOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to get order %d: %w", orderID, err)
	}
	if order.UserID != userID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}
