package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/muffme/bakery-backend/internal/domain"
)

const orderColumns = `id, user_id, total_amount, used_bonus, total_bonus, status, settled_at, created_at, updated_at`

// OrderRepository реализует репозиторий заказов
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	o := &domain.Order{}
	err := row.Scan(
		&o.ID, &o.UserID, &o.TotalAmount, &o.UsedBonus, &o.TotalBonus,
		&o.Status, &o.SettledAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// CreateOrder создает заказ вместе с позициями в одной транзакции
func (r *OrderRepository) CreateOrder(ctx context.Context, userID, totalAmount, usedBonus, totalBonus int64, items []domain.OrderItemInput) (*domain.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin order transaction for user %d: %w", userID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	order := &domain.Order{
		UserID:      userID,
		TotalAmount: totalAmount,
		UsedBonus:   usedBonus,
		TotalBonus:  totalBonus,
		Status:      domain.OrderStatusPending,
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, total_amount, used_bonus, total_bonus, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		userID, totalAmount, usedBonus, totalBonus, order.Status,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to create order for user %d: %w", userID, err)
	}

	for _, item := range items {
		orderItem := &domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			TotalPrice:  item.TotalPrice,
			EarnedBonus: item.EarnedBonus,
		}
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, product_name, quantity, price, total_price, earned_bonus)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id`,
			order.ID, item.ProductID, item.ProductName, item.Quantity, item.Price, item.TotalPrice, item.EarnedBonus,
		).Scan(&orderItem.ID)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to insert item for order %d: %w", order.ID, err)
		}
		order.Items = append(order.Items, orderItem)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit order for user %d: %w", userID, err)
	}

	return order, nil
}

// GetOrderByID получает заказ с позициями
func (r *OrderRepository) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %d: %w", id, err)
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// GetOrdersByUserID получает заказы пользователя, новые первыми
func (r *OrderRepository) GetOrdersByUserID(ctx context.Context, userID int64) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get orders for user %d: %w", userID, err)
	}
	defer rows.Close()

	var orders []*domain.Order
	byID := make(map[int64]*domain.Order)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
		byID[order.ID] = order
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := r.db.Query(ctx,
		`SELECT oi.id, oi.order_id, oi.product_id, oi.product_name, oi.quantity, oi.price, oi.total_price, oi.earned_bonus
		 FROM order_items oi
		 JOIN orders o ON o.id = oi.order_id
		 WHERE o.user_id = $1
		 ORDER BY oi.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get order items for user %d: %w", userID, err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		item := &domain.OrderItem{}
		var orderID int64
		err := itemRows.Scan(&item.ID, &orderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.Price, &item.TotalPrice, &item.EarnedBonus)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order item: %w", err)
		}
		if order, ok := byID[orderID]; ok {
			order.Items = append(order.Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating order items: %w", err)
	}

	return orders, nil
}

// UpdateOrderStatus переводит заказ из статуса from в to.
// Условие по from гарантирует, что переход выполняется не более одного раза.
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id int64, from, to domain.OrderStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`,
		id, from, to,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update status of order %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderStateConflict
	}
	return nil
}

// DeleteOrder удаляет заказ вместе с позициями
func (r *OrderRepository) DeleteOrder(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete order %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// GetUnsettledOrders возвращает завершенные, но еще не рассчитанные заказы
func (r *OrderRepository) GetUnsettledOrders(ctx context.Context, limit int) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+`
		 FROM orders
		 WHERE status = $1 AND settled_at IS NULL
		 ORDER BY created_at
		 LIMIT $2`,
		domain.OrderStatusCompleted, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get unsettled orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan unsettled order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating unsettled orders: %w", err)
	}

	return orders, nil
}

// SettleOrder ставит отметку расчета и прибавляет сумму заказа к накопленным
// тратам пользователя в одной транзакции. Условие по settled_at гарантирует,
// что отметка и прибавка применяются не более одного раза.
func (r *OrderRepository) SettleOrder(ctx context.Context, orderID, userID, amount int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin settle transaction for order %d: %w", orderID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Exec(ctx,
		`UPDATE orders SET settled_at = now(), updated_at = now() WHERE id = $1 AND settled_at IS NULL`,
		orderID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to mark order %d settled: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderAlreadySettled
	}

	if amount > 0 {
		_, err = tx.Exec(ctx,
			`UPDATE users SET total_spent = total_spent + $2, updated_at = now() WHERE id = $1`,
			userID, amount,
		)
		if err != nil {
			return fmt.Errorf("repository: failed to add total spent for user %d: %w", userID, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit settle of order %d: %w", orderID, err)
	}
	return nil
}

// loadItems загружает позиции одного заказа
func (r *OrderRepository) loadItems(ctx context.Context, orderID int64) ([]*domain.OrderItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, product_name, quantity, price, total_price, earned_bonus
		 FROM order_items
		 WHERE order_id = $1
		 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to load items for order %d: %w", orderID, err)
	}
	defer rows.Close()

	var items []*domain.OrderItem
	for rows.Next() {
		item := &domain.OrderItem{}
		err := rows.Scan(&item.ID, &item.ProductID, &item.ProductName, &item.Quantity, &item.Price, &item.TotalPrice, &item.EarnedBonus)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating order items: %w", err)
	}

	return items, nil
}
