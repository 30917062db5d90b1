package postgres

import (
	"context"
	"fmt"

	"github.com/muffme/bakery-backend/internal/domain"
)

// CartRepository реализует репозиторий корзин.
// Корзина создается лениво при первом обращении.
type CartRepository struct {
	db DBTX
}

// NewCartRepository создает новый CartRepository
func NewCartRepository(db DBTX) *CartRepository {
	return &CartRepository{db: db}
}

// GetCart возвращает корзину пользователя, создавая ее при необходимости
func (r *CartRepository) GetCart(ctx context.Context, userID int64) (*domain.Cart, error) {
	cartID, err := r.ensureCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return r.loadCart(ctx, userID, cartID)
}

// AddItem добавляет позицию в корзину. Если продукт уже есть,
// количество и суммы накапливаются.
func (r *CartRepository) AddItem(ctx context.Context, userID int64, item domain.CartItemInput) (*domain.Cart, error) {
	cartID, err := r.ensureCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO cart_items (cart_id, product_id, quantity, price, total_price, earned_bonus)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (cart_id, product_id) DO UPDATE
		 SET quantity = cart_items.quantity + EXCLUDED.quantity,
		     total_price = cart_items.total_price + EXCLUDED.total_price,
		     earned_bonus = cart_items.earned_bonus + EXCLUDED.earned_bonus`,
		cartID, item.ProductID, item.Quantity, item.Price, item.TotalPrice, item.EarnedBonus,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to add product %d to cart of user %d: %w", item.ProductID, userID, err)
	}

	return r.loadCart(ctx, userID, cartID)
}

// UpdateItemQuantity выставляет количество позиции и пересчитанные суммы
func (r *CartRepository) UpdateItemQuantity(ctx context.Context, userID, productID int64, quantity int, totalPrice, earnedBonus int64) (*domain.Cart, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE cart_items
		 SET quantity = $3, total_price = $4, earned_bonus = $5
		 FROM carts
		 WHERE cart_items.cart_id = carts.id AND carts.user_id = $1 AND cart_items.product_id = $2`,
		userID, productID, quantity, totalPrice, earnedBonus,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to update cart item %d for user %d: %w", productID, userID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrCartItemNotFound
	}

	return r.GetCart(ctx, userID)
}

// RemoveItem удаляет позицию из корзины
func (r *CartRepository) RemoveItem(ctx context.Context, userID, productID int64) (*domain.Cart, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM cart_items
		 USING carts
		 WHERE cart_items.cart_id = carts.id AND carts.user_id = $1 AND cart_items.product_id = $2`,
		userID, productID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to remove cart item %d for user %d: %w", productID, userID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrCartItemNotFound
	}

	return r.GetCart(ctx, userID)
}

// ClearCart удаляет все позиции корзины
func (r *CartRepository) ClearCart(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM cart_items
		 USING carts
		 WHERE cart_items.cart_id = carts.id AND carts.user_id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to clear cart for user %d: %w", userID, err)
	}
	return nil
}

// ensureCart возвращает ID корзины пользователя, создавая запись при необходимости
func (r *CartRepository) ensureCart(ctx context.Context, userID int64) (int64, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO carts (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to ensure cart for user %d: %w", userID, err)
	}

	var cartID int64
	err = r.db.QueryRow(ctx, `SELECT id FROM carts WHERE user_id = $1`, userID).Scan(&cartID)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to get cart for user %d: %w", userID, err)
	}

	return cartID, nil
}

// loadCart загружает корзину с позициями и считает итоги
func (r *CartRepository) loadCart(ctx context.Context, userID, cartID int64) (*domain.Cart, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ci.id, ci.product_id, p.name, ci.quantity, ci.price, ci.total_price, ci.earned_bonus
		 FROM cart_items ci
		 JOIN products p ON p.id = ci.product_id
		 WHERE ci.cart_id = $1
		 ORDER BY ci.id`,
		cartID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to load cart items for user %d: %w", userID, err)
	}
	defer rows.Close()

	cart := &domain.Cart{ID: cartID, UserID: userID, Items: []*domain.CartItem{}}
	for rows.Next() {
		item := &domain.CartItem{}
		err := rows.Scan(&item.ID, &item.ProductID, &item.ProductName, &item.Quantity, &item.Price, &item.TotalPrice, &item.EarnedBonus)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan cart item: %w", err)
		}
		cart.Items = append(cart.Items, item)
		cart.TotalAmount += item.TotalPrice
		cart.TotalBonus += item.EarnedBonus
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating cart items: %w", err)
	}

	return cart, nil
}
