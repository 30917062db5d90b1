package postgres

import (
	"context"
	"fmt"

	"github.com/muffme/bakery-backend/internal/domain"
)

// StatsRepository реализует агрегатные запросы для админ-панели
type StatsRepository struct {
	db DBTX
}

// NewStatsRepository создает новый StatsRepository
func NewStatsRepository(db DBTX) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetStats возвращает сводную статистику
func (r *StatsRepository) GetStats(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{}

	err := r.db.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = 'COMPLETED'),
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status = 'COMPLETED')`,
	).Scan(&stats.TotalUsers, &stats.TotalOrders, &stats.CompletedOrders, &stats.TotalRevenue)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get stats: %w", err)
	}

	return stats, nil
}

// GetPopularProducts возвращает продукты с наибольшим числом продаж
func (r *StatsRepository) GetPopularProducts(ctx context.Context, limit int) ([]*domain.PopularProduct, error) {
	rows, err := r.db.Query(ctx,
		`SELECT oi.product_id, oi.product_name, SUM(oi.quantity) AS total_ordered
		 FROM order_items oi
		 JOIN orders o ON o.id = oi.order_id
		 WHERE o.status <> 'CANCELLED'
		 GROUP BY oi.product_id, oi.product_name
		 ORDER BY total_ordered DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get popular products: %w", err)
	}
	defer rows.Close()

	var products []*domain.PopularProduct
	for rows.Next() {
		p := &domain.PopularProduct{}
		if err := rows.Scan(&p.ProductID, &p.Name, &p.TotalOrdered); err != nil {
			return nil, fmt.Errorf("repository: failed to scan popular product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating popular products: %w", err)
	}

	return products, nil
}

// GetPeriodStats возвращает число заказов и выручку за последние N дней
func (r *StatsRepository) GetPeriodStats(ctx context.Context, days int) (*domain.PeriodStats, error) {
	stats := &domain.PeriodStats{Days: days}

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		 FROM orders
		 WHERE status = 'COMPLETED' AND created_at >= now() - make_interval(days => $1)`,
		days,
	).Scan(&stats.Orders, &stats.Revenue)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get period stats for %d days: %w", days, err)
	}

	return stats, nil
}
