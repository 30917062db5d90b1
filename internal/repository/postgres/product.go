package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/muffme/bakery-backend/internal/domain"
)

const productColumns = `id, name, description, ingredients, picture_url, price, bonus_percent, created_at`

// ProductRepository реализует репозиторий каталога
type ProductRepository struct {
	db DBTX
}

// NewProductRepository создает новый ProductRepository
func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	p := &domain.Product{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Ingredients,
		&p.PictureURL, &p.Price, &p.BonusPercent, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListProducts возвращает весь каталог
func (r *ProductRepository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating products: %w", err)
	}

	return products, nil
}

// GetProductByID получает продукт по ID
func (r *ProductRepository) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`,
		id,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("repository: failed to get product %d: %w", id, err)
	}

	return p, nil
}

// CreateProduct создает новый продукт
func (r *ProductRepository) CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx,
		`INSERT INTO products (name, description, ingredients, picture_url, price, bonus_percent)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+productColumns,
		input.Name, input.Description, input.Ingredients, input.PictureURL, input.Price, input.BonusPercent,
	))

	if err != nil {
		return nil, fmt.Errorf("repository: failed to create product %q: %w", input.Name, err)
	}

	return p, nil
}

// UpdateProduct обновляет продукт целиком
func (r *ProductRepository) UpdateProduct(ctx context.Context, id int64, input domain.ProductInput) (*domain.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx,
		`UPDATE products
		 SET name = $2, description = $3, ingredients = $4, picture_url = $5, price = $6, bonus_percent = $7
		 WHERE id = $1
		 RETURNING `+productColumns,
		id, input.Name, input.Description, input.Ingredients, input.PictureURL, input.Price, input.BonusPercent,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("repository: failed to update product %d: %w", id, err)
	}

	return p, nil
}

// DeleteProduct удаляет продукт из каталога
func (r *ProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete product %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
