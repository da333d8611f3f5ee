package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/packpal/packpal-backend-go/internal/domain/product"
	"github.com/packpal/packpal-backend-go/internal/pkg/database"
)

type productRepository struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) product.ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, category, price, stock, discount_type, discount_value, rating, created_at, updated_at`

func scanProduct(row pgx.Row) (product.Product, error) {
	var p product.Product
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.DiscountType, &p.DiscountValue, &p.Rating, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *productRepository) Create(ctx context.Context, p product.Product) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO products (id, name, category, price, stock, discount_type, discount_value, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + productColumns

	created, err := scanProduct(q.QueryRow(ctx, query,
		uuid.NewString(), p.Name, p.Category, p.Price, p.Stock, p.DiscountType, p.DiscountValue, p.Rating,
	))
	if err != nil {
		return product.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	return created, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProduct(q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return product.Product{}, product.ErrProductNotFound
		}
		return product.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

func (r *productRepository) List(ctx context.Context, category string) ([]product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + productColumns + ` FROM products`
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productRepository) Update(ctx context.Context, req product.UpdateProductRequest) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	var price, discountValue *decimal.Decimal
	if req.Price != nil {
		d := decimal.NewFromFloat(req.Price.Float64())
		price = &d
	}
	if req.DiscountValue != nil {
		d := decimal.NewFromFloat(req.DiscountValue.Float64())
		discountValue = &d
	}
	var stock *int
	if req.Stock != nil {
		s := int(req.Stock.Float64())
		stock = &s
	}

	query := `
		UPDATE products SET
			name = COALESCE($2, name),
			category = COALESCE($3, category),
			price = COALESCE($4, price),
			stock = COALESCE($5, stock),
			discount_type = COALESCE($6, discount_type),
			discount_value = COALESCE($7, discount_value),
			rating = COALESCE($8, rating),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns

	p, err := scanProduct(q.QueryRow(ctx, query,
		req.ID, req.Name, req.Category, price, stock, req.DiscountType, discountValue, floatArg(req.Rating),
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return product.Product{}, product.ErrProductNotFound
		}
		return product.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	return p, nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}
	return nil
}
