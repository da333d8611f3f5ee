package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/packpal/packpal-backend-go/internal/domain/finance"
	"github.com/packpal/packpal-backend-go/internal/domain/transaction"
	"github.com/packpal/packpal-backend-go/internal/pkg/database"
)

type transactionsRepository struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) transaction.TransactionRepository {
	return &transactionsRepository{db: db}
}

const saleColumns = `id, customer, product_id, product_name, qty, unit_price, discount_per_unit, total, amount, method, status, created_at, updated_at`

func scanSale(row pgx.Row) (transaction.Transaction, error) {
	var t transaction.Transaction
	err := row.Scan(
		&t.ID, &t.Customer, &t.ProductID, &t.ProductName, &t.Qty, &t.UnitPrice,
		&t.DiscountPerUnit, &t.Total, &t.Amount, &t.Method, &t.Status,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func collectSales(rows pgx.Rows) ([]transaction.Transaction, error) {
	var sales []transaction.Transaction
	for rows.Next() {
		t, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		sales = append(sales, t)
	}
	return sales, rows.Err()
}

func (r *transactionsRepository) Create(ctx context.Context, t transaction.Transaction) (transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO transactions (id, customer, product_id, product_name, qty, unit_price, discount_per_unit, total, amount, method, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + saleColumns

	created, err := scanSale(q.QueryRow(ctx, query,
		uuid.NewString(), t.Customer, t.ProductID, t.ProductName, t.Qty, t.UnitPrice,
		t.DiscountPerUnit, t.Total, t.Amount, t.Method, t.Status,
	))
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	return created, nil
}

func (r *transactionsRepository) GetByID(ctx context.Context, id string) (transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanSale(q.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM transactions WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return transaction.Transaction{}, transaction.ErrTransactionNotFound
		}
		return transaction.Transaction{}, fmt.Errorf("failed to get transaction: %w", err)
	}
	return t, nil
}

func (r *transactionsRepository) List(ctx context.Context, status string) ([]transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + saleColumns + ` FROM transactions`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE LOWER(status) = LOWER($1)`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	return collectSales(rows)
}

func (r *transactionsRepository) Update(ctx context.Context, req transaction.UpdateTransactionRequest) (transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE transactions SET
			status = COALESCE($2, status),
			method = COALESCE($3, method),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + saleColumns

	t, err := scanSale(q.QueryRow(ctx, query, req.ID, req.Status, req.Method))
	if err != nil {
		if err == pgx.ErrNoRows {
			return transaction.Transaction{}, transaction.ErrTransactionNotFound
		}
		return transaction.Transaction{}, fmt.Errorf("failed to update transaction: %w", err)
	}
	return t, nil
}

func (r *transactionsRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return transaction.ErrTransactionNotFound
	}
	return nil
}

func (r *transactionsRepository) ListInWindow(ctx context.Context, window transaction.RevenueWindow) ([]transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + saleColumns + ` FROM transactions WHERE 1=1`
	args := []interface{}{}
	if !window.From.IsZero() {
		args = append(args, window.From)
		query += fmt.Sprintf(` AND created_at >= $%d`, len(args))
	}
	if !window.To.IsZero() {
		args = append(args, window.To)
		query += fmt.Sprintf(` AND created_at < $%d`, len(args))
	}
	query += ` ORDER BY created_at`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in window: %w", err)
	}
	defer rows.Close()

	return collectSales(rows)
}

// MonthlyRevenue groups per calendar month in Go rather than SQL so the value
// waterfall (total, then qty x unit net, then legacy amount) stays in one
// place, on the entity.
func (r *transactionsRepository) MonthlyRevenue(ctx context.Context, since transaction.RevenueWindow) ([]finance.MonthBucket, error) {
	sales, err := r.ListInWindow(ctx, since)
	if err != nil {
		return nil, err
	}

	type key struct {
		year  int
		month time.Month
	}
	index := map[key]*finance.MonthBucket{}
	order := []key{}
	for _, t := range sales {
		if t.IsRefund() {
			continue
		}
		k := key{t.CreatedAt.Year(), t.CreatedAt.Month()}
		b, ok := index[k]
		if !ok {
			b = &finance.MonthBucket{Year: k.year, Month: k.month}
			index[k] = b
			order = append(order, k)
		}
		b.Total = b.Total.Add(t.Value())
		b.Count++
	}

	buckets := make([]finance.MonthBucket, 0, len(order))
	for _, k := range order {
		buckets = append(buckets, *index[k])
	}
	return buckets, nil
}
