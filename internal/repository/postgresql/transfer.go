package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/packpal/packpal-backend-go/internal/domain/transfer"
	"github.com/packpal/packpal-backend-go/internal/pkg/database"
)

type transferRepository struct {
	db *database.DB
}

func NewTransferRepository(db *database.DB) transfer.TransferRepository {
	return &transferRepository{db: db}
}

const transferColumns = `id, emp_id, emp_name, amount, month, status, created_at, updated_at`

func scanTransfer(row pgx.Row) (transfer.Transfer, error) {
	var t transfer.Transfer
	err := row.Scan(&t.ID, &t.EmpID, &t.EmpName, &t.Amount, &t.Month, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *transferRepository) Create(ctx context.Context, t transfer.Transfer) (transfer.Transfer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO transfers (id, emp_id, emp_name, amount, month, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + transferColumns

	created, err := scanTransfer(q.QueryRow(ctx, query,
		uuid.NewString(), t.EmpID, t.EmpName, t.Amount, t.Month, t.Status,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_transfers_emp_month") {
			return transfer.Transfer{}, transfer.ErrMonthExists
		}
		return transfer.Transfer{}, fmt.Errorf("failed to create transfer: %w", err)
	}
	return created, nil
}

func (r *transferRepository) GetByID(ctx context.Context, id string) (transfer.Transfer, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTransfer(q.QueryRow(ctx,
		`SELECT `+transferColumns+` FROM transfers WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return transfer.Transfer{}, transfer.ErrTransferNotFound
		}
		return transfer.Transfer{}, fmt.Errorf("failed to get transfer: %w", err)
	}
	return t, nil
}

func (r *transferRepository) List(ctx context.Context, month string) ([]transfer.Transfer, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + transferColumns + ` FROM transfers`
	args := []interface{}{}
	if month != "" {
		query += ` WHERE month = $1`
		args = append(args, month)
	}
	query += ` ORDER BY month DESC, emp_id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	defer rows.Close()

	var transfers []transfer.Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer: %w", err)
		}
		transfers = append(transfers, t)
	}
	return transfers, rows.Err()
}

func (r *transferRepository) ExistsForMonth(ctx context.Context, empID, month string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM transfers WHERE emp_id = $1 AND month = $2)`,
		empID, month).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check transfer existence: %w", err)
	}
	return exists, nil
}

func (r *transferRepository) MarkPaid(ctx context.Context, id string) (transfer.Transfer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE transfers SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + transferColumns

	t, err := scanTransfer(q.QueryRow(ctx, query, id, transfer.StatusPaid))
	if err != nil {
		if err == pgx.ErrNoRows {
			return transfer.Transfer{}, transfer.ErrTransferNotFound
		}
		return transfer.Transfer{}, fmt.Errorf("failed to mark transfer paid: %w", err)
	}
	return t, nil
}

func (r *transferRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM transfers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transfer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return transfer.ErrTransferNotFound
	}
	return nil
}

// SumPending feeds the finance payables summary.
func (r *transferRepository) SumPending(ctx context.Context) (decimal.Decimal, int, error) {
	q := GetQuerier(ctx, r.db)

	var total decimal.Decimal
	var count int
	err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM transfers WHERE status = $1`,
		transfer.StatusPending).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to sum pending transfers: %w", err)
	}
	return total, count, nil
}
