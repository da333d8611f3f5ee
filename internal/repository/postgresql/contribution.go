package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/packpal/packpal-backend-go/internal/domain/contribution"
	"github.com/packpal/packpal-backend-go/internal/pkg/database"
)

type contributionRepository struct {
	db *database.DB
}

func NewContributionRepository(db *database.DB) contribution.ContributionRepository {
	return &contributionRepository{db: db}
}

const contributionColumns = `id, period, base_total, epf_emp, epf_er, etf, total, status, created_at, updated_at`

func scanContribution(row pgx.Row) (contribution.Contribution, error) {
	var c contribution.Contribution
	err := row.Scan(&c.ID, &c.Period, &c.BaseTotal, &c.EPFEmp, &c.EPFEr, &c.ETF, &c.Total, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *contributionRepository) Create(ctx context.Context, c contribution.Contribution) (contribution.Contribution, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO contributions (id, period, base_total, epf_emp, epf_er, etf, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + contributionColumns

	created, err := scanContribution(q.QueryRow(ctx, query,
		uuid.NewString(), c.Period, c.BaseTotal, c.EPFEmp, c.EPFEr, c.ETF, c.Total, c.Status,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_contributions_period") {
			return contribution.Contribution{}, contribution.ErrPeriodExists
		}
		return contribution.Contribution{}, fmt.Errorf("failed to create contribution: %w", err)
	}
	return created, nil
}

func (r *contributionRepository) GetByID(ctx context.Context, id string) (contribution.Contribution, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanContribution(q.QueryRow(ctx,
		`SELECT `+contributionColumns+` FROM contributions WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return contribution.Contribution{}, contribution.ErrContributionNotFound
		}
		return contribution.Contribution{}, fmt.Errorf("failed to get contribution: %w", err)
	}
	return c, nil
}

func (r *contributionRepository) List(ctx context.Context) ([]contribution.Contribution, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+contributionColumns+` FROM contributions ORDER BY period DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	defer rows.Close()

	var contributions []contribution.Contribution
	for rows.Next() {
		c, err := scanContribution(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contribution: %w", err)
		}
		contributions = append(contributions, c)
	}
	return contributions, rows.Err()
}

func (r *contributionRepository) MarkPaid(ctx context.Context, id string) (contribution.Contribution, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE contributions SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + contributionColumns

	c, err := scanContribution(q.QueryRow(ctx, query, id, contribution.StatusPaid))
	if err != nil {
		if err == pgx.ErrNoRows {
			return contribution.Contribution{}, contribution.ErrContributionNotFound
		}
		return contribution.Contribution{}, fmt.Errorf("failed to mark contribution paid: %w", err)
	}
	return c, nil
}

func (r *contributionRepository) SumPendingTotals(ctx context.Context) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var total decimal.Decimal
	err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM contributions WHERE status = $1`,
		contribution.StatusPending).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum pending contributions: %w", err)
	}
	return total, nil
}
