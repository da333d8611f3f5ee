package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/packpal/packpal-backend-go/internal/domain/advance"
	"github.com/packpal/packpal-backend-go/internal/pkg/database"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

const advanceColumns = `id, emp_id, period, cost_of_living, medical, conveyance, bonus, attendance, food, reimbursements, created_at, updated_at`

func scanAdvance(row pgx.Row) (advance.Advance, error) {
	var a advance.Advance
	err := row.Scan(
		&a.ID, &a.EmpID, &a.Period, &a.CostOfLiving, &a.Medical, &a.Conveyance,
		&a.Bonus, &a.Attendance, &a.Food, &a.Reimbursements,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func collectAdvances(rows pgx.Rows) ([]advance.Advance, error) {
	var records []advance.Advance
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance record: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func (r *advanceRepository) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advances (id, emp_id, period, cost_of_living, medical, conveyance, bonus, attendance, food, reimbursements)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + advanceColumns

	created, err := scanAdvance(q.QueryRow(ctx, query,
		uuid.NewString(), a.EmpID, a.Period, a.CostOfLiving, a.Medical, a.Conveyance,
		a.Bonus, a.Attendance, a.Food, a.Reimbursements,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_advances_emp_period") {
			return advance.Advance{}, advance.ErrPeriodExists
		}
		return advance.Advance{}, fmt.Errorf("failed to create advance record: %w", err)
	}

	return created, nil
}

func (r *advanceRepository) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAdvance(q.QueryRow(ctx,
		`SELECT `+advanceColumns+` FROM advances WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to get advance record: %w", err)
	}
	return a, nil
}

func (r *advanceRepository) GetByEmpIDPeriod(ctx context.Context, empID, period string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAdvance(q.QueryRow(ctx,
		`SELECT `+advanceColumns+` FROM advances WHERE emp_id = $1 AND period = $2`,
		empID, period))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to get advance record: %w", err)
	}
	return a, nil
}

func (r *advanceRepository) GetLatestByEmpID(ctx context.Context, empID string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAdvance(q.QueryRow(ctx,
		`SELECT `+advanceColumns+` FROM advances WHERE emp_id = $1 ORDER BY created_at DESC LIMIT 1`,
		empID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to get latest advance record: %w", err)
	}
	return a, nil
}

func (r *advanceRepository) List(ctx context.Context, empID string) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + advanceColumns + ` FROM advances`
	args := []interface{}{}
	if empID != "" {
		query += ` WHERE emp_id = $1`
		args = append(args, empID)
	}
	query += ` ORDER BY period DESC, emp_id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list advance records: %w", err)
	}
	defer rows.Close()

	return collectAdvances(rows)
}

func (r *advanceRepository) Update(ctx context.Context, req advance.UpdateAdvanceRequest) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advances SET
			cost_of_living = COALESCE($2, cost_of_living),
			medical = COALESCE($3, medical),
			conveyance = COALESCE($4, conveyance),
			bonus = COALESCE($5, bonus),
			attendance = COALESCE($6, attendance),
			food = COALESCE($7, food),
			reimbursements = COALESCE($8, reimbursements),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + advanceColumns

	a, err := scanAdvance(q.QueryRow(ctx, query,
		req.ID, floatArg(req.CostOfLiving), floatArg(req.Medical), floatArg(req.Conveyance),
		floatArg(req.Bonus), floatArg(req.Attendance), floatArg(req.Food), floatArg(req.Reimbursements),
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to update advance record: %w", err)
	}
	return a, nil
}

func (r *advanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM advances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete advance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}
	return nil
}

func (r *advanceRepository) ListByPeriod(ctx context.Context, period string) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+advanceColumns+` FROM advances WHERE period = $1`, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances by period: %w", err)
	}
	defer rows.Close()

	return collectAdvances(rows)
}

func (r *advanceRepository) LatestPerEmployee(ctx context.Context, empIDs []string) ([]advance.Advance, error) {
	if len(empIDs) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT ON (emp_id) ` + advanceColumns + `
		FROM advances
		WHERE emp_id = ANY($1)
		ORDER BY emp_id, created_at DESC
	`

	rows, err := q.Query(ctx, query, empIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest advance per employee: %w", err)
	}
	defer rows.Close()

	return collectAdvances(rows)
}
