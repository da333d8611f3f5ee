package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/packpal/packpal-backend-go/internal/domain/attendance"
	"github.com/packpal/packpal-backend-go/internal/pkg/database"
	"github.com/packpal/packpal-backend-go/internal/pkg/numeric"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// floatArg converts an optional tolerant amount into a nullable SQL argument.
func floatArg(a *numeric.Amount) *float64 {
	if a == nil {
		return nil
	}
	f := a.Float64()
	return &f
}

const attendanceColumns = `id, emp_id, period, working_days, overtime_hrs, leave_allowed, no_pay_leave, leave_taken, other, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmpID, &a.Period, &a.WorkingDays, &a.OvertimeHrs,
		&a.LeaveAllowed, &a.NoPayLeave, &a.LeaveTaken, &a.Other,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, emp_id, period, working_days, overtime_hrs, leave_allowed, no_pay_leave, leave_taken, other)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		uuid.NewString(), a.EmpID, a.Period, a.WorkingDays, a.OvertimeHrs,
		a.LeaveAllowed, a.NoPayLeave, a.LeaveTaken, a.Other,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_attendance_emp_period") {
			return attendance.Attendance{}, attendance.ErrPeriodExists
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAttendance(q.QueryRow(ctx,
		`SELECT `+attendanceColumns+` FROM attendance_records WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return a, nil
}

func (r *attendanceRepository) GetByEmpIDPeriod(ctx context.Context, empID, period string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAttendance(q.QueryRow(ctx,
		`SELECT `+attendanceColumns+` FROM attendance_records WHERE emp_id = $1 AND period = $2`,
		empID, period))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return a, nil
}

func (r *attendanceRepository) GetLatestByEmpID(ctx context.Context, empID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAttendance(q.QueryRow(ctx,
		`SELECT `+attendanceColumns+` FROM attendance_records WHERE emp_id = $1 ORDER BY created_at DESC LIMIT 1`,
		empID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get latest attendance record: %w", err)
	}
	return a, nil
}

func (r *attendanceRepository) List(ctx context.Context, empID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records`
	args := []interface{}{}
	if empID != "" {
		query += ` WHERE emp_id = $1`
		args = append(args, empID)
	}
	query += ` ORDER BY period DESC, emp_id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func collectAttendance(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func (r *attendanceRepository) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records SET
			working_days = COALESCE($2, working_days),
			overtime_hrs = COALESCE($3, overtime_hrs),
			leave_allowed = COALESCE($4, leave_allowed),
			no_pay_leave = COALESCE($5, no_pay_leave),
			leave_taken = COALESCE($6, leave_taken),
			other = COALESCE($7, other),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + attendanceColumns

	a, err := scanAttendance(q.QueryRow(ctx, query,
		req.ID, floatArg(req.WorkingDays), floatArg(req.OvertimeHrs), floatArg(req.LeaveAllowed),
		floatArg(req.NoPayLeave), floatArg(req.LeaveTaken), floatArg(req.Other),
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return a, nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

func (r *attendanceRepository) ListByPeriod(ctx context.Context, period string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+attendanceColumns+` FROM attendance_records WHERE period = $1`, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by period: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// LatestPerEmployee takes the most recent record per employee in one query;
// it backs the aggregator's fallback path for employees with no current-period
// row.
func (r *attendanceRepository) LatestPerEmployee(ctx context.Context, empIDs []string) ([]attendance.Attendance, error) {
	if len(empIDs) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT ON (emp_id) ` + attendanceColumns + `
		FROM attendance_records
		WHERE emp_id = ANY($1)
		ORDER BY emp_id, created_at DESC
	`

	rows, err := q.Query(ctx, query, empIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest attendance per employee: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}
