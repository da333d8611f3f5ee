package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/packpal/packpal-backend-go/internal/domain/employee"
	"github.com/packpal/packpal-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, emp_id, name, designation, base_salary, bank_name, bank_branch, bank_account_no, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmpID, &e.Name, &e.Designation, &e.BaseSalary,
		&e.BankName, &e.BankBranch, &e.BankAccountNo, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, emp_id, name, designation, base_salary, bank_name, bank_branch, bank_account_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		uuid.NewString(), emp.EmpID, emp.Name, emp.Designation, emp.BaseSalary,
		emp.BankName, emp.BankBranch, emp.BankAccountNo,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_employees_emp_id") {
			return employee.Employee{}, employee.ErrEmpIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE emp_id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, empID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY emp_id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	var baseSalary *decimal.Decimal
	if req.BaseSalary != nil {
		d := decimal.NewFromFloat(req.BaseSalary.Float64())
		baseSalary = &d
	}

	query := `
		UPDATE employees SET
			name = COALESCE($2, name),
			designation = COALESCE($3, designation),
			base_salary = COALESCE($4, base_salary),
			bank_name = COALESCE($5, bank_name),
			bank_branch = COALESCE($6, bank_branch),
			bank_account_no = COALESCE($7, bank_account_no),
			updated_at = NOW()
		WHERE emp_id = $1
		RETURNING ` + employeeColumns

	e, err := scanEmployee(q.QueryRow(ctx, query,
		req.EmpID, req.Name, req.Designation, baseSalary,
		req.BankName, req.BankBranch, req.BankAccountNo,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) Delete(ctx context.Context, empID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE emp_id = $1`, empID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) SumBaseSalaries(ctx context.Context) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var total decimal.Decimal
	err := q.QueryRow(ctx, `SELECT COALESCE(SUM(base_salary), 0) FROM employees`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum base salaries: %w", err)
	}
	return total, nil
}
