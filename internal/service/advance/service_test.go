package advance

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packpal/packpal-backend-go/internal/domain/advance"
	"github.com/packpal/packpal-backend-go/internal/domain/employee"
)

type fakeAdvanceRepo struct {
	records []advance.Advance
}

func (f *fakeAdvanceRepo) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	for _, r := range f.records {
		if r.EmpID == a.EmpID && r.Period == a.Period {
			return advance.Advance{}, advance.ErrPeriodExists
		}
	}
	f.records = append(f.records, a)
	return a, nil
}

func (f *fakeAdvanceRepo) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	return advance.Advance{}, advance.ErrAdvanceNotFound
}

func (f *fakeAdvanceRepo) GetByEmpIDPeriod(ctx context.Context, empID, period string) (advance.Advance, error) {
	for _, r := range f.records {
		if r.EmpID == empID && r.Period == period {
			return r, nil
		}
	}
	return advance.Advance{}, advance.ErrAdvanceNotFound
}

func (f *fakeAdvanceRepo) GetLatestByEmpID(ctx context.Context, empID string) (advance.Advance, error) {
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].EmpID == empID {
			return f.records[i], nil
		}
	}
	return advance.Advance{}, advance.ErrAdvanceNotFound
}

func (f *fakeAdvanceRepo) List(ctx context.Context, empID string) ([]advance.Advance, error) {
	return f.records, nil
}

func (f *fakeAdvanceRepo) Update(ctx context.Context, req advance.UpdateAdvanceRequest) (advance.Advance, error) {
	return advance.Advance{}, advance.ErrAdvanceNotFound
}

func (f *fakeAdvanceRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeAdvanceRepo) ListByPeriod(ctx context.Context, period string) ([]advance.Advance, error) {
	return nil, nil
}

func (f *fakeAdvanceRepo) LatestPerEmployee(ctx context.Context, empIDs []string) ([]advance.Advance, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmpID == empID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, empID string) error {
	return nil
}

func (f *fakeEmployeeRepo) SumBaseSalaries(ctx context.Context) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func TestCreate_RejectsUnknownEmployee(t *testing.T) {
	repo := &fakeAdvanceRepo{}
	svc := NewAdvanceService(repo, &fakeEmployeeRepo{})

	_, err := svc.Create(context.Background(), advance.CreateAdvanceRequest{
		EmpID:  "GHOST999",
		Period: "2025-07",
	})

	assert.ErrorIs(t, err, advance.ErrEmployeeNotResolved)
	assert.Empty(t, repo.records)
}

func TestCreate_PersistsForRegisteredEmployee(t *testing.T) {
	repo := &fakeAdvanceRepo{}
	emps := &fakeEmployeeRepo{employees: []employee.Employee{
		{EmpID: "EMP1", Name: "Amal", BaseSalary: decimal.NewFromInt(88000)},
	}}
	svc := NewAdvanceService(repo, emps)

	resp, err := svc.Create(context.Background(), advance.CreateAdvanceRequest{
		EmpID:  "EMP1",
		Period: "2025-07",
	})
	require.NoError(t, err)

	assert.Equal(t, "EMP1", resp.EmpID)
	require.Len(t, repo.records, 1)
}

func TestCreate_DuplicatePeriodConflicts(t *testing.T) {
	repo := &fakeAdvanceRepo{records: []advance.Advance{
		{EmpID: "EMP1", Period: "2025-07"},
	}}
	emps := &fakeEmployeeRepo{employees: []employee.Employee{
		{EmpID: "EMP1", Name: "Amal", BaseSalary: decimal.NewFromInt(88000)},
	}}
	svc := NewAdvanceService(repo, emps)

	_, err := svc.Create(context.Background(), advance.CreateAdvanceRequest{
		EmpID:  "EMP1",
		Period: "2025-07",
	})

	assert.ErrorIs(t, err, advance.ErrPeriodExists)
}

func TestCompute_PersistsBreakdownForEmployee(t *testing.T) {
	repo := &fakeAdvanceRepo{}
	emps := &fakeEmployeeRepo{employees: []employee.Employee{
		{EmpID: "EMP1", Name: "Amal", BaseSalary: decimal.NewFromInt(100000)},
	}}
	svc := NewAdvanceService(repo, emps)

	resp, err := svc.Compute(context.Background(), advance.ComputeAdvanceRequest{
		EmpID:  "EMP1",
		Period: "2025-07",
	})
	require.NoError(t, err)

	expected := advance.ComputeBreakdown(100000)
	assert.InDelta(t, expected.CostOfLiving, resp.CostOfLiving, 0.001)
	assert.InDelta(t, expected.Bonus, resp.Bonus, 0.001)
	require.Len(t, repo.records, 1)
}
