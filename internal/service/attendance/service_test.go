package attendance

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packpal/packpal-backend-go/internal/domain/attendance"
	"github.com/packpal/packpal-backend-go/internal/domain/employee"
)

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	for _, r := range f.records {
		if r.EmpID == a.EmpID && r.Period == a.Period {
			return attendance.Attendance{}, attendance.ErrPeriodExists
		}
	}
	f.records = append(f.records, a)
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmpIDPeriod(ctx context.Context, empID, period string) (attendance.Attendance, error) {
	for _, r := range f.records {
		if r.EmpID == empID && r.Period == period {
			return r, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetLatestByEmpID(ctx context.Context, empID string) (attendance.Attendance, error) {
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].EmpID == empID {
			return f.records[i], nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) List(ctx context.Context, empID string) ([]attendance.Attendance, error) {
	return f.records, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeAttendanceRepo) ListByPeriod(ctx context.Context, period string) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) LatestPerEmployee(ctx context.Context, empIDs []string) ([]attendance.Attendance, error) {
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
	repo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(repo, &fakeEmployeeRepo{})

	_, err := svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmpID:  "GHOST999",
		Period: "2025-07",
	})

	assert.ErrorIs(t, err, attendance.ErrEmployeeNotResolved)
	assert.Empty(t, repo.records)
}

func TestCreate_PersistsForRegisteredEmployee(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	emps := &fakeEmployeeRepo{employees: []employee.Employee{
		{EmpID: "EMP1", Name: "Amal", BaseSalary: decimal.NewFromInt(88000)},
	}}
	svc := NewAttendanceService(repo, emps)

	resp, err := svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmpID:  "EMP1",
		Period: "2025-07",
	})
	require.NoError(t, err)

	assert.Equal(t, "EMP1", resp.EmpID)
	require.Len(t, repo.records, 1)
}

func TestCreate_DuplicatePeriodConflicts(t *testing.T) {
	repo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{EmpID: "EMP1", Period: "2025-07"},
	}}
	emps := &fakeEmployeeRepo{employees: []employee.Employee{
		{EmpID: "EMP1", Name: "Amal", BaseSalary: decimal.NewFromInt(88000)},
	}}
	svc := NewAttendanceService(repo, emps)

	_, err := svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmpID:  "EMP1",
		Period: "2025-07",
	})

	assert.ErrorIs(t, err, attendance.ErrPeriodExists)
}
