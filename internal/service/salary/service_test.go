package salary

import (
	"context"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packpal/packpal-backend-go/internal/domain/advance"
	"github.com/packpal/packpal-backend-go/internal/domain/attendance"
	"github.com/packpal/packpal-backend-go/internal/domain/employee"
	"github.com/packpal/packpal-backend-go/internal/domain/salary"
)

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
	total := decimal.Zero
	for _, emp := range f.employees {
		total = total.Add(emp.BaseSalary)
	}
	return total, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
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
	// Records are appended in creation order; last one wins.
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
	var out []attendance.Attendance
	for _, r := range f.records {
		if r.Period == period {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) LatestPerEmployee(ctx context.Context, empIDs []string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, empID := range empIDs {
		if r, err := f.GetLatestByEmpID(ctx, empID); err == nil {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeAdvanceRepo struct {
	records []advance.Advance
}

func (f *fakeAdvanceRepo) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
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
	var out []advance.Advance
	for _, r := range f.records {
		if r.Period == period {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAdvanceRepo) LatestPerEmployee(ctx context.Context, empIDs []string) ([]advance.Advance, error) {
	var out []advance.Advance
	for _, empID := range empIDs {
		if r, err := f.GetLatestByEmpID(ctx, empID); err == nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestService(emps *fakeEmployeeRepo, atts *fakeAttendanceRepo, advs *fakeAdvanceRepo) salary.SalaryService {
	return NewSalaryService(emps, atts, advs)
}

func TestCalc_UnknownEmployee(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakeAdvanceRepo{})

	_, err := svc.Calc(context.Background(), "NOPE", "2025-07")
	assert.ErrorIs(t, err, salary.ErrEmployeeNotFound)
}

func TestCalc_ExactPeriodRecords(t *testing.T) {
	emps := &fakeEmployeeRepo{employees: []employee.Employee{
		{EmpID: "EMP1", Name: "Amal", BaseSalary: decimal.NewFromInt(100000)},
	}}
	atts := &fakeAttendanceRepo{records: []attendance.Attendance{
		{EmpID: "EMP1", Period: "2025-07", WorkingDays: 22},
	}}
	advs := &fakeAdvanceRepo{records: []advance.Advance{
		{EmpID: "EMP1", Period: "2025-07", CostOfLiving: 15000, Medical: 5000, Conveyance: 5000},
	}}
	svc := newTestService(emps, atts, advs)

	resp, err := svc.Calc(context.Background(), "EMP1", "2025-07")
	require.NoError(t, err)

	assert.False(t, resp.AttendanceFallback)
	assert.False(t, resp.AdvanceFallback)
	assert.InDelta(t, 125000, resp.Breakdown.SalaryBeforeDeduction, 0.001)
	// 8% EPF + 3% ETF off 125000.
	assert.InDelta(t, 13750, resp.Breakdown.TotalDeductions, 0.001)
	assert.InDelta(t, 111250, resp.Breakdown.NetPayable, 0.001)
}

func TestCalc_FallsBackToLatestRecords(t *testing.T) {
	emps := &fakeEmployeeRepo{employees: []employee.Employee{
		{EmpID: "EMP1", Name: "Amal", BaseSalary: decimal.NewFromInt(88000)},
	}}
	atts := &fakeAttendanceRepo{records: []attendance.Attendance{
		{EmpID: "EMP1", Period: "2025-05", OvertimeHrs: 4},
	}}
	advs := &fakeAdvanceRepo{}
	svc := newTestService(emps, atts, advs)

	resp, err := svc.Calc(context.Background(), "EMP1", "2025-07")
	require.NoError(t, err)

	assert.True(t, resp.AttendanceFallback)
	assert.Equal(t, "2025-05", resp.AttendancePeriod)
	assert.False(t, resp.AdvanceFallback)
	assert.InDelta(t, 4, resp.Breakdown.OvertimeHrs, 0.001)
}

func TestCalc_NoRecordsUsesZeroSnapshots(t *testing.T) {
	emps := &fakeEmployeeRepo{employees: []employee.Employee{
		{EmpID: "EMP1", Name: "Amal", BaseSalary: decimal.NewFromInt(88000)},
	}}
	svc := newTestService(emps, &fakeAttendanceRepo{}, &fakeAdvanceRepo{})

	resp, err := svc.Calc(context.Background(), "EMP1", "2025-07")
	require.NoError(t, err)

	assert.InDelta(t, 88000, resp.Breakdown.SalaryBeforeDeduction, 0.001)
	assert.InDelta(t, 88000*0.89, resp.Breakdown.NetPayable, 0.001)
}

func TestSummary_SumsAcrossEmployees(t *testing.T) {
	emps := &fakeEmployeeRepo{employees: []employee.Employee{
		{EmpID: "EMP1", Name: "Amal", BaseSalary: decimal.NewFromInt(100000)},
		{EmpID: "EMP2", Name: "Nimal", BaseSalary: decimal.NewFromInt(50000)},
	}}
	atts := &fakeAttendanceRepo{records: []attendance.Attendance{
		{EmpID: "EMP1", Period: "2025-07", WorkingDays: 22},
		// EMP2 has only an older record; summary should fall back to it.
		{EmpID: "EMP2", Period: "2025-06", NoPayLeave: 2},
	}}
	svc := newTestService(emps, atts, &fakeAdvanceRepo{})

	resp, err := svc.Summary(context.Background(), "2025-07")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.EmployeesCount)
	// EMP1: 100000 * 0.89 = 89000.
	// EMP2: 50000 - (50000/22)*2 = 45454.55 gross-before-deduction is 50000;
	// deductions = noPay 4545.45 + 11% of 50000 = 10045.45 -> net 39954.55.
	assert.InDelta(t, 89000+39954.5454, resp.TotalNet, 0.01)
}

func TestSummary_SkipsNonFiniteNets(t *testing.T) {
	emps := &fakeEmployeeRepo{employees: []employee.Employee{
		{EmpID: "EMP1", Name: "Amal", BaseSalary: decimal.NewFromInt(100000)},
	}}
	atts := &fakeAttendanceRepo{records: []attendance.Attendance{
		{EmpID: "EMP1", Period: "2025-07", NoPayLeave: math.NaN()},
	}}
	svc := newTestService(emps, atts, &fakeAdvanceRepo{})

	resp, err := svc.Summary(context.Background(), "2025-07")
	require.NoError(t, err)

	assert.Equal(t, 0, resp.EmployeesCount)
	assert.Equal(t, 0.0, resp.TotalNet)
}
