package salary

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/packpal/packpal-backend-go/internal/domain/advance"
	"github.com/packpal/packpal-backend-go/internal/domain/attendance"
	"github.com/packpal/packpal-backend-go/internal/domain/employee"
	"github.com/packpal/packpal-backend-go/internal/domain/salary"
)

type SalaryServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	advanceRepo    advance.AdvanceRepository
}

func NewSalaryService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	advanceRepo advance.AdvanceRepository,
) salary.SalaryService {
	return &SalaryServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		advanceRepo:    advanceRepo,
	}
}

func (s *SalaryServiceImpl) Calc(ctx context.Context, empID, periodKey string) (salary.CalcResponse, error) {
	emp, err := s.employeeRepo.GetByEmpID(ctx, empID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return salary.CalcResponse{}, salary.ErrEmployeeNotFound
		}
		return salary.CalcResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	att, attFallback, err := s.attendanceSnapshot(ctx, empID, periodKey)
	if err != nil {
		return salary.CalcResponse{}, err
	}
	adv, advFallback, err := s.advanceSnapshot(ctx, empID, periodKey)
	if err != nil {
		return salary.CalcResponse{}, err
	}

	breakdown := salary.Calculate(salary.CalcInput{
		Basic:      emp.BaseSalary.InexactFloat64(),
		Attendance: att,
		Advance:    adv,
	})

	return salary.CalcResponse{
		EmpID:              emp.EmpID,
		Name:               emp.Name,
		Period:             periodKey,
		AttendancePeriod:   att.Period,
		AttendanceFallback: attFallback,
		AdvancePeriod:      adv.Period,
		AdvanceFallback:    advFallback,
		Breakdown:          breakdown,
	}, nil
}

// Summary computes net payable for every employee in one pass: one query per
// record type for the exact period, then one latest-per-employee query for
// the employees the first pass missed. Non-finite nets are excluded from
// both the sum and the count.
func (s *SalaryServiceImpl) Summary(ctx context.Context, periodKey string) (salary.SummaryResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return salary.SummaryResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	attByEmp, err := s.bulkAttendance(ctx, employees, periodKey)
	if err != nil {
		return salary.SummaryResponse{}, err
	}
	advByEmp, err := s.bulkAdvance(ctx, employees, periodKey)
	if err != nil {
		return salary.SummaryResponse{}, err
	}

	var totalNet float64
	var count int
	for _, emp := range employees {
		breakdown := salary.Calculate(salary.CalcInput{
			Basic:      emp.BaseSalary.InexactFloat64(),
			Attendance: attByEmp[emp.EmpID],
			Advance:    advByEmp[emp.EmpID],
		})
		if math.IsNaN(breakdown.NetPayable) || math.IsInf(breakdown.NetPayable, 0) {
			continue
		}
		totalNet += breakdown.NetPayable
		count++
	}

	return salary.SummaryResponse{
		Period:         periodKey,
		TotalNet:       totalNet,
		EmployeesCount: count,
	}, nil
}

func (s *SalaryServiceImpl) attendanceSnapshot(ctx context.Context, empID, periodKey string) (attendance.Snapshot, bool, error) {
	record, err := s.attendanceRepo.GetByEmpIDPeriod(ctx, empID, periodKey)
	if err == nil {
		return record.ToSnapshot(), false, nil
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.Snapshot{}, false, fmt.Errorf("failed to load attendance: %w", err)
	}

	latest, err := s.attendanceRepo.GetLatestByEmpID(ctx, empID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.Snapshot{}, false, nil
		}
		return attendance.Snapshot{}, false, fmt.Errorf("failed to load attendance: %w", err)
	}
	return latest.ToSnapshot(), true, nil
}

func (s *SalaryServiceImpl) advanceSnapshot(ctx context.Context, empID, periodKey string) (advance.Snapshot, bool, error) {
	record, err := s.advanceRepo.GetByEmpIDPeriod(ctx, empID, periodKey)
	if err == nil {
		return record.ToSnapshot(), false, nil
	}
	if !errors.Is(err, advance.ErrAdvanceNotFound) {
		return advance.Snapshot{}, false, fmt.Errorf("failed to load advance: %w", err)
	}

	latest, err := s.advanceRepo.GetLatestByEmpID(ctx, empID)
	if err != nil {
		if errors.Is(err, advance.ErrAdvanceNotFound) {
			return advance.Snapshot{}, false, nil
		}
		return advance.Snapshot{}, false, fmt.Errorf("failed to load advance: %w", err)
	}
	return latest.ToSnapshot(), true, nil
}

func (s *SalaryServiceImpl) bulkAttendance(ctx context.Context, employees []employee.Employee, periodKey string) (map[string]attendance.Snapshot, error) {
	current, err := s.attendanceRepo.ListByPeriod(ctx, periodKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for period: %w", err)
	}

	byEmp := make(map[string]attendance.Snapshot, len(employees))
	for _, record := range current {
		byEmp[record.EmpID] = record.ToSnapshot()
	}

	var missing []string
	for _, emp := range employees {
		if _, ok := byEmp[emp.EmpID]; !ok {
			missing = append(missing, emp.EmpID)
		}
	}
	if len(missing) > 0 {
		latest, err := s.attendanceRepo.LatestPerEmployee(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("failed to load fallback attendance: %w", err)
		}
		for _, record := range latest {
			byEmp[record.EmpID] = record.ToSnapshot()
		}
	}
	return byEmp, nil
}

func (s *SalaryServiceImpl) bulkAdvance(ctx context.Context, employees []employee.Employee, periodKey string) (map[string]advance.Snapshot, error) {
	current, err := s.advanceRepo.ListByPeriod(ctx, periodKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances for period: %w", err)
	}

	byEmp := make(map[string]advance.Snapshot, len(employees))
	for _, record := range current {
		byEmp[record.EmpID] = record.ToSnapshot()
	}

	var missing []string
	for _, emp := range employees {
		if _, ok := byEmp[emp.EmpID]; !ok {
			missing = append(missing, emp.EmpID)
		}
	}
	if len(missing) > 0 {
		latest, err := s.advanceRepo.LatestPerEmployee(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("failed to load fallback advances: %w", err)
		}
		for _, record := range latest {
			byEmp[record.EmpID] = record.ToSnapshot()
		}
	}
	return byEmp, nil
}
