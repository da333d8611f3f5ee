package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/packpal/packpal-backend-go/internal/domain/attendance"
	"github.com/packpal/packpal-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{attendanceRepo: attendanceRepo, employeeRepo: employeeRepo}
}

func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Records are keyed by empId; reject writes against employees that were
	// never registered.
	if _, err := s.employeeRepo.GetByEmpID(ctx, req.EmpID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrEmployeeNotResolved
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	record := attendance.Attendance{
		EmpID:        req.EmpID,
		Period:       req.Period,
		WorkingDays:  req.WorkingDays.Float64(),
		OvertimeHrs:  req.OvertimeHrs.Float64(),
		LeaveAllowed: req.LeaveAllowed.Float64(),
		NoPayLeave:   req.NoPayLeave.Float64(),
		LeaveTaken:   req.LeaveTaken.Float64(),
		Other:        req.Other.Float64(),
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		if errors.Is(err, attendance.ErrPeriodExists) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return attendance.ToResponse(created), nil
}

func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(record), nil
}

func (s *AttendanceServiceImpl) List(ctx context.Context, empID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx, empID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.Update(ctx, req)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(record), nil
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// Lookup serves (empId, period) with the carry-forward fallback: the exact
// period's record when present, otherwise the employee's most recent record,
// otherwise no record at all. Absence is not an error.
func (s *AttendanceServiceImpl) Lookup(ctx context.Context, empID, periodKey string) (attendance.LookupResponse, error) {
	record, err := s.attendanceRepo.GetByEmpIDPeriod(ctx, empID, periodKey)
	if err == nil {
		resp := attendance.ToResponse(record)
		return attendance.LookupResponse{Record: &resp}, nil
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.LookupResponse{}, fmt.Errorf("failed to look up attendance: %w", err)
	}

	latest, err := s.attendanceRepo.GetLatestByEmpID(ctx, empID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.LookupResponse{}, nil
		}
		return attendance.LookupResponse{}, fmt.Errorf("failed to look up attendance: %w", err)
	}

	resp := attendance.ToResponse(latest)
	return attendance.LookupResponse{Record: &resp, FromPeriod: latest.Period, Fallback: true}, nil
}
