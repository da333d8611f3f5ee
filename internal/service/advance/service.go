package advance

import (
	"context"
	"errors"
	"fmt"

	"github.com/packpal/packpal-backend-go/internal/domain/advance"
	"github.com/packpal/packpal-backend-go/internal/domain/employee"
)

type AdvanceServiceImpl struct {
	advanceRepo  advance.AdvanceRepository
	employeeRepo employee.EmployeeRepository
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository, employeeRepo employee.EmployeeRepository) advance.AdvanceService {
	return &AdvanceServiceImpl{advanceRepo: advanceRepo, employeeRepo: employeeRepo}
}

func (s *AdvanceServiceImpl) Create(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	// Records are keyed by empId; reject writes against employees that were
	// never registered.
	if _, err := s.employeeRepo.GetByEmpID(ctx, req.EmpID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return advance.AdvanceResponse{}, advance.ErrEmployeeNotResolved
		}
		return advance.AdvanceResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	record := advance.Advance{
		EmpID:          req.EmpID,
		Period:         req.Period,
		CostOfLiving:   req.CostOfLiving.Float64(),
		Medical:        req.Medical.Float64(),
		Conveyance:     req.Conveyance.Float64(),
		Bonus:          req.Bonus.Float64(),
		Attendance:     req.Attendance.Float64(),
		Food:           req.Food.Float64(),
		Reimbursements: req.Reimbursements.Float64(),
	}

	created, err := s.advanceRepo.Create(ctx, record)
	if err != nil {
		if errors.Is(err, advance.ErrPeriodExists) {
			return advance.AdvanceResponse{}, err
		}
		return advance.AdvanceResponse{}, fmt.Errorf("failed to create advance record: %w", err)
	}
	return advance.ToResponse(created), nil
}

func (s *AdvanceServiceImpl) Get(ctx context.Context, id string) (advance.AdvanceResponse, error) {
	record, err := s.advanceRepo.GetByID(ctx, id)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	return advance.ToResponse(record), nil
}

func (s *AdvanceServiceImpl) List(ctx context.Context, empID string) ([]advance.AdvanceResponse, error) {
	records, err := s.advanceRepo.List(ctx, empID)
	if err != nil {
		return nil, err
	}

	responses := make([]advance.AdvanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, advance.ToResponse(record))
	}
	return responses, nil
}

func (s *AdvanceServiceImpl) Update(ctx context.Context, req advance.UpdateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	record, err := s.advanceRepo.Update(ctx, req)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	return advance.ToResponse(record), nil
}

func (s *AdvanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.advanceRepo.Delete(ctx, id)
}

// Compute derives the standard percentage breakdown from the employee's base
// salary and persists it as the period's advance record.
func (s *AdvanceServiceImpl) Compute(ctx context.Context, req advance.ComputeAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmpID(ctx, req.EmpID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	breakdown := advance.ComputeBreakdown(emp.BaseSalary.InexactFloat64())
	record := advance.Advance{
		EmpID:        req.EmpID,
		Period:       req.Period,
		CostOfLiving: breakdown.CostOfLiving,
		Medical:      breakdown.Medical,
		Conveyance:   breakdown.Conveyance,
		Bonus:        breakdown.Bonus,
		Attendance:   breakdown.Attendance,
	}

	created, err := s.advanceRepo.Create(ctx, record)
	if err != nil {
		if errors.Is(err, advance.ErrPeriodExists) {
			return advance.AdvanceResponse{}, err
		}
		return advance.AdvanceResponse{}, fmt.Errorf("failed to persist computed advance: %w", err)
	}
	return advance.ToResponse(created), nil
}

func (s *AdvanceServiceImpl) Lookup(ctx context.Context, empID, periodKey string) (advance.LookupResponse, error) {
	record, err := s.advanceRepo.GetByEmpIDPeriod(ctx, empID, periodKey)
	if err == nil {
		resp := advance.ToResponse(record)
		return advance.LookupResponse{Record: &resp}, nil
	}
	if !errors.Is(err, advance.ErrAdvanceNotFound) {
		return advance.LookupResponse{}, fmt.Errorf("failed to look up advance: %w", err)
	}

	latest, err := s.advanceRepo.GetLatestByEmpID(ctx, empID)
	if err != nil {
		if errors.Is(err, advance.ErrAdvanceNotFound) {
			return advance.LookupResponse{}, nil
		}
		return advance.LookupResponse{}, fmt.Errorf("failed to look up advance: %w", err)
	}

	resp := advance.ToResponse(latest)
	return advance.LookupResponse{Record: &resp, FromPeriod: latest.Period, Fallback: true}, nil
}
