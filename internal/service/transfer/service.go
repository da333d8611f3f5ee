package transfer

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/packpal/packpal-backend-go/internal/domain/employee"
	"github.com/packpal/packpal-backend-go/internal/domain/salary"
	"github.com/packpal/packpal-backend-go/internal/domain/transfer"
)

type TransferServiceImpl struct {
	transferRepo  transfer.TransferRepository
	employeeRepo  employee.EmployeeRepository
	salaryService salary.SalaryService
}

func NewTransferService(
	transferRepo transfer.TransferRepository,
	employeeRepo employee.EmployeeRepository,
	salaryService salary.SalaryService,
) transfer.TransferService {
	return &TransferServiceImpl{
		transferRepo:  transferRepo,
		employeeRepo:  employeeRepo,
		salaryService: salaryService,
	}
}

func (s *TransferServiceImpl) Create(ctx context.Context, req transfer.CreateTransferRequest) (transfer.TransferResponse, error) {
	if err := req.Validate(); err != nil {
		return transfer.TransferResponse{}, err
	}

	t := transfer.Transfer{
		EmpID:   req.EmpID,
		EmpName: req.EmpName,
		Amount:  decimal.NewFromFloat(req.Amount.Float64()).Round(0),
		Month:   req.Month,
		Status:  transfer.StatusPending,
	}
	if t.EmpName == "" {
		if emp, err := s.employeeRepo.GetByEmpID(ctx, req.EmpID); err == nil {
			t.EmpName = emp.Name
		}
	}

	created, err := s.transferRepo.Create(ctx, t)
	if err != nil {
		if errors.Is(err, transfer.ErrMonthExists) {
			return transfer.TransferResponse{}, err
		}
		return transfer.TransferResponse{}, fmt.Errorf("failed to create transfer: %w", err)
	}
	return transfer.ToResponse(created), nil
}

func (s *TransferServiceImpl) Get(ctx context.Context, id string) (transfer.TransferResponse, error) {
	t, err := s.transferRepo.GetByID(ctx, id)
	if err != nil {
		return transfer.TransferResponse{}, err
	}
	return transfer.ToResponse(t), nil
}

func (s *TransferServiceImpl) List(ctx context.Context, month string) ([]transfer.TransferResponse, error) {
	transfers, err := s.transferRepo.List(ctx, month)
	if err != nil {
		return nil, err
	}

	responses := make([]transfer.TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		responses = append(responses, transfer.ToResponse(t))
	}
	return responses, nil
}

func (s *TransferServiceImpl) MarkPaid(ctx context.Context, id string) (transfer.TransferResponse, error) {
	t, err := s.transferRepo.GetByID(ctx, id)
	if err != nil {
		return transfer.TransferResponse{}, err
	}
	if t.Status == transfer.StatusPaid {
		return transfer.TransferResponse{}, transfer.ErrTransferAlreadyPaid
	}

	paid, err := s.transferRepo.MarkPaid(ctx, id)
	if err != nil {
		return transfer.TransferResponse{}, err
	}
	return transfer.ToResponse(paid), nil
}

func (s *TransferServiceImpl) Delete(ctx context.Context, id string) error {
	return s.transferRepo.Delete(ctx, id)
}

// Generate computes each employee's net payable for the period and creates a
// pending transfer for it, rounded to the whole currency unit. Employees
// that already have a transfer for the month, or whose computed net is not a
// usable positive amount, are skipped.
func (s *TransferServiceImpl) Generate(ctx context.Context, req transfer.GenerateTransfersRequest) (transfer.GenerateTransfersResponse, error) {
	if err := req.Validate(); err != nil {
		return transfer.GenerateTransfersResponse{}, err
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return transfer.GenerateTransfersResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := transfer.GenerateTransfersResponse{
		Period:  req.Period,
		Created: []transfer.TransferResponse{},
	}
	for _, emp := range employees {
		exists, err := s.transferRepo.ExistsForMonth(ctx, emp.EmpID, req.Period)
		if err != nil {
			return transfer.GenerateTransfersResponse{}, fmt.Errorf("failed to check existing transfer: %w", err)
		}
		if exists {
			resp.Skipped++
			continue
		}

		calc, err := s.salaryService.Calc(ctx, emp.EmpID, req.Period)
		if err != nil {
			return transfer.GenerateTransfersResponse{}, fmt.Errorf("failed to compute net for %s: %w", emp.EmpID, err)
		}
		net := calc.Breakdown.NetPayable
		if math.IsNaN(net) || math.IsInf(net, 0) || net <= 0 {
			resp.Skipped++
			continue
		}

		created, err := s.transferRepo.Create(ctx, transfer.Transfer{
			EmpID:   emp.EmpID,
			EmpName: emp.Name,
			Amount:  decimal.NewFromFloat(net).Round(0),
			Month:   req.Period,
			Status:  transfer.StatusPending,
		})
		if err != nil {
			// Lost a race with a concurrent generate; treat as skipped.
			if errors.Is(err, transfer.ErrMonthExists) {
				resp.Skipped++
				continue
			}
			return transfer.GenerateTransfersResponse{}, fmt.Errorf("failed to create transfer for %s: %w", emp.EmpID, err)
		}
		resp.Created = append(resp.Created, transfer.ToResponse(created))
	}
	return resp, nil
}
