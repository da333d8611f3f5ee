package contribution

import (
	"context"
	"errors"
	"fmt"

	"github.com/packpal/packpal-backend-go/internal/domain/contribution"
	"github.com/packpal/packpal-backend-go/internal/domain/employee"
)

type ContributionServiceImpl struct {
	contributionRepo contribution.ContributionRepository
	employeeRepo     employee.EmployeeRepository
}

func NewContributionService(
	contributionRepo contribution.ContributionRepository,
	employeeRepo employee.EmployeeRepository,
) contribution.ContributionService {
	return &ContributionServiceImpl{
		contributionRepo: contributionRepo,
		employeeRepo:     employeeRepo,
	}
}

// Create locks the period's EPF/ETF figures against the current sum of base
// salaries. One record per period; a second create conflicts.
func (s *ContributionServiceImpl) Create(ctx context.Context, req contribution.CreateContributionRequest) (contribution.ContributionResponse, error) {
	if err := req.Validate(); err != nil {
		return contribution.ContributionResponse{}, err
	}

	baseTotal, err := s.employeeRepo.SumBaseSalaries(ctx)
	if err != nil {
		return contribution.ContributionResponse{}, fmt.Errorf("failed to sum base salaries: %w", err)
	}

	created, err := s.contributionRepo.Create(ctx, contribution.FromBaseTotal(req.Period, baseTotal))
	if err != nil {
		if errors.Is(err, contribution.ErrPeriodExists) {
			return contribution.ContributionResponse{}, err
		}
		return contribution.ContributionResponse{}, fmt.Errorf("failed to create contribution: %w", err)
	}
	return contribution.ToResponse(created), nil
}

func (s *ContributionServiceImpl) List(ctx context.Context) ([]contribution.ContributionResponse, error) {
	contributions, err := s.contributionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]contribution.ContributionResponse, 0, len(contributions))
	for _, c := range contributions {
		responses = append(responses, contribution.ToResponse(c))
	}
	return responses, nil
}

func (s *ContributionServiceImpl) MarkPaid(ctx context.Context, id string) (contribution.ContributionResponse, error) {
	c, err := s.contributionRepo.GetByID(ctx, id)
	if err != nil {
		return contribution.ContributionResponse{}, err
	}
	if c.Status == contribution.StatusPaid {
		return contribution.ContributionResponse{}, contribution.ErrAlreadyPaid
	}

	paid, err := s.contributionRepo.MarkPaid(ctx, id)
	if err != nil {
		return contribution.ContributionResponse{}, err
	}
	return contribution.ToResponse(paid), nil
}
