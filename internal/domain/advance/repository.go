package advance

import "context"

type AdvanceRepository interface {
	Create(ctx context.Context, a Advance) (Advance, error)
	GetByID(ctx context.Context, id string) (Advance, error)
	GetByEmpIDPeriod(ctx context.Context, empID, period string) (Advance, error)
	GetLatestByEmpID(ctx context.Context, empID string) (Advance, error)
	List(ctx context.Context, empID string) ([]Advance, error)
	Update(ctx context.Context, req UpdateAdvanceRequest) (Advance, error)
	Delete(ctx context.Context, id string) error

	ListByPeriod(ctx context.Context, period string) ([]Advance, error)
	LatestPerEmployee(ctx context.Context, empIDs []string) ([]Advance, error)
}
