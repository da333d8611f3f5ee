package advance

import "context"

type AdvanceService interface {
	Create(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)
	Get(ctx context.Context, id string) (AdvanceResponse, error)
	List(ctx context.Context, empID string) ([]AdvanceResponse, error)
	Update(ctx context.Context, req UpdateAdvanceRequest) (AdvanceResponse, error)
	Delete(ctx context.Context, id string) error

	// Compute derives the percentage breakdown from the employee's base
	// salary and persists it as the period's advance record.
	Compute(ctx context.Context, req ComputeAdvanceRequest) (AdvanceResponse, error)
	Lookup(ctx context.Context, empID, periodKey string) (LookupResponse, error)
}
