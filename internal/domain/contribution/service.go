package contribution

import "context"

type ContributionService interface {
	Create(ctx context.Context, req CreateContributionRequest) (ContributionResponse, error)
	List(ctx context.Context) ([]ContributionResponse, error)
	MarkPaid(ctx context.Context, id string) (ContributionResponse, error)
}
