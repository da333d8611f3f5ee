package product

import "context"

type ProductService interface {
	Create(ctx context.Context, req CreateProductRequest) (ProductResponse, error)
	Get(ctx context.Context, id string) (ProductResponse, error)
	List(ctx context.Context, category string) ([]ProductResponse, error)
	Update(ctx context.Context, req UpdateProductRequest) (ProductResponse, error)
	Delete(ctx context.Context, id string) error

	// Summary values stock at list price; SummaryV2 at effective price.
	Summary(ctx context.Context) (SummaryResponse, error)
	SummaryV2(ctx context.Context) (SummaryResponse, error)
}
