package product

import "context"

type ProductRepository interface {
	Create(ctx context.Context, p Product) (Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	List(ctx context.Context, category string) ([]Product, error)
	Update(ctx context.Context, req UpdateProductRequest) (Product, error)
	Delete(ctx context.Context, id string) error
}
