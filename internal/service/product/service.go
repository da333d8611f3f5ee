package product

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/packpal/packpal-backend-go/internal/domain/product"
)

// Catalog items at or below this stock level count as low stock on the
// dashboard cards.
const lowStockThreshold = 10

type ProductServiceImpl struct {
	productRepo product.ProductRepository
}

func NewProductService(productRepo product.ProductRepository) product.ProductService {
	return &ProductServiceImpl{productRepo: productRepo}
}

func (s *ProductServiceImpl) Create(ctx context.Context, req product.CreateProductRequest) (product.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return product.ProductResponse{}, err
	}

	p := product.Product{
		Name:          req.Name,
		Category:      req.Category,
		Price:         decimal.NewFromFloat(req.Price.Float64()),
		Stock:         int(req.Stock.Float64()),
		DiscountType:  product.DiscountType(req.DiscountType),
		DiscountValue: decimal.NewFromFloat(req.DiscountValue.Float64()),
		Rating:        req.Rating.Float64(),
	}

	created, err := s.productRepo.Create(ctx, p)
	if err != nil {
		return product.ProductResponse{}, fmt.Errorf("failed to create product: %w", err)
	}
	return product.ToResponse(created), nil
}

func (s *ProductServiceImpl) Get(ctx context.Context, id string) (product.ProductResponse, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return product.ProductResponse{}, err
	}
	return product.ToResponse(p), nil
}

func (s *ProductServiceImpl) List(ctx context.Context, category string) ([]product.ProductResponse, error) {
	products, err := s.productRepo.List(ctx, category)
	if err != nil {
		return nil, err
	}

	responses := make([]product.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, product.ToResponse(p))
	}
	return responses, nil
}

func (s *ProductServiceImpl) Update(ctx context.Context, req product.UpdateProductRequest) (product.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return product.ProductResponse{}, err
	}

	p, err := s.productRepo.Update(ctx, req)
	if err != nil {
		return product.ProductResponse{}, err
	}
	return product.ToResponse(p), nil
}

func (s *ProductServiceImpl) Delete(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

// Summary values stock at list price.
func (s *ProductServiceImpl) Summary(ctx context.Context) (product.SummaryResponse, error) {
	return s.summarize(ctx, false)
}

// SummaryV2 values stock at effective (post-discount) price.
func (s *ProductServiceImpl) SummaryV2(ctx context.Context) (product.SummaryResponse, error) {
	return s.summarize(ctx, true)
}

func (s *ProductServiceImpl) summarize(ctx context.Context, effective bool) (product.SummaryResponse, error) {
	products, err := s.productRepo.List(ctx, "")
	if err != nil {
		return product.SummaryResponse{}, fmt.Errorf("failed to list products: %w", err)
	}

	summary := product.SummaryResponse{Count: len(products)}
	for _, p := range products {
		stock := decimal.NewFromInt(int64(p.Stock))
		summary.StockValue = summary.StockValue.Add(p.Price.Mul(stock))
		if effective {
			summary.EffectiveStockValue = summary.EffectiveStockValue.Add(p.EffectivePrice().Mul(stock))
		}
		if p.Stock <= lowStockThreshold {
			summary.LowStockCount++
		}
	}
	return summary, nil
}
