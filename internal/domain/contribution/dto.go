package contribution

import (
	"github.com/shopspring/decimal"

	"github.com/packpal/packpal-backend-go/internal/pkg/period"
	"github.com/packpal/packpal-backend-go/internal/pkg/validator"
)

type CreateContributionRequest struct {
	Period string `json:"period"`
}

func (r *CreateContributionRequest) Validate() error {
	if r.Period == "" {
		r.Period = period.Current()
	}
	if !period.IsValid(r.Period) {
		return validator.ValidationErrors{{Field: "period", Message: "must be YYYY-MM"}}
	}
	return nil
}

type ContributionResponse struct {
	ID        string          `json:"id"`
	Period    string          `json:"period"`
	BaseTotal decimal.Decimal `json:"baseTotal"`
	EPFEmp    decimal.Decimal `json:"epfEmp"`
	EPFEr     decimal.Decimal `json:"epfEr"`
	ETF       decimal.Decimal `json:"etf"`
	Total     decimal.Decimal `json:"total"`
	Status    Status          `json:"status"`
}

func ToResponse(c Contribution) ContributionResponse {
	return ContributionResponse{
		ID:        c.ID,
		Period:    c.Period,
		BaseTotal: c.BaseTotal,
		EPFEmp:    c.EPFEmp,
		EPFEr:     c.EPFEr,
		ETF:       c.ETF,
		Total:     c.Total,
		Status:    c.Status,
	}
}
