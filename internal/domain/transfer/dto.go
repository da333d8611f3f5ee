package transfer

import (
	"github.com/shopspring/decimal"

	"github.com/packpal/packpal-backend-go/internal/pkg/numeric"
	"github.com/packpal/packpal-backend-go/internal/pkg/period"
	"github.com/packpal/packpal-backend-go/internal/pkg/validator"
)

type CreateTransferRequest struct {
	EmpID   string         `json:"empId"`
	EmpName string         `json:"empName"`
	Amount  numeric.Amount `json:"amount"`
	Month   string         `json:"month"`
}

func (r *CreateTransferRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeID(r.EmpID) {
		errs = append(errs, validator.ValidationError{Field: "empId", Message: "must be a short alphanumeric id"})
	}
	if r.Month == "" {
		r.Month = period.Current()
	}
	if !period.IsValid(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM"})
	}
	if r.Amount.Float64() < 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GenerateTransfersRequest builds pending transfers for every employee's
// computed net payable in the given period.
type GenerateTransfersRequest struct {
	Period string `json:"period"`
}

func (r *GenerateTransfersRequest) Validate() error {
	if r.Period == "" {
		r.Period = period.Current()
	}
	if !period.IsValid(r.Period) {
		return validator.ValidationErrors{{Field: "period", Message: "must be YYYY-MM"}}
	}
	return nil
}

type TransferResponse struct {
	ID      string          `json:"id"`
	EmpID   string          `json:"empId"`
	EmpName string          `json:"empName"`
	Amount  decimal.Decimal `json:"amount"`
	Month   string          `json:"month"`
	Status  Status          `json:"status"`
}

func ToResponse(t Transfer) TransferResponse {
	return TransferResponse{
		ID:      t.ID,
		EmpID:   t.EmpID,
		EmpName: t.EmpName,
		Amount:  t.Amount,
		Month:   t.Month,
		Status:  t.Status,
	}
}

type GenerateTransfersResponse struct {
	Period  string             `json:"period"`
	Created []TransferResponse `json:"created"`
	Skipped int                `json:"skipped"`
}
