package advance

import (
	"github.com/packpal/packpal-backend-go/internal/pkg/numeric"
	"github.com/packpal/packpal-backend-go/internal/pkg/period"
	"github.com/packpal/packpal-backend-go/internal/pkg/validator"
)

type CreateAdvanceRequest struct {
	EmpID          string         `json:"empId"`
	Period         string         `json:"period"`
	CostOfLiving   numeric.Amount `json:"costOfLiving"`
	Medical        numeric.Amount `json:"medical"`
	Conveyance     numeric.Amount `json:"conveyance"`
	Bonus          numeric.Amount `json:"bonus"`
	Attendance     numeric.Amount `json:"attendance"`
	Food           numeric.Amount `json:"food"`
	Reimbursements numeric.Amount `json:"reimbursements"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeID(r.EmpID) {
		errs = append(errs, validator.ValidationError{Field: "empId", Message: "must be a short alphanumeric id"})
	}
	if r.Period == "" {
		r.Period = period.Current()
	}
	if !period.IsValid(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be YYYY-MM"})
	}
	for field, v := range map[string]float64{
		"costOfLiving":   r.CostOfLiving.Float64(),
		"medical":        r.Medical.Float64(),
		"conveyance":     r.Conveyance.Float64(),
		"bonus":          r.Bonus.Float64(),
		"attendance":     r.Attendance.Float64(),
		"food":           r.Food.Float64(),
		"reimbursements": r.Reimbursements.Float64(),
	} {
		if v < 0 {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAdvanceRequest struct {
	ID             string          `json:"-"`
	CostOfLiving   *numeric.Amount `json:"costOfLiving,omitempty"`
	Medical        *numeric.Amount `json:"medical,omitempty"`
	Conveyance     *numeric.Amount `json:"conveyance,omitempty"`
	Bonus          *numeric.Amount `json:"bonus,omitempty"`
	Attendance     *numeric.Amount `json:"attendance,omitempty"`
	Food           *numeric.Amount `json:"food,omitempty"`
	Reimbursements *numeric.Amount `json:"reimbursements,omitempty"`
}

func (r *UpdateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	check := func(field string, v *numeric.Amount) {
		if v != nil && v.Float64() < 0 {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	check("costOfLiving", r.CostOfLiving)
	check("medical", r.Medical)
	check("conveyance", r.Conveyance)
	check("bonus", r.Bonus)
	check("attendance", r.Attendance)
	check("food", r.Food)
	check("reimbursements", r.Reimbursements)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ComputeAdvanceRequest drives the basic-salary percentage breakdown.
type ComputeAdvanceRequest struct {
	EmpID  string `json:"empId"`
	Period string `json:"period"`
}

func (r *ComputeAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeID(r.EmpID) {
		errs = append(errs, validator.ValidationError{Field: "empId", Message: "must be a short alphanumeric id"})
	}
	if r.Period == "" {
		r.Period = period.Current()
	}
	if !period.IsValid(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be YYYY-MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdvanceResponse struct {
	ID             string  `json:"id"`
	EmpID          string  `json:"empId"`
	Period         string  `json:"period"`
	CostOfLiving   float64 `json:"costOfLiving"`
	Medical        float64 `json:"medical"`
	Conveyance     float64 `json:"conveyance"`
	Bonus          float64 `json:"bonus"`
	Attendance     float64 `json:"attendance"`
	Food           float64 `json:"food"`
	Reimbursements float64 `json:"reimbursements"`
}

func ToResponse(a Advance) AdvanceResponse {
	return AdvanceResponse{
		ID:             a.ID,
		EmpID:          a.EmpID,
		Period:         a.Period,
		CostOfLiving:   a.CostOfLiving,
		Medical:        a.Medical,
		Conveyance:     a.Conveyance,
		Bonus:          a.Bonus,
		Attendance:     a.Attendance,
		Food:           a.Food,
		Reimbursements: a.Reimbursements,
	}
}

type LookupResponse struct {
	Record     *AdvanceResponse `json:"record"`
	FromPeriod string           `json:"fromPeriod,omitempty"`
	Fallback   bool             `json:"fallback"`
}
