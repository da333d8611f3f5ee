package employee

import (
	"github.com/shopspring/decimal"

	"github.com/packpal/packpal-backend-go/internal/pkg/numeric"
	"github.com/packpal/packpal-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmpID         string         `json:"empId"`
	Name          string         `json:"name"`
	Designation   *string        `json:"designation,omitempty"`
	BaseSalary    numeric.Amount `json:"baseSalary"`
	BankName      *string        `json:"bankName,omitempty"`
	BankBranch    *string        `json:"bankBranch,omitempty"`
	BankAccountNo *string        `json:"bankAccountNo,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeID(r.EmpID) {
		errs = append(errs, validator.ValidationError{Field: "empId", Message: "must be a short alphanumeric id"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.BaseSalary.Float64() < 0 {
		errs = append(errs, validator.ValidationError{Field: "baseSalary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	EmpID         string          `json:"-"`
	Name          *string         `json:"name,omitempty"`
	Designation   *string         `json:"designation,omitempty"`
	BaseSalary    *numeric.Amount `json:"baseSalary,omitempty"`
	BankName      *string         `json:"bankName,omitempty"`
	BankBranch    *string         `json:"bankBranch,omitempty"`
	BankAccountNo *string         `json:"bankAccountNo,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}
	if r.BaseSalary != nil && r.BaseSalary.Float64() < 0 {
		errs = append(errs, validator.ValidationError{Field: "baseSalary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string          `json:"id"`
	EmpID         string          `json:"empId"`
	Name          string          `json:"name"`
	Designation   *string         `json:"designation,omitempty"`
	BaseSalary    decimal.Decimal `json:"baseSalary"`
	BankName      *string         `json:"bankName,omitempty"`
	BankBranch    *string         `json:"bankBranch,omitempty"`
	BankAccountNo *string         `json:"bankAccountNo,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		EmpID:         e.EmpID,
		Name:          e.Name,
		Designation:   e.Designation,
		BaseSalary:    e.BaseSalary,
		BankName:      e.BankName,
		BankBranch:    e.BankBranch,
		BankAccountNo: e.BankAccountNo,
	}
}
