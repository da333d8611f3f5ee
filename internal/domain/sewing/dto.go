package sewing

import (
	"time"

	"github.com/packpal/packpal-backend-go/internal/pkg/validator"
)

type CreateInstructionRequest struct {
	Bag      string `json:"bag"`
	Person   string `json:"person"`
	Deadline string `json:"deadline,omitempty"` // "YYYY-MM-DD"
	Priority string `json:"priority"`
}

func (r *CreateInstructionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Bag) {
		errs = append(errs, validator.ValidationError{Field: "bag", Message: "is required"})
	}
	if validator.IsEmpty(r.Person) {
		errs = append(errs, validator.ValidationError{Field: "person", Message: "is required"})
	}
	if r.Deadline != "" {
		if _, ok := validator.IsValidDate(r.Deadline); !ok {
			errs = append(errs, validator.ValidationError{Field: "deadline", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.Priority == "" {
		r.Priority = string(PriorityMedium)
	}
	if !validator.IsInSlice(r.Priority, Priorities) {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "must be Low, Medium or High"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateInstructionRequest struct {
	ID       string  `json:"-"`
	Bag      *string `json:"bag,omitempty"`
	Person   *string `json:"person,omitempty"`
	Deadline *string `json:"deadline,omitempty"`
	Priority *string `json:"priority,omitempty"`
}

func (r *UpdateInstructionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Bag != nil && validator.IsEmpty(*r.Bag) {
		errs = append(errs, validator.ValidationError{Field: "bag", Message: "cannot be empty"})
	}
	if r.Person != nil && validator.IsEmpty(*r.Person) {
		errs = append(errs, validator.ValidationError{Field: "person", Message: "cannot be empty"})
	}
	if r.Deadline != nil && *r.Deadline != "" {
		if _, ok := validator.IsValidDate(*r.Deadline); !ok {
			errs = append(errs, validator.ValidationError{Field: "deadline", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.Priority != nil && !validator.IsInSlice(*r.Priority, Priorities) {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "must be Low, Medium or High"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateStatusRequest moves an instruction through the workflow. QCNote is
// recorded when the move lands on Done or Failed.
type UpdateStatusRequest struct {
	ID     string  `json:"-"`
	Status string  `json:"status"`
	QCNote *string `json:"qcNote,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	if !validator.IsInSlice(r.Status, Statuses) {
		return validator.ValidationErrors{{Field: "status", Message: "unknown status"}}
	}
	return nil
}

type InstructionResponse struct {
	ID       string     `json:"id"`
	Bag      string     `json:"bag"`
	Person   string     `json:"person"`
	Deadline *time.Time `json:"deadline,omitempty"`
	Priority Priority   `json:"priority"`
	Status   Status     `json:"status"`
	QCDate   *time.Time `json:"qcDate,omitempty"`
	QCNote   *string    `json:"qcNote,omitempty"`
}

func ToResponse(i Instruction) InstructionResponse {
	return InstructionResponse{
		ID:       i.ID,
		Bag:      i.Bag,
		Person:   i.Person,
		Deadline: i.Deadline,
		Priority: i.Priority,
		Status:   i.Status,
		QCDate:   i.QCDate,
		QCNote:   i.QCNote,
	}
}
