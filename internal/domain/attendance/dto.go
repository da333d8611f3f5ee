package attendance

import (
	"github.com/packpal/packpal-backend-go/internal/pkg/numeric"
	"github.com/packpal/packpal-backend-go/internal/pkg/period"
	"github.com/packpal/packpal-backend-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmpID        string         `json:"empId"`
	Period       string         `json:"period"`
	WorkingDays  numeric.Amount `json:"workingDays"`
	OvertimeHrs  numeric.Amount `json:"overtimeHrs"`
	LeaveAllowed numeric.Amount `json:"leaveAllowed"`
	NoPayLeave   numeric.Amount `json:"noPayLeave"`
	LeaveTaken   numeric.Amount `json:"leaveTaken"`
	Other        numeric.Amount `json:"other"`
}

func (r *CreateAttendanceRequest) Validate() error {
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
		"workingDays":  r.WorkingDays.Float64(),
		"overtimeHrs":  r.OvertimeHrs.Float64(),
		"leaveAllowed": r.LeaveAllowed.Float64(),
		"noPayLeave":   r.NoPayLeave.Float64(),
		"leaveTaken":   r.LeaveTaken.Float64(),
		"other":        r.Other.Float64(),
	} {
		if v < 0 {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	if r.WorkingDays.Float64() > 31 {
		errs = append(errs, validator.ValidationError{Field: "workingDays", Message: "cannot exceed 31"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID           string          `json:"-"`
	WorkingDays  *numeric.Amount `json:"workingDays,omitempty"`
	OvertimeHrs  *numeric.Amount `json:"overtimeHrs,omitempty"`
	LeaveAllowed *numeric.Amount `json:"leaveAllowed,omitempty"`
	NoPayLeave   *numeric.Amount `json:"noPayLeave,omitempty"`
	LeaveTaken   *numeric.Amount `json:"leaveTaken,omitempty"`
	Other        *numeric.Amount `json:"other,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	check := func(field string, v *numeric.Amount) {
		if v != nil && v.Float64() < 0 {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	check("workingDays", r.WorkingDays)
	check("overtimeHrs", r.OvertimeHrs)
	check("leaveAllowed", r.LeaveAllowed)
	check("noPayLeave", r.NoPayLeave)
	check("leaveTaken", r.LeaveTaken)
	check("other", r.Other)
	if r.WorkingDays != nil && r.WorkingDays.Float64() > 31 {
		errs = append(errs, validator.ValidationError{Field: "workingDays", Message: "cannot exceed 31"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmpID        string  `json:"empId"`
	Period       string  `json:"period"`
	WorkingDays  float64 `json:"workingDays"`
	OvertimeHrs  float64 `json:"overtimeHrs"`
	LeaveAllowed float64 `json:"leaveAllowed"`
	NoPayLeave   float64 `json:"noPayLeave"`
	LeaveTaken   float64 `json:"leaveTaken"`
	Other        float64 `json:"other"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmpID:        a.EmpID,
		Period:       a.Period,
		WorkingDays:  a.WorkingDays,
		OvertimeHrs:  a.OvertimeHrs,
		LeaveAllowed: a.LeaveAllowed,
		NoPayLeave:   a.NoPayLeave,
		LeaveTaken:   a.LeaveTaken,
		Other:        a.Other,
	}
}

// LookupResponse carries the record served for (empId, period) plus whether
// it is the exact period or a carried-forward older record.
type LookupResponse struct {
	Record     *AttendanceResponse `json:"record"`
	FromPeriod string              `json:"fromPeriod,omitempty"`
	Fallback   bool                `json:"fallback"`
}
