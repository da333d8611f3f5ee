package attendance

import "errors"

var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrPeriodExists        = errors.New("attendance record already exists for this employee and period")
	ErrEmployeeNotResolved = errors.New("referenced employee does not exist")
)
