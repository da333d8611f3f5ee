package advance

import "errors"

var (
	ErrAdvanceNotFound     = errors.New("advance record not found")
	ErrPeriodExists        = errors.New("advance record already exists for this employee and period")
	ErrEmployeeNotResolved = errors.New("referenced employee does not exist")
)
