package contribution

import "errors"

var (
	ErrContributionNotFound = errors.New("contribution not found")
	ErrPeriodExists         = errors.New("contribution already exists for this period")
	ErrAlreadyPaid          = errors.New("contribution already marked as paid")
)
