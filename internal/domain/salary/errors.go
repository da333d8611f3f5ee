package salary

import "errors"

var ErrEmployeeNotFound = errors.New("employee not found for salary calculation")
