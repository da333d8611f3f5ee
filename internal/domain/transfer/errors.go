package transfer

import "errors"

var (
	ErrTransferNotFound    = errors.New("transfer not found")
	ErrTransferAlreadyPaid = errors.New("transfer already marked as paid")
	ErrMonthExists         = errors.New("transfer already exists for this employee and month")
)
