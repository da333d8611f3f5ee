package transaction

import "errors"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrProductNotResolved  = errors.New("transaction references a product that does not exist")
)
