package inventory

import "errors"

var (
	ErrItemNotFound       = errors.New("inventory item not found")
	ErrItemIDExists       = errors.New("inventory item id already exists")
	ErrPurchaseNotFound   = errors.New("purchase not found")
	ErrItemNotResolved    = errors.New("purchase references an item that does not exist")
	ErrPurchaseNotPending = errors.New("purchase is not pending")
)
