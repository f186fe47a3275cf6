package canteen

import "errors"

var (
	ErrItemNotFound    = errors.New("canteen item not found")
	ErrSaleNotFound    = errors.New("canteen sale not found")
	ErrNoItems         = errors.New("sale needs at least one item")
	ErrItemUnavailable = errors.New("canteen item is not available")
	ErrNumberExhausted = errors.New("could not assign sale number, try again")
)
