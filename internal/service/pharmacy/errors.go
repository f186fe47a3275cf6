package pharmacy

import "errors"

var (
	ErrDrugNotFound      = errors.New("drug not found")
	ErrSaleNotFound      = errors.New("pharmacy sale not found")
	ErrNoItems           = errors.New("sale needs at least one item")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDrugExpired       = errors.New("drug batch is expired")
	ErrNegativePayment   = errors.New("amount paid cannot be negative")
	ErrOverpayment       = errors.New("payment exceeds outstanding balance")
	ErrNumberExhausted   = errors.New("could not assign sale number, try again")
)
