package lab

import "errors"

var (
	ErrOrderNotFound    = errors.New("lab order not found")
	ErrTestNotFound     = errors.New("lab test not found")
	ErrResultNotFound   = errors.New("lab result not found")
	ErrNoTests          = errors.New("lab order needs at least one test")
	ErrOrderCancelled   = errors.New("lab order is cancelled")
	ErrResultNotEntered = errors.New("result has no value to verify")
	ErrAlreadyVerified  = errors.New("result is already verified")
	ErrOverpayment      = errors.New("payment exceeds outstanding balance")
	ErrNumberExhausted  = errors.New("could not assign order number, try again")
)
