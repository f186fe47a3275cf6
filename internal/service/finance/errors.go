package finance

import "errors"

var (
	ErrInvalidPeriod    = errors.New("unknown aggregation period")
	ErrMissingDateRange = errors.New("custom period requires both from and to dates")
	ErrInvalidDateRange = errors.New("date range end is before start")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidSplit     = errors.New("commission split exceeds the total amount")
)
