package prescription

import "errors"

var (
	ErrNotFound        = errors.New("prescription not found")
	ErrNoMedicines     = errors.New("prescription needs at least one medicine")
	ErrNumberExhausted = errors.New("could not assign prescription number, try again")
)
