package staff

import "errors"

var (
	ErrNotFound           = errors.New("staff member not found")
	ErrPhoneAlreadyExists = errors.New("phone number already registered")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidPhone       = errors.New("invalid phone number format")
	ErrInvalidRole        = errors.New("unknown staff role")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrSelfDemotion       = errors.New("cannot change or suspend your own account")
)
