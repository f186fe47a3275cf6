package scheduling

import "errors"

var (
	ErrWindowNotFound    = errors.New("schedule window not found")
	ErrOverlappingWindow = errors.New("schedule window overlaps an existing one")
	ErrInvalidWindow     = errors.New("schedule window times are invalid")
	ErrDoctorNotFound    = errors.New("doctor not found")
)
