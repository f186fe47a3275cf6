package queue

import "errors"

var (
	ErrNotFound          = errors.New("appointment not found")
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrNoPatientWaiting  = errors.New("no patient waiting in queue")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyTerminal   = errors.New("appointment is already in a terminal state")
	ErrDateNotBookable   = errors.New("doctor has no bookable schedule on this date")
	ErrQueueFull         = errors.New("doctor's queue is full for this date")
	ErrSerialContention  = errors.New("could not assign serial number, try again")
	ErrOverpayment       = errors.New("payment exceeds outstanding balance")
)
