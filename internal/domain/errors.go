package domain

import "errors"

var (
	// ErrValidation covers bad constructor input: non-positive rate,
	// capacity or amount, check-out on or before check-in.
	ErrValidation = errors.New("validation error")

	// ErrInvalidTransition is the business refusal for lifecycle calls
	// whose guard fails. Never fatal, the caller decides what to tell
	// the user.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNotWithinStay refuses a check-in attempted outside the
	// booked date window.
	ErrNotWithinStay = errors.New("today is outside the booked stay window")
)
