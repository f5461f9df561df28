package domain

import "errors"

var (
	ErrNoListingSelected = errors.New("no listing selected")
	ErrInvalidDateRange  = errors.New("check-out date must be after check-in date")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrListingNotFound   = errors.New("listing not found")
	ErrUnavailable       = errors.New("no listings available for this search")
	ErrCaptchaFailed     = errors.New("failed CAPTCHA verification, please try again")
	ErrAlreadySubscribed = errors.New("email already subscribed")
)

// ValidationError is a recoverable input problem. Message is shown to the user as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PolicyError rejects an action outright, e.g. a cancellation outside the window.
type PolicyError struct {
	Message string
}

func (e *PolicyError) Error() string {
	return e.Message
}
