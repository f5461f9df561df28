// Package validate holds the field predicates used by booking and contact
// forms. Every check is pure and returns the message shown to the user.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe  = regexp.MustCompile(`^\+?\d{10,15}$`)
	cardRe   = regexp.MustCompile(`^\d{16}$`)
	cvvRe    = regexp.MustCompile(`^\d{3,4}$`)
	expiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
)

type Result struct {
	Valid   bool
	Message string
}

func ok() Result { return Result{Valid: true} }

func fail(msg string) Result { return Result{Message: msg} }

func Email(s string) Result {
	if !emailRe.MatchString(s) {
		return fail("Please enter a valid email address.")
	}
	return ok()
}

func Phone(s string) Result {
	if !phoneRe.MatchString(s) {
		return fail("Please enter a valid phone number (10-15 digits).")
	}
	return ok()
}

func CardNumber(s string) Result {
	if !cardRe.MatchString(s) {
		return fail("Please enter a valid 16-digit card number.")
	}
	return ok()
}

func CVV(s string) Result {
	if !cvvRe.MatchString(s) {
		return fail("Please enter a valid CVV (3-4 digits).")
	}
	return ok()
}

// Expiry accepts MM/YY when the first day of that month is after now.
func Expiry(s string, now time.Time) Result {
	m := expiryRe.FindStringSubmatch(s)
	if m == nil {
		return fail("Please enter a valid expiry date (MM/YY).")
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])

	expires := time.Date(2000+year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
	if !expires.After(now) {
		return fail("Card expiry date must be in the future.")
	}
	return ok()
}

type check struct {
	field string
	res   func() Result
}

// Guest checks a booking form in the order the form presents its fields and
// reports the first failure.
func Guest(g domain.GuestDetails, now time.Time) error {
	if strings.TrimSpace(g.Name) == "" || strings.TrimSpace(g.Email) == "" || strings.TrimSpace(g.Phone) == "" {
		return &domain.ValidationError{Field: "guest", Message: "Please fill in all guest details."}
	}

	checks := []check{
		{"email", func() Result { return Email(g.Email) }},
		{"phone", func() Result { return Phone(g.Phone) }},
	}
	if g.PaymentMethod.RequiresCard() {
		checks = append(checks,
			check{"card_number", func() Result { return CardNumber(g.CardNumber) }},
			check{"cvv", func() Result { return CVV(g.CVV) }},
			check{"expiry_date", func() Result { return Expiry(g.ExpiryDate, now) }},
		)
	}

	for _, c := range checks {
		if r := c.res(); !r.Valid {
			return &domain.ValidationError{Field: c.field, Message: r.Message}
		}
	}
	return nil
}

// Criteria checks a hotel search. maxAdvance bounds how far ahead either date may be.
func Criteria(c domain.SearchCriteria, now time.Time, maxAdvance time.Duration) error {
	if strings.TrimSpace(c.Destination) == "" {
		return &domain.ValidationError{Field: "destination", Message: "Please enter a destination."}
	}
	if c.CheckIn.IsZero() || c.CheckOut.IsZero() {
		return &domain.ValidationError{Field: "check_out", Message: "Check-out date must be after check-in date."}
	}
	limit := now.Add(maxAdvance)
	if c.CheckIn.After(limit) || c.CheckOut.After(limit) {
		return &domain.ValidationError{Field: "dates", Message: "Dates cannot be more than one year in the future."}
	}
	if !c.CheckOut.After(c.CheckIn) {
		return &domain.ValidationError{Field: "check_out", Message: "Check-out date must be after check-in date."}
	}
	if c.Guests < 1 {
		return &domain.ValidationError{Field: "guests", Message: "Please select at least one guest."}
	}
	return nil
}

// Route checks a flight search: both ends present and different.
func Route(origin, destination string) error {
	o, d := strings.TrimSpace(origin), strings.TrimSpace(destination)
	if o == "" || d == "" || strings.EqualFold(o, d) {
		return &domain.ValidationError{Field: "route", Message: "Please enter valid origin and destination cities."}
	}
	return nil
}
