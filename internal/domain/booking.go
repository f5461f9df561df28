package domain

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type RoomType string

const (
	RoomTypeStandard RoomType = "Standard"
	RoomTypeDeluxe   RoomType = "Deluxe"
	RoomTypeSuite    RoomType = "Suite"
)

// Multiplier is the factor applied to the nightly rate. Anything that is not
// Deluxe or Suite is priced as Standard.
func (r RoomType) Multiplier() float64 {
	switch r {
	case RoomTypeDeluxe:
		return 1.2
	case RoomTypeSuite:
		return 1.5
	default:
		return 1.0
	}
}

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentDebitCard  PaymentMethod = "Debit Card"
	PaymentPayPal     PaymentMethod = "PayPal"
)

// RequiresCard is false for redirect-style methods, which collect payment
// details elsewhere.
func (p PaymentMethod) RequiresCard() bool {
	return p != PaymentPayPal
}

type SearchCriteria struct {
	Destination string    `json:"destination"`
	Origin      string    `json:"origin,omitempty"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out,omitzero"`
	Guests      int       `json:"guests"`
}

// Nights is the whole-day difference between check-out and check-in.
func (c SearchCriteria) Nights() int {
	return int(c.CheckOut.Sub(c.CheckIn) / (24 * time.Hour))
}

// Extras are flight ancillaries, charged once per booking in the base currency.
type Extras struct {
	SeatSelection bool `json:"seat_selection,omitempty"`
	ExtraBaggage  bool `json:"extra_baggage,omitempty"`
}

const (
	SeatSelectionFee = 5000.0
	ExtraBaggageFee  = 3000.0
)

func (e Extras) Any() bool {
	return e.SeatSelection || e.ExtraBaggage
}

// Fee is the pre-tax charge in the base currency.
func (e Extras) Fee() float64 {
	var fee float64
	if e.SeatSelection {
		fee += SeatSelectionFee
	}
	if e.ExtraBaggage {
		fee += ExtraBaggageFee
	}
	return fee
}

func (e Extras) Labels() []string {
	var out []string
	if e.SeatSelection {
		out = append(out, "Seat Selection")
	}
	if e.ExtraBaggage {
		out = append(out, "Extra Baggage")
	}
	return out
}

type GuestDetails struct {
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	RoomType        RoomType      `json:"room_type"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	CardNumber      string        `json:"card_number,omitempty"`
	CVV             string        `json:"cvv,omitempty"`
	ExpiryDate      string        `json:"expiry_date,omitempty"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	Extras          Extras        `json:"extras,omitzero"`
}

// Redacted keeps the last four card digits and drops the CVV.
func (g GuestDetails) Redacted() GuestDetails {
	if n := len(g.CardNumber); n > 4 {
		g.CardNumber = strings.Repeat("*", n-4) + g.CardNumber[n-4:]
	}
	g.CVV = ""
	return g
}

type Booking struct {
	ID          string         `json:"id"`
	PNR         string         `json:"pnr"`
	Listing     Listing        `json:"listing"`
	Criteria    SearchCriteria `json:"criteria"`
	Guest       GuestDetails   `json:"guest"`
	Currency    Currency       `json:"currency"`
	Total       float64        `json:"total"`
	Status      BookingStatus  `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	CancelledAt *time.Time     `json:"cancelled_at,omitempty"`
}
