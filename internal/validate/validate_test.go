package validate

import (
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func TestEmail(t *testing.T) {
	assert.False(t, Email("bad-email").Valid)
	assert.Equal(t, "Please enter a valid email address.", Email("bad-email").Message)
	assert.True(t, Email("a@b.com").Valid)
	assert.False(t, Email("a @b.com").Valid)
	assert.False(t, Email("a@b").Valid)
}

func TestPhone(t *testing.T) {
	testCases := []struct {
		in    string
		valid bool
	}{
		{"+923123632197", true},
		{"0312363219", true},
		{"123456789", false},
		{"1234567890123456", false},
		{"03-1236-3219", false},
		{"", false},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.valid, Phone(tc.in).Valid)
		})
	}
}

func TestCardNumber(t *testing.T) {
	assert.True(t, CardNumber("1234567890123456").Valid)
	assert.False(t, CardNumber("12345").Valid)
	assert.False(t, CardNumber("1234 5678 9012 3456").Valid)
}

func TestCVV(t *testing.T) {
	assert.True(t, CVV("123").Valid)
	assert.True(t, CVV("1234").Valid)
	assert.False(t, CVV("12").Valid)
	assert.False(t, CVV("12a").Valid)
}

func TestExpiry(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		msg  string
	}{
		{name: "next month", in: "07/26"},
		{name: "next year", in: "01/27"},
		{name: "current month", in: "06/26", msg: "Card expiry date must be in the future."},
		{name: "past", in: "12/25", msg: "Card expiry date must be in the future."},
		{name: "month 13", in: "13/27", msg: "Please enter a valid expiry date (MM/YY)."},
		{name: "long year", in: "07/2027", msg: "Please enter a valid expiry date (MM/YY)."},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := Expiry(tc.in, now)
			assert.Equal(t, tc.msg == "", r.Valid)
			assert.Equal(t, tc.msg, r.Message)
		})
	}
}

func validGuest() domain.GuestDetails {
	return domain.GuestDetails{
		Name:          "Fiza",
		Email:         "fiza@example.com",
		Phone:         "+923123632197",
		RoomType:      domain.RoomTypeStandard,
		PaymentMethod: domain.PaymentCreditCard,
		CardNumber:    "1234567890123456",
		CVV:           "123",
		ExpiryDate:    "12/28",
	}
}

func TestGuest(t *testing.T) {
	require.NoError(t, Guest(validGuest(), now))

	testCases := []struct {
		name  string
		edit  func(g *domain.GuestDetails)
		field string
	}{
		{name: "missing name", edit: func(g *domain.GuestDetails) { g.Name = " " }, field: "guest"},
		{name: "bad email", edit: func(g *domain.GuestDetails) { g.Email = "bad-email" }, field: "email"},
		{name: "bad phone", edit: func(g *domain.GuestDetails) { g.Phone = "123" }, field: "phone"},
		{name: "short card", edit: func(g *domain.GuestDetails) { g.CardNumber = "12345" }, field: "card_number"},
		{name: "bad cvv", edit: func(g *domain.GuestDetails) { g.CVV = "1" }, field: "cvv"},
		{name: "expired", edit: func(g *domain.GuestDetails) { g.ExpiryDate = "01/20" }, field: "expiry_date"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := validGuest()
			tc.edit(&g)

			err := Guest(g, now)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestGuest_PayPalSkipsCard(t *testing.T) {
	g := validGuest()
	g.PaymentMethod = domain.PaymentPayPal
	g.CardNumber, g.CVV, g.ExpiryDate = "", "", ""

	assert.NoError(t, Guest(g, now))
}

func TestCriteria(t *testing.T) {
	base := domain.SearchCriteria{
		Destination: "Karachi",
		CheckIn:     time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC),
		Guests:      2,
	}
	year := 365 * 24 * time.Hour
	require.NoError(t, Criteria(base, now, year))

	testCases := []struct {
		name  string
		edit  func(c *domain.SearchCriteria)
		field string
	}{
		{name: "empty destination", edit: func(c *domain.SearchCriteria) { c.Destination = "" }, field: "destination"},
		{name: "too far ahead", edit: func(c *domain.SearchCriteria) { c.CheckOut = now.AddDate(2, 0, 0) }, field: "dates"},
		{name: "same day", edit: func(c *domain.SearchCriteria) { c.CheckOut = c.CheckIn }, field: "check_out"},
		{name: "reversed", edit: func(c *domain.SearchCriteria) { c.CheckIn, c.CheckOut = c.CheckOut, c.CheckIn }, field: "check_out"},
		{name: "no guests", edit: func(c *domain.SearchCriteria) { c.Guests = 0 }, field: "guests"},
		{name: "missing check-in", edit: func(c *domain.SearchCriteria) { c.CheckIn = time.Time{} }, field: "check_out"},
		{name: "missing check-out", edit: func(c *domain.SearchCriteria) { c.CheckOut = time.Time{} }, field: "check_out"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			tc.edit(&c)

			var verr *domain.ValidationError
			require.True(t, errors.As(Criteria(c, now, year), &verr))
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestRoute(t *testing.T) {
	assert.NoError(t, Route("LHE", "DXB"))
	assert.Error(t, Route("LHE", "lhe"))
	assert.Error(t, Route("", "DXB"))
}
