package pricing

import (
	"testing"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func criteria(nights int) domain.SearchCriteria {
	in := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return domain.SearchCriteria{Destination: "Karachi", CheckIn: in, CheckOut: in.AddDate(0, 0, nights), Guests: 2}
}

func TestCalculator_Quote_Hotel(t *testing.T) {
	calc := NewCalculator(0.15)
	hotel := &domain.Listing{ID: "1", Kind: domain.ListingKindHotel, Price: 15000}

	testCases := []struct {
		name     string
		room     domain.RoomType
		currency domain.Currency
		nights   int
	}{
		{"standard pkr", domain.RoomTypeStandard, domain.CurrencyPKR, 2},
		{"deluxe usd", domain.RoomTypeDeluxe, domain.CurrencyUSD, 3},
		{"suite sar", domain.RoomTypeSuite, domain.CurrencySAR, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := calc.Quote(hotel, criteria(tc.nights), tc.room, tc.currency)
			require.NoError(t, err)

			want := hotel.Price * tc.currency.Rate() * tc.room.Multiplier() * float64(tc.nights) * 1.15
			assert.InDelta(t, want, q.Total, 1e-6)
			assert.Equal(t, tc.nights, q.Units)
			assert.InDelta(t, q.Total, q.Subtotal+q.Taxes, 1e-9)
			assert.Equal(t, tc.currency, q.Currency)
		})
	}
}

func TestCalculator_Quote_KnownTotal(t *testing.T) {
	q, err := NewCalculator(0.15).Quote(&domain.Listing{Price: 15000}, criteria(2), domain.RoomTypeStandard, domain.CurrencyPKR)
	require.NoError(t, err)
	assert.InDelta(t, 34500.0, q.Total, 1e-6)
	assert.InDelta(t, 4500.0, q.Taxes, 1e-6)
}

func TestCalculator_TaxRate(t *testing.T) {
	assert.Equal(t, 0.0, NewCalculator(0).TaxRate())
	assert.Equal(t, DefaultTaxRate, NewCalculator(-1).TaxRate())

	q, err := NewCalculator(0).Quote(&domain.Listing{Price: 15000}, criteria(2), domain.RoomTypeStandard, domain.CurrencyPKR)
	require.NoError(t, err)
	assert.InDelta(t, 30000.0, q.Total, 1e-6)
	assert.Zero(t, q.Taxes)
}

func TestCalculator_Quote_Flight(t *testing.T) {
	flight := &domain.Listing{ID: "1", Kind: domain.ListingKindFlight, Price: 45000}
	c := domain.SearchCriteria{Origin: "LHE", Destination: "DXB", Guests: 3}

	q, err := NewCalculator(0.15).Quote(flight, c, domain.RoomTypeSuite, domain.CurrencyPKR)
	require.NoError(t, err)
	assert.Equal(t, 3, q.Units)
	assert.InDelta(t, 45000*3*1.15, q.Total, 1e-6)
}

func TestCalculator_Quote_FlightExtras(t *testing.T) {
	flight := &domain.Listing{ID: "F1", Kind: domain.ListingKindFlight, Price: 45000}
	c := domain.SearchCriteria{Origin: "LHE", Destination: "DXB", Guests: 2}
	extras := domain.Extras{SeatSelection: true, ExtraBaggage: true}

	q, err := NewCalculator(0.15).Quote(flight, c, "", domain.CurrencyUSD, WithExtras(extras))
	require.NoError(t, err)
	assert.InDelta(t, 8000*0.0036, q.Extras, 1e-9)
	assert.InDelta(t, (45000*2+8000)*0.0036, q.Subtotal, 1e-9)
	assert.InDelta(t, (45000*2+8000)*0.0036*1.15, q.Total, 1e-9)

	hotel, err := NewCalculator(0.15).Quote(&domain.Listing{Price: 15000}, criteria(2), domain.RoomTypeStandard, domain.CurrencyPKR, WithExtras(extras))
	require.NoError(t, err)
	assert.Zero(t, hotel.Extras)
	assert.InDelta(t, 34500.0, hotel.Total, 1e-6)
}

func TestCalculator_Quote_Errors(t *testing.T) {
	calc := NewCalculator(0.15)

	_, err := calc.Quote(nil, criteria(2), domain.RoomTypeStandard, domain.CurrencyPKR)
	assert.ErrorIs(t, err, domain.ErrNoListingSelected)

	_, err = calc.Quote(&domain.Listing{Price: 1}, criteria(0), domain.RoomTypeStandard, domain.CurrencyPKR)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = calc.Quote(&domain.Listing{Price: 1}, criteria(-1), domain.RoomTypeStandard, domain.CurrencyPKR)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}
