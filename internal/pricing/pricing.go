package pricing

import (
	"github.com/Domenick1991/travelbooking/internal/domain"
)

const DefaultTaxRate = 0.15

type Quote struct {
	Currency    domain.Currency `json:"currency"`
	NightlyRate float64         `json:"nightly_rate"`
	Units       int             `json:"units"`
	Extras      float64         `json:"extras,omitempty"`
	Subtotal    float64         `json:"subtotal"`
	Taxes       float64         `json:"taxes"`
	Total       float64         `json:"total"`
}

type Calculator struct {
	taxRate float64
}

// NewCalculator uses DefaultTaxRate for a negative rate. Zero means untaxed.
func NewCalculator(taxRate float64) *Calculator {
	if taxRate < 0 {
		taxRate = DefaultTaxRate
	}
	return &Calculator{taxRate: taxRate}
}

type quoteOptions struct {
	extras domain.Extras
}

type QuoteOption func(*quoteOptions)

// WithExtras adds flight ancillaries to a flight quote. Hotels ignore them.
func WithExtras(extras domain.Extras) QuoteOption {
	return func(o *quoteOptions) {
		o.extras = extras
	}
}

func (c *Calculator) TaxRate() float64 {
	return c.taxRate
}

// Quote prices a stay or a ticket in the requested currency.
//
// Hotels: price * rate * roomMultiplier * nights * (1 + tax).
// Flights: (price * rate * passengers + extras * rate) * (1 + tax); room type is ignored.
func (c *Calculator) Quote(listing *domain.Listing, criteria domain.SearchCriteria, room domain.RoomType, currency domain.Currency, opts ...QuoteOption) (Quote, error) {
	if listing == nil {
		return Quote{}, domain.ErrNoListingSelected
	}
	var o quoteOptions
	for _, opt := range opts {
		opt(&o)
	}

	q := Quote{Currency: currency}
	switch listing.Kind {
	case domain.ListingKindFlight:
		q.NightlyRate = listing.Price * currency.Rate()
		q.Units = criteria.Guests
		if q.Units < 1 {
			q.Units = 1
		}
		q.Extras = currency.Convert(o.extras.Fee())
	default:
		nights := criteria.Nights()
		if nights <= 0 {
			return Quote{}, domain.ErrInvalidDateRange
		}
		q.NightlyRate = listing.Price * currency.Rate() * room.Multiplier()
		q.Units = nights
	}

	q.Subtotal = q.NightlyRate*float64(q.Units) + q.Extras
	q.Total = q.Subtotal * (1 + c.taxRate)
	q.Taxes = q.Total - q.Subtotal
	return q, nil
}
