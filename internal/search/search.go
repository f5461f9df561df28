// Package search filters and orders listings. Sorting is stable, so listings
// that compare equal keep their catalog order.
package search

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Domenick1991/travelbooking/internal/catalog"
	"github.com/Domenick1991/travelbooking/internal/domain"
)

type HotelSort string

const (
	SortPriceAsc    HotelSort = "price-asc"
	SortPriceDesc   HotelSort = "price-desc"
	SortRatingDesc  HotelSort = "rating-desc"
	SortDistanceAsc HotelSort = "distance-asc"
)

type FlightSort string

const (
	SortCheapest FlightSort = "cheapest"
	SortFastest  FlightSort = "fastest"
	SortEarliest FlightSort = "earliest"
)

// HotelFilter bounds are inclusive. A zero PriceMax or MaxDistanceKm means no ceiling.
// Prices are compared after conversion to Currency.
type HotelFilter struct {
	Destination   string
	Currency      domain.Currency
	PriceMin      float64
	PriceMax      float64
	MinRating     float64
	MaxDistanceKm float64
	Amenities     []string
	SortBy        HotelSort
}

type FlightFilter struct {
	Origin      string
	Destination string
	Currency    domain.Currency
	MaxPrice    float64
	Stops       *int
	CabinClass  string
	SortBy      FlightSort
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(substr)))
}

func currencyOf(c domain.Currency) domain.Currency {
	if c == "" {
		return domain.BaseCurrency
	}
	return c
}

// MatchesHotel reports whether l passes every active predicate of f.
func MatchesHotel(l domain.Listing, f HotelFilter) bool {
	if l.Kind != domain.ListingKindHotel {
		return false
	}
	if f.Destination != "" && !containsFold(l.Location, f.Destination) {
		return false
	}
	price := currencyOf(f.Currency).Convert(l.Price)
	if price < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && price > f.PriceMax {
		return false
	}
	if l.Rating < f.MinRating {
		return false
	}
	if f.MaxDistanceKm > 0 && l.DistanceKm > f.MaxDistanceKm {
		return false
	}
	return l.HasAmenities(f.Amenities)
}

func Hotels(listings []domain.Listing, f HotelFilter) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if MatchesHotel(l, f) {
			out = append(out, l)
		}
	}

	// Conversion is a positive scalar, so ordering by base price is the same
	// as ordering by displayed price.
	switch f.SortBy {
	case SortPriceAsc, "":
		slices.SortStableFunc(out, func(a, b domain.Listing) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b domain.Listing) int { return cmp.Compare(b.Price, a.Price) })
	case SortRatingDesc:
		slices.SortStableFunc(out, func(a, b domain.Listing) int { return cmp.Compare(b.Rating, a.Rating) })
	case SortDistanceAsc:
		slices.SortStableFunc(out, func(a, b domain.Listing) int { return cmp.Compare(a.DistanceKm, b.DistanceKm) })
	}
	return out
}

// MatchesFlight reports whether l passes every active predicate of f.
func MatchesFlight(l domain.Listing, f FlightFilter) bool {
	if l.Kind != domain.ListingKindFlight {
		return false
	}
	if f.Origin != "" && !containsFold(l.Origin, f.Origin) {
		return false
	}
	if f.Destination != "" && !containsFold(l.Destination, f.Destination) {
		return false
	}
	if f.MaxPrice > 0 && currencyOf(f.Currency).Convert(l.Price) > f.MaxPrice {
		return false
	}
	if f.Stops != nil && l.Stops != *f.Stops {
		return false
	}
	if f.CabinClass != "" && !strings.EqualFold(l.CabinClass, f.CabinClass) {
		return false
	}
	return true
}

func Flights(listings []domain.Listing, f FlightFilter) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if MatchesFlight(l, f) {
			out = append(out, l)
		}
	}

	switch f.SortBy {
	case SortCheapest, "":
		slices.SortStableFunc(out, func(a, b domain.Listing) int { return cmp.Compare(a.Price, b.Price) })
	case SortFastest:
		slices.SortStableFunc(out, func(a, b domain.Listing) int { return cmp.Compare(a.Duration, b.Duration) })
	case SortEarliest:
		slices.SortStableFunc(out, func(a, b domain.Listing) int { return a.DepartureTime.Compare(b.DepartureTime) })
	}
	return out
}

// SuggestCities returns catalog cities starting with prefix, case-insensitively.
func SuggestCities(prefix string) []string {
	p := strings.ToLower(strings.TrimSpace(prefix))
	if p == "" {
		return []string{}
	}
	out := make([]string, 0)
	for _, c := range catalog.Cities {
		if strings.HasPrefix(strings.ToLower(c), p) {
			out = append(out, c)
		}
	}
	return out
}

// SuggestAirports matches q against airport codes and names.
func SuggestAirports(q string) []catalog.Airport {
	if strings.TrimSpace(q) == "" {
		return []catalog.Airport{}
	}
	out := make([]catalog.Airport, 0)
	for _, a := range catalog.Airports {
		if containsFold(a.Code, q) || containsFold(a.Name, q) {
			out = append(out, a)
		}
	}
	return out
}
