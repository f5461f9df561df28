package booking

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

type HistorySort string

const (
	HistoryDateDesc  HistorySort = "date-desc"
	HistoryDateAsc   HistorySort = "date-asc"
	HistoryPriceAsc  HistorySort = "price-asc"
	HistoryPriceDesc HistorySort = "price-desc"
	HistoryNameAsc   HistorySort = "name-asc"
)

// HistoryFilter selects bookings by status and creation time. From is
// inclusive, Until exclusive; zero values disable the bound. An empty Status
// or "All" matches every booking.
type HistoryFilter struct {
	Status domain.BookingStatus
	From   time.Time
	Until  time.Time
	SortBy HistorySort
}

const StatusAll domain.BookingStatus = "All"

// ApplyHistoryFilter returns a new slice; the input is left untouched.
func ApplyHistoryFilter(bookings []domain.Booking, f HistoryFilter) []domain.Booking {
	out := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if f.Status != "" && f.Status != StatusAll && b.Status != f.Status {
			continue
		}
		if !f.From.IsZero() && b.CreatedAt.Before(f.From) {
			continue
		}
		if !f.Until.IsZero() && !b.CreatedAt.Before(f.Until) {
			continue
		}
		out = append(out, b)
	}

	switch f.SortBy {
	case HistoryDateDesc, "":
		slices.SortStableFunc(out, func(a, b domain.Booking) int { return b.CreatedAt.Compare(a.CreatedAt) })
	case HistoryDateAsc:
		slices.SortStableFunc(out, func(a, b domain.Booking) int { return a.CreatedAt.Compare(b.CreatedAt) })
	case HistoryPriceAsc:
		slices.SortStableFunc(out, func(a, b domain.Booking) int { return cmp.Compare(a.Total, b.Total) })
	case HistoryPriceDesc:
		slices.SortStableFunc(out, func(a, b domain.Booking) int { return cmp.Compare(b.Total, a.Total) })
	case HistoryNameAsc:
		slices.SortStableFunc(out, func(a, b domain.Booking) int {
			return strings.Compare(strings.ToLower(a.Listing.Name), strings.ToLower(b.Listing.Name))
		})
	}
	return out
}
