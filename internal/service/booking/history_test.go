package booking

import (
	"testing"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/stretchr/testify/assert"
)

func historyFixture() []domain.Booking {
	day := func(d int) time.Time { return time.Date(2025, 3, d, 12, 0, 0, 0, time.UTC) }
	mk := func(id, name string, total float64, created time.Time, status domain.BookingStatus) domain.Booking {
		return domain.Booking{ID: id, Listing: domain.Listing{Name: name}, Total: total, CreatedAt: created, Status: status}
	}
	return []domain.Booking{
		mk("a", "Pearl Continental", 300, day(1), domain.BookingStatusConfirmed),
		mk("b", "avari Towers", 100, day(3), domain.BookingStatusCancelled),
		mk("c", "Marriott", 200, day(2), domain.BookingStatusConfirmed),
		mk("d", "Beach Luxury", 100, day(4), domain.BookingStatusConfirmed),
	}
}

func bookingIDs(bookings []domain.Booking) []string {
	out := make([]string, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.ID)
	}
	return out
}

func TestApplyHistoryFilter(t *testing.T) {
	testCases := []struct {
		name   string
		filter HistoryFilter
		want   []string
	}{
		{name: "default sort is newest first", filter: HistoryFilter{}, want: []string{"d", "b", "c", "a"}},
		{name: "all status", filter: HistoryFilter{Status: StatusAll, SortBy: HistoryDateAsc}, want: []string{"a", "c", "b", "d"}},
		{name: "cancelled only", filter: HistoryFilter{Status: domain.BookingStatusCancelled}, want: []string{"b"}},
		{name: "price ascending keeps ties in input order", filter: HistoryFilter{SortBy: HistoryPriceAsc}, want: []string{"b", "d", "c", "a"}},
		{name: "price descending", filter: HistoryFilter{SortBy: HistoryPriceDesc}, want: []string{"a", "c", "b", "d"}},
		{name: "name ascending ignores case", filter: HistoryFilter{SortBy: HistoryNameAsc}, want: []string{"b", "d", "c", "a"}},
		{
			name: "date range",
			filter: HistoryFilter{
				From:   time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
				Until:  time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
				SortBy: HistoryDateAsc,
			},
			want: []string{"c", "b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := historyFixture()
			got := ApplyHistoryFilter(input, tc.filter)

			assert.Equal(t, tc.want, bookingIDs(got))
			assert.Equal(t, []string{"a", "b", "c", "d"}, bookingIDs(input))
		})
	}
}
