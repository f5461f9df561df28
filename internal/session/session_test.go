package session

import (
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/travelbooking/internal/catalog"
	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/service/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitial(t *testing.T) {
	s := Initial()

	assert.Equal(t, PhaseIdle, s.Phase)
	assert.Equal(t, domain.CurrencyPKR, s.Currency)
	assert.Equal(t, domain.RoomTypeStandard, s.Guest.RoomType)
	assert.Equal(t, booking.HistoryDateDesc, s.History.SortBy)
}

func TestReduce_BookingFlow(t *testing.T) {
	criteria := domain.SearchCriteria{
		Destination: "Karachi",
		CheckIn:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		Guests:      2,
	}
	hotels := catalog.Hotels()[:2]

	s := Reduce(Initial(), SearchRequested{Criteria: criteria})
	assert.Equal(t, PhaseSearching, s.Phase)
	assert.Equal(t, criteria, s.Criteria)

	s = Reduce(s, ResultsLoaded{Results: hotels})
	assert.Equal(t, PhaseResults, s.Phase)
	require.Len(t, s.Results, 2)

	s = Reduce(s, ListingSelected{Listing: hotels[1]})
	require.NotNil(t, s.Selected)
	assert.Equal(t, hotels[1].ID, s.Selected.ID)

	s = Reduce(s, GuestUpdated{Guest: domain.GuestDetails{Name: "Ali", RoomType: domain.RoomTypeSuite}})
	s = Reduce(s, BookingFailed{Err: errors.New("Please enter a valid email address.")})
	assert.Equal(t, "Please enter a valid email address.", s.Error)
	assert.Equal(t, PhaseSelected, s.Phase)

	confirmed := domain.Booking{ID: "b1", PNR: "ABC2-AAAAAAAA", Listing: hotels[1]}
	s = Reduce(s, BookingConfirmed{Booking: confirmed})
	assert.Equal(t, PhaseConfirmed, s.Phase)
	assert.Empty(t, s.Error)
	assert.Nil(t, s.Selected)
	assert.Equal(t, "ABC2-AAAAAAAA", s.LastConfirmation.PNR)
	assert.Equal(t, domain.RoomTypeStandard, s.Guest.RoomType)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	results := catalog.Hotels()[:3]
	before := Reduce(Initial(), ResultsLoaded{Results: results})
	snapshot := before.Results[0].Name

	results[0].Name = "mutated by caller"
	after := Reduce(before, ListingSelected{Listing: before.Results[1]})
	after = Reduce(after, SearchRequested{Criteria: domain.SearchCriteria{Destination: "Dubai"}})

	assert.Equal(t, snapshot, before.Results[0].Name)
	assert.Equal(t, PhaseResults, before.Phase)
	assert.Nil(t, before.Selected)
	assert.Nil(t, after.Results)
}

func TestReduce_SearchFailed(t *testing.T) {
	s := Reduce(Initial(), SearchRequested{Criteria: domain.SearchCriteria{Destination: "Quetta"}})
	s = Reduce(s, SearchFailed{Err: domain.ErrUnavailable})

	assert.Equal(t, PhaseIdle, s.Phase)
	assert.Equal(t, domain.ErrUnavailable.Error(), s.Error)
	assert.Nil(t, s.Results)
}

func TestReduce_CurrencyAndHistory(t *testing.T) {
	s := Reduce(Initial(), CurrencyChanged{Currency: domain.CurrencySAR})
	assert.Equal(t, domain.CurrencySAR, s.Currency)

	s = Reduce(s, CurrencyChanged{})
	assert.Equal(t, domain.CurrencySAR, s.Currency)

	filter := booking.HistoryFilter{Status: domain.BookingStatusCancelled, SortBy: booking.HistoryPriceAsc}
	s = Reduce(s, HistoryFilterChanged{Filter: filter})
	assert.Equal(t, filter, s.History)

	assert.Equal(t, Initial(), Reduce(s, Reset{}))
}
