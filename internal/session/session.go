// Package session models one visitor's booking flow as plain state plus a
// reducer. Reduce never mutates its input; callers keep the returned value.
package session

import (
	"slices"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/service/booking"
)

type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseSearching Phase = "searching"
	PhaseResults   Phase = "results"
	PhaseSelected  Phase = "selected"
	PhaseConfirmed Phase = "confirmed"
)

type State struct {
	Phase            Phase
	Criteria         domain.SearchCriteria
	Currency         domain.Currency
	Results          []domain.Listing
	Selected         *domain.Listing
	Guest            domain.GuestDetails
	Error            string
	LastConfirmation *domain.Booking
	History          booking.HistoryFilter
}

func Initial() State {
	return State{
		Phase:    PhaseIdle,
		Currency: domain.BaseCurrency,
		Guest:    blankGuest(),
		History:  booking.HistoryFilter{Status: booking.StatusAll, SortBy: booking.HistoryDateDesc},
	}
}

func blankGuest() domain.GuestDetails {
	return domain.GuestDetails{RoomType: domain.RoomTypeStandard, PaymentMethod: domain.PaymentCreditCard}
}

type Action interface {
	action()
}

type (
	SearchRequested      struct{ Criteria domain.SearchCriteria }
	ResultsLoaded        struct{ Results []domain.Listing }
	SearchFailed         struct{ Err error }
	ListingSelected      struct{ Listing domain.Listing }
	GuestUpdated         struct{ Guest domain.GuestDetails }
	CurrencyChanged      struct{ Currency domain.Currency }
	BookingConfirmed     struct{ Booking domain.Booking }
	BookingFailed        struct{ Err error }
	HistoryFilterChanged struct{ Filter booking.HistoryFilter }
	Reset                struct{}
)

func (SearchRequested) action()      {}
func (ResultsLoaded) action()        {}
func (SearchFailed) action()         {}
func (ListingSelected) action()      {}
func (GuestUpdated) action()         {}
func (CurrencyChanged) action()      {}
func (BookingConfirmed) action()     {}
func (BookingFailed) action()        {}
func (HistoryFilterChanged) action() {}
func (Reset) action()                {}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func Reduce(s State, a Action) State {
	// Results and the pointers are shared with s; every branch that changes
	// them assigns fresh values instead of writing through.
	switch a := a.(type) {
	case SearchRequested:
		s.Phase = PhaseSearching
		s.Criteria = a.Criteria
		s.Results = nil
		s.Selected = nil
		s.Error = ""
	case ResultsLoaded:
		s.Phase = PhaseResults
		s.Results = slices.Clone(a.Results)
		s.Error = ""
	case SearchFailed:
		s.Phase = PhaseIdle
		s.Results = nil
		s.Error = errText(a.Err)
	case ListingSelected:
		l := a.Listing
		s.Phase = PhaseSelected
		s.Selected = &l
		s.Error = ""
	case GuestUpdated:
		s.Guest = a.Guest
	case CurrencyChanged:
		if a.Currency != "" {
			s.Currency = a.Currency
		}
	case BookingConfirmed:
		b := a.Booking
		s.Phase = PhaseConfirmed
		s.LastConfirmation = &b
		s.Selected = nil
		s.Guest = blankGuest()
		s.Error = ""
	case BookingFailed:
		s.Error = errText(a.Err)
	case HistoryFilterChanged:
		s.History = a.Filter
	case Reset:
		return Initial()
	}
	return s
}
