package listings

import (
	"context"
	"time"

	"github.com/Domenick1991/travelbooking/internal/catalog"
	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/Domenick1991/travelbooking/internal/search"
	"github.com/Domenick1991/travelbooking/internal/simulate"
	"github.com/Domenick1991/travelbooking/internal/validate"
	"go.uber.org/zap"
)

type ListingUseCase interface {
	List(ctx context.Context, kind domain.ListingKind) ([]domain.Listing, error)
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	SearchHotels(ctx context.Context, criteria domain.SearchCriteria, filter search.HotelFilter) ([]domain.Listing, error)
	SearchFlights(ctx context.Context, filter search.FlightFilter) ([]domain.Listing, error)
	Suggest(q string) Suggestions
}

type ListingCache interface {
	GetListings(ctx context.Context, kind domain.ListingKind) ([]domain.Listing, error)
	SetListings(ctx context.Context, kind domain.ListingKind, listings []domain.Listing) error
}

type Suggestions struct {
	Cities   []string          `json:"cities"`
	Airports []catalog.Airport `json:"airports"`
}

type ListingService struct {
	repo         repository.ListingRepository
	cache        ListingCache
	availability simulate.Availability
	maxAdvance   time.Duration
	now          func() time.Time
	log          *zap.Logger
}

type ListingServiceOption func(*ListingService)

func WithMaxAdvance(d time.Duration) ListingServiceOption {
	return func(s *ListingService) {
		s.maxAdvance = d
	}
}

func WithClock(now func() time.Time) ListingServiceOption {
	return func(s *ListingService) {
		s.now = now
	}
}

func WithLogger(log *zap.Logger) ListingServiceOption {
	return func(s *ListingService) {
		s.log = log
	}
}

// NewListingService wires the catalog source. cache may be nil; availability
// defaults to the listings' own flag.
func NewListingService(repo repository.ListingRepository, cache ListingCache, availability simulate.Availability, opts ...ListingServiceOption) *ListingService {
	if availability == nil {
		availability = simulate.AlwaysAvailable
	}
	s := &ListingService{
		repo:         repo,
		cache:        cache,
		availability: availability,
		maxAdvance:   365 * 24 * time.Hour,
		now:          time.Now,
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ListingService) List(ctx context.Context, kind domain.ListingKind) ([]domain.Listing, error) {
	if s.cache != nil {
		cached, err := s.cache.GetListings(ctx, kind)
		if err != nil {
			s.log.Warn("listing cache read failed", zap.String("kind", string(kind)), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	listings, err := s.repo.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetListings(ctx, kind, listings); err != nil {
			s.log.Warn("listing cache write failed", zap.String("kind", string(kind)), zap.Error(err))
		}
	}
	return listings, nil
}

func (s *ListingService) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	return s.repo.GetByID(ctx, id)
}

// SearchHotels validates the criteria, keeps the hotels at the destination that
// pass the availability check, then applies the display filter. ErrUnavailable
// means nothing at the destination is bookable; an empty slice means the
// display filter excluded everything.
func (s *ListingService) SearchHotels(ctx context.Context, criteria domain.SearchCriteria, filter search.HotelFilter) ([]domain.Listing, error) {
	if err := validate.Criteria(criteria, s.now(), s.maxAdvance); err != nil {
		return nil, err
	}
	currency, err := domain.ParseCurrency(string(filter.Currency))
	if err != nil {
		return nil, err
	}
	filter.Currency = currency
	if filter.Destination == "" {
		filter.Destination = criteria.Destination
	}

	hotels, err := s.List(ctx, domain.ListingKindHotel)
	if err != nil {
		return nil, err
	}

	atDestination := search.Hotels(hotels, search.HotelFilter{Destination: filter.Destination})
	available := make([]domain.Listing, 0, len(atDestination))
	for _, h := range atDestination {
		if s.availability.Available(h) {
			available = append(available, h)
		}
	}
	if len(available) == 0 {
		s.log.Info("no hotels available", zap.String("destination", filter.Destination))
		return nil, domain.ErrUnavailable
	}
	return search.Hotels(available, filter), nil
}

func (s *ListingService) SearchFlights(ctx context.Context, filter search.FlightFilter) ([]domain.Listing, error) {
	if err := validate.Route(filter.Origin, filter.Destination); err != nil {
		return nil, err
	}
	currency, err := domain.ParseCurrency(string(filter.Currency))
	if err != nil {
		return nil, err
	}
	filter.Currency = currency

	flights, err := s.List(ctx, domain.ListingKindFlight)
	if err != nil {
		return nil, err
	}

	bookable := make([]domain.Listing, 0, len(flights))
	for _, f := range flights {
		if f.Available {
			bookable = append(bookable, f)
		}
	}
	return search.Flights(bookable, filter), nil
}

func (s *ListingService) Suggest(q string) Suggestions {
	return Suggestions{
		Cities:   search.SuggestCities(q),
		Airports: search.SuggestAirports(q),
	}
}

var _ ListingUseCase = (*ListingService)(nil)
