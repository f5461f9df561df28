package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/kafka"
	"github.com/Domenick1991/travelbooking/internal/pricing"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/Domenick1991/travelbooking/internal/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	Quote(ctx context.Context, input QuoteInput) (*pricing.Quote, error)
	SubmitBooking(ctx context.Context, input SubmitBookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id string) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	QueryBookings(ctx context.Context, filter HistoryFilter) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

const cancelPolicyMessage = "Cannot cancel booking: Cancellation is only allowed within 24 hours of booking."

type BookingService struct {
	ledger             repository.LedgerStore
	listings           repository.ListingRepository
	calculator         *pricing.Calculator
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	cancelWindow       time.Duration
	maxAdvance         time.Duration
	now                func() time.Time
	newID              func() uuid.UUID
	log                *zap.Logger

	// mu serialises load-modify-save on the ledger.
	mu sync.Mutex
}

type QuoteInput struct {
	ListingID string                `json:"listing_id"`
	Criteria  domain.SearchCriteria `json:"criteria"`
	RoomType  domain.RoomType       `json:"room_type"`
	Extras    domain.Extras         `json:"extras"`
	Currency  domain.Currency       `json:"currency"`
}

type SubmitBookingInput struct {
	ListingID string                `json:"listing_id"`
	Criteria  domain.SearchCriteria `json:"criteria"`
	Guest     domain.GuestDetails   `json:"guest"`
	Currency  domain.Currency       `json:"currency"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithCancelWindow(d time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.cancelWindow = d
	}
}

func WithMaxAdvance(d time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.maxAdvance = d
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func WithIDGenerator(newID func() uuid.UUID) BookingServiceOption {
	return func(s *BookingService) {
		s.newID = newID
	}
}

func WithLogger(log *zap.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.log = log
	}
}

func NewBookingService(
	ledger repository.LedgerStore,
	listings repository.ListingRepository,
	calculator *pricing.Calculator,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		ledger:       ledger,
		listings:     listings,
		calculator:   calculator,
		producer:     producer,
		bookingTopic: bookingTopic,
		cancelWindow: 24 * time.Hour,
		maxAdvance:   365 * 24 * time.Hour,
		now:          time.Now,
		newID:        uuid.New,
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) Quote(ctx context.Context, input QuoteInput) (*pricing.Quote, error) {
	listing, err := s.lookupListing(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if err := s.validateCriteria(listing, input.Criteria); err != nil {
		return nil, err
	}
	if err := validateExtras(listing, input.Extras); err != nil {
		return nil, err
	}
	currency, err := domain.ParseCurrency(string(input.Currency))
	if err != nil {
		return nil, err
	}
	q, err := s.calculator.Quote(listing, input.Criteria, input.RoomType, currency, pricing.WithExtras(input.Extras))
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *BookingService) SubmitBooking(ctx context.Context, input SubmitBookingInput) (*domain.Booking, error) {
	now := s.now()
	if err := validate.Guest(input.Guest, now); err != nil {
		return nil, err
	}

	listing, err := s.lookupListing(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if err := s.validateCriteria(listing, input.Criteria); err != nil {
		return nil, err
	}
	if err := validateExtras(listing, input.Guest.Extras); err != nil {
		return nil, err
	}

	currency, err := domain.ParseCurrency(string(input.Currency))
	if err != nil {
		return nil, err
	}
	quote, err := s.calculator.Quote(listing, input.Criteria, input.Guest.RoomType, currency, pricing.WithExtras(input.Guest.Extras))
	if err != nil {
		return nil, err
	}

	id := s.newID()
	guest := input.Guest.Redacted()
	if guest.RoomType == "" && listing.Kind == domain.ListingKindHotel {
		guest.RoomType = domain.RoomTypeStandard
	}
	booking := domain.Booking{
		ID:        id.String(),
		PNR:       pnr(listing.ID, id),
		Listing:   *listing,
		Criteria:  input.Criteria,
		Guest:     guest,
		Currency:  currency,
		Total:     quote.Total,
		Status:    domain.BookingStatusConfirmed,
		CreatedAt: now.UTC(),
	}

	s.mu.Lock()
	bookings, err := s.load(ctx)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	bookings = append(bookings, booking)
	err = s.ledger.Save(ctx, bookings)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("save ledger: %w", err)
	}

	s.log.Info("booking confirmed",
		zap.String("booking_id", booking.ID),
		zap.String("pnr", booking.PNR),
		zap.String("listing_id", listing.ID),
		zap.Float64("total", booking.Total),
		zap.String("currency", string(currency)),
	)
	if err := s.publish(ctx, kafka.EventBookingConfirmed, &booking); err != nil {
		s.log.Warn("failed to publish booking event", zap.String("booking_id", booking.ID), zap.Error(err))
	}
	return &booking, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, id string) (*domain.Booking, error) {
	s.mu.Lock()
	bookings, err := s.load(ctx)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	idx := indexOf(bookings, id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, domain.ErrBookingNotFound
	}
	current := bookings[idx]
	if current.Status == domain.BookingStatusCancelled {
		s.mu.Unlock()
		return &current, nil
	}

	now := s.now().UTC()
	if now.Sub(current.CreatedAt) > s.cancelWindow {
		s.mu.Unlock()
		return nil, &domain.PolicyError{Message: cancelPolicyMessage}
	}

	current.Status = domain.BookingStatusCancelled
	current.CancelledAt = &now
	bookings[idx] = current
	err = s.ledger.Save(ctx, bookings)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("save ledger: %w", err)
	}

	s.log.Info("booking cancelled", zap.String("booking_id", current.ID), zap.String("pnr", current.PNR))
	if err := s.publish(ctx, kafka.EventBookingCancelled, &current); err != nil {
		s.log.Warn("failed to publish booking event", zap.String("booking_id", current.ID), zap.Error(err))
	}
	return &current, nil
}

// GetBooking accepts either the booking id or its PNR.
func (s *BookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	s.mu.Lock()
	bookings, err := s.load(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	for i := range bookings {
		if bookings[i].ID == id || strings.EqualFold(bookings[i].PNR, id) {
			return &bookings[i], nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (s *BookingService) QueryBookings(ctx context.Context, filter HistoryFilter) ([]domain.Booking, error) {
	s.mu.Lock()
	bookings, err := s.load(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return ApplyHistoryFilter(bookings, filter), nil
}

// load reads the ledger. A corrupt payload is logged and treated as empty so
// the next save replaces it.
func (s *BookingService) load(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.ledger.Load(ctx)
	if errors.Is(err, repository.ErrCorruptLedger) {
		s.log.Error("booking history is unreadable, starting empty", zap.Error(err))
		return []domain.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) lookupListing(ctx context.Context, id string) (*domain.Listing, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrNoListingSelected
	}
	return s.listings.GetByID(ctx, id)
}

func (s *BookingService) validateCriteria(listing *domain.Listing, c domain.SearchCriteria) error {
	if listing.Kind == domain.ListingKindFlight {
		if err := validate.Route(c.Origin, c.Destination); err != nil {
			return err
		}
		if c.Guests < 1 {
			return &domain.ValidationError{Field: "guests", Message: "Please select at least one passenger."}
		}
		return nil
	}
	return validate.Criteria(c, s.now(), s.maxAdvance)
}

func validateExtras(listing *domain.Listing, extras domain.Extras) error {
	if extras.Any() && listing.Kind != domain.ListingKindFlight {
		return &domain.ValidationError{Field: "extras", Message: "Seat selection and extra baggage are only available for flights."}
	}
	return nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		BookingID:   booking.ID,
		PNR:         booking.PNR,
		ListingID:   booking.Listing.ID,
		ListingName: booking.Listing.Name,
		Name:        booking.Guest.Name,
		Email:       booking.Guest.Email,
		Status:      string(booking.Status),
		Total:       booking.Total,
		Currency:    string(booking.Currency),
		OccurredAt:  s.now().UTC(),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event)
	}
	return nil
}

func pnr(listingID string, id uuid.UUID) string {
	return fmt.Sprintf("ABC%s-%s", listingID, strings.ToUpper(id.String()[:8]))
}

func indexOf(bookings []domain.Booking, id string) int {
	for i := range bookings {
		if bookings[i].ID == id {
			return i
		}
	}
	return -1
}

var _ BookingUseCase = (*BookingService)(nil)
