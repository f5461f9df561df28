package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/kafka"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/Domenick1991/travelbooking/internal/simulate"
	"github.com/Domenick1991/travelbooking/internal/validate"
	"go.uber.org/zap"
)

type ContactUseCase interface {
	SubmitContact(ctx context.Context, form domain.ContactForm) error
	SubmitFeedback(ctx context.Context, feedback domain.Feedback) error
	Subscribe(ctx context.Context, email string) error
	SearchFAQ(q string) []domain.FAQ
	Offices() Directory
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Directory is what clients need to draw the office map.
type Directory struct {
	Offices     []domain.Office `json:"offices"`
	TileURL     string          `json:"tile_url"`
	Attribution string          `json:"attribution"`
}

const osmAttribution = "&copy; OpenStreetMap contributors"

var offices = []domain.Office{
	{Region: "Pakistan", Email: "FizaNaazz321@gmail.com", Phone: "+923123632197", Address: "123 Main St, Karachi", Coordinates: [2]float64{24.860, 67.115}},
	{Region: "UAE", Email: "FizaNaazz321@gmail.com", Phone: "+923123632197", Address: "456 Sheikh Zayed Rd, Dubai", Coordinates: [2]float64{25.2048, 55.2708}},
}

var faqs = []domain.FAQ{
	{Question: "How do I cancel a booking?", Answer: "You can cancel within 24 hours via the Booking History section."},
	{Question: "What is the refund policy?", Answer: "Refunds are processed within 7 days for eligible cancellations."},
	{Question: "How do I change my booking?", Answer: "Contact our support team with your PNR to modify your booking."},
	{Question: "Are pets allowed in hotels?", Answer: "Pet policies vary by hotel. Please check the hotel's amenities."},
}

type ContactService struct {
	captcha            simulate.Captcha
	delay              time.Duration
	tileURL            string
	producer           Producer
	notificationsTopic string
	subscribers        repository.SubscriberStore
	now                func() time.Time
	log                *zap.Logger

	// mu serialises load-modify-save on the subscriber list.
	mu sync.Mutex
}

type ContactServiceOption func(*ContactService)

func WithProducer(producer Producer, topic string) ContactServiceOption {
	return func(s *ContactService) {
		s.producer = producer
		s.notificationsTopic = topic
	}
}

func WithSubscribers(store repository.SubscriberStore) ContactServiceOption {
	return func(s *ContactService) {
		s.subscribers = store
	}
}

func WithLogger(log *zap.Logger) ContactServiceOption {
	return func(s *ContactService) {
		s.log = log
	}
}

func WithClock(now func() time.Time) ContactServiceOption {
	return func(s *ContactService) {
		s.now = now
	}
}

func NewContactService(captcha simulate.Captcha, delay time.Duration, tileURL string, opts ...ContactServiceOption) *ContactService {
	if captcha == nil {
		captcha = simulate.AlwaysPass
	}
	s := &ContactService{
		captcha: captcha,
		delay:   delay,
		tileURL: tileURL,
		now:     time.Now,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitContact validates the form, runs the CAPTCHA and waits out the fixed
// delay. ErrCaptchaFailed is transient; the caller may resubmit.
func (s *ContactService) SubmitContact(ctx context.Context, form domain.ContactForm) error {
	if strings.TrimSpace(form.Name) == "" || strings.TrimSpace(form.Email) == "" || strings.TrimSpace(form.Message) == "" {
		return &domain.ValidationError{Field: "contact", Message: "Please fill in all required fields (Name, Email, Message)."}
	}
	if r := validate.Email(form.Email); !r.Valid {
		return &domain.ValidationError{Field: "email", Message: r.Message}
	}
	if form.Phone != "" {
		if r := validate.Phone(form.Phone); !r.Valid {
			return &domain.ValidationError{Field: "phone", Message: r.Message}
		}
	}
	if !s.captcha.Verify() {
		return domain.ErrCaptchaFailed
	}
	if err := simulate.Delay(ctx, s.delay); err != nil {
		return err
	}

	if form.InquiryType == "" {
		form.InquiryType = domain.InquiryGeneral
	}
	s.log.Info("contact form received",
		zap.String("email", form.Email),
		zap.String("inquiry_type", string(form.InquiryType)),
	)

	s.notify(ctx, kafka.BookingEvent{
		Type:    kafka.EventContactReceived,
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	})
	return nil
}

// Subscribe adds email to the newsletter list after the fixed delay.
// Addresses are compared without regard to case or surrounding spaces.
func (s *ContactService) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if r := validate.Email(email); !r.Valid {
		return &domain.ValidationError{Field: "email", Message: "Please enter a valid email."}
	}
	if s.subscribers == nil {
		return errors.New("newsletter store is not configured")
	}

	s.mu.Lock()
	emails, err := s.loadSubscribers(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if subscribed(emails, email) {
		return domain.ErrAlreadySubscribed
	}

	if err := simulate.Delay(ctx, s.delay); err != nil {
		return err
	}

	s.mu.Lock()
	emails, err = s.loadSubscribers(ctx)
	if err == nil && subscribed(emails, email) {
		err = domain.ErrAlreadySubscribed
	}
	if err == nil {
		if saveErr := s.subscribers.Save(ctx, append(emails, email)); saveErr != nil {
			err = fmt.Errorf("save subscribers: %w", saveErr)
		}
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.log.Info("newsletter subscription", zap.String("email", email))
	s.notify(ctx, kafka.BookingEvent{Type: kafka.EventNewsletterJoined, Email: email})
	return nil
}

func (s *ContactService) loadSubscribers(ctx context.Context) ([]string, error) {
	emails, err := s.subscribers.Load(ctx)
	if errors.Is(err, repository.ErrCorruptSubscribers) {
		s.log.Error("newsletter list is unreadable, starting empty", zap.Error(err))
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load subscribers: %w", err)
	}
	return emails, nil
}

func subscribed(emails []string, email string) bool {
	for _, e := range emails {
		if strings.EqualFold(strings.TrimSpace(e), email) {
			return true
		}
	}
	return false
}

// notify publishes best-effort; a failure is only logged.
func (s *ContactService) notify(ctx context.Context, event kafka.BookingEvent) {
	if s.producer == nil || s.notificationsTopic == "" {
		return
	}
	event.OccurredAt = s.now().UTC()
	if err := s.producer.Publish(ctx, s.notificationsTopic, event.Email, event); err != nil {
		s.log.Warn("failed to publish notification", zap.String("type", event.Type), zap.Error(err))
	}
}

func (s *ContactService) SubmitFeedback(ctx context.Context, feedback domain.Feedback) error {
	if feedback.Rating < 1 || feedback.Rating > 5 {
		return &domain.ValidationError{Field: "rating", Message: "Please select a rating."}
	}
	if err := simulate.Delay(ctx, s.delay); err != nil {
		return err
	}
	s.log.Info("feedback received", zap.Int("rating", feedback.Rating))
	return nil
}

// SearchFAQ matches q against question and answer, ignoring case. An empty
// query returns every entry.
func (s *ContactService) SearchFAQ(q string) []domain.FAQ {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]domain.FAQ, 0, len(faqs))
	for _, f := range faqs {
		if strings.Contains(strings.ToLower(f.Question), q) || strings.Contains(strings.ToLower(f.Answer), q) {
			out = append(out, f)
		}
	}
	return out
}

func (s *ContactService) Offices() Directory {
	return Directory{
		Offices:     append([]domain.Office(nil), offices...),
		TileURL:     s.tileURL,
		Attribution: osmAttribution,
	}
}

var _ ContactUseCase = (*ContactService)(nil)
