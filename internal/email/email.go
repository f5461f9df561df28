package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/travelbooking/internal/kafka"
	"go.uber.org/zap"
)

// Sender stands in for an SMTP client: it renders the message and logs it.
type Sender struct {
	log *zap.Logger
}

func NewSender(log *zap.Logger) *Sender {
	return &Sender{log: log.Named("email")}
}

type Message struct {
	To      string
	Subject string
	Body    string
}

func Compose(event kafka.BookingEvent) Message {
	msg := Message{To: event.Email}
	switch event.Type {
	case kafka.EventBookingConfirmed:
		msg.Subject = fmt.Sprintf("Booking confirmed - PNR %s", event.PNR)
		msg.Body = fmt.Sprintf("Dear %s, your booking at %s is confirmed. Total: %s %.2f.", event.Name, event.ListingName, event.Currency, event.Total)
	case kafka.EventBookingCancelled:
		msg.Subject = fmt.Sprintf("Booking cancelled - PNR %s", event.PNR)
		msg.Body = fmt.Sprintf("Dear %s, your booking at %s has been cancelled.", event.Name, event.ListingName)
	case kafka.EventContactReceived:
		msg.Subject = "We received your message"
		msg.Body = fmt.Sprintf("Dear %s, thank you for contacting us. Our team will get back to you shortly.", event.Name)
	case kafka.EventNewsletterJoined:
		msg.Subject = "Subscribed successfully!"
		msg.Body = "Thanks for joining our newsletter. Travel deals and updates will arrive in this inbox."
	default:
		msg.Subject = "Notification"
		msg.Body = event.Message
	}
	return msg
}

func (s *Sender) Send(_ context.Context, event kafka.BookingEvent) error {
	if event.Email == "" {
		return fmt.Errorf("event %s has no recipient", event.Type)
	}
	msg := Compose(event)
	s.log.Info("send email",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
	)
	return nil
}
