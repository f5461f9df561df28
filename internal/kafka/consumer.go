package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var ErrUntypedEvent = errors.New("event has no type")

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// EventHandler processes one decoded booking event.
type EventHandler func(ctx context.Context, event BookingEvent) error

type Consumer struct {
	reader messageReader
	log    *zap.Logger
}

func NewConsumer(brokers []string, groupID, topic string, log *zap.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		log: log,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// DecodeEvent parses a booking event payload.
func DecodeEvent(data []byte) (BookingEvent, error) {
	var event BookingEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return BookingEvent{}, fmt.Errorf("decode booking event: %w", err)
	}
	if event.Type == "" {
		return BookingEvent{}, ErrUntypedEvent
	}
	return event, nil
}

// Consume feeds decoded events to handler until ctx is done, which is not an
// error. Payloads that do not decode are logged and skipped so one bad record
// cannot stall the group. A handler error stops consumption.
func (c *Consumer) Consume(ctx context.Context, handler EventHandler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read message: %w", err)
		}

		event, err := DecodeEvent(msg.Value)
		if err != nil {
			c.log.Warn("skip booking event",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			continue
		}

		if err := handler(ctx, event); err != nil {
			return fmt.Errorf("handle %s for booking %s: %w", event.Type, event.BookingID, err)
		}
	}
}
