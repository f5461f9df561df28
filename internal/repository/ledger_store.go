package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

// LedgerStore persists the booking history as a single record that is read
// and rewritten whole.
type LedgerStore interface {
	Load(ctx context.Context) ([]domain.Booking, error)
	Save(ctx context.Context, bookings []domain.Booking) error
}

var ErrCorruptLedger = errors.New("ledger payload is corrupt")

func encodeLedger(bookings []domain.Booking) ([]byte, error) {
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	data, err := json.Marshal(bookings)
	if err != nil {
		return nil, fmt.Errorf("encode ledger: %w", err)
	}
	return data, nil
}

func decodeLedger(data []byte) ([]domain.Booking, error) {
	if len(data) == 0 {
		return []domain.Booking{}, nil
	}
	var bookings []domain.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptLedger, err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}
