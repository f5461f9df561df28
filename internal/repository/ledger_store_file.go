package repository

import (
	"context"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

// FileLedgerStore keeps the ledger in one JSON file on local disk.
type FileLedgerStore struct {
	path string
}

func NewFileLedgerStore(path string) *FileLedgerStore {
	return &FileLedgerStore{path: path}
}

func (s *FileLedgerStore) Load(_ context.Context) ([]domain.Booking, error) {
	data, err := readFileRecord(s.path)
	if err != nil {
		return nil, err
	}
	return decodeLedger(data)
}

func (s *FileLedgerStore) Save(_ context.Context, bookings []domain.Booking) error {
	data, err := encodeLedger(bookings)
	if err != nil {
		return err
	}
	return writeFileRecord(s.path, data)
}

var _ LedgerStore = (*FileLedgerStore)(nil)
