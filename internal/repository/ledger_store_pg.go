package repository

import (
	"context"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGLedgerStore keeps the ledger as one jsonb value in the kv_store table.
type PGLedgerStore struct {
	db  *pgxpool.Pool
	key string
}

func NewPGLedgerStore(db *pgxpool.Pool, key string) *PGLedgerStore {
	return &PGLedgerStore{db: db, key: key}
}

func (s *PGLedgerStore) Load(ctx context.Context) ([]domain.Booking, error) {
	data, err := selectKV(ctx, s.db, s.key)
	if err != nil {
		return nil, err
	}
	return decodeLedger(data)
}

func (s *PGLedgerStore) Save(ctx context.Context, bookings []domain.Booking) error {
	data, err := encodeLedger(bookings)
	if err != nil {
		return err
	}
	return upsertKV(ctx, s.db, s.key, data)
}

var _ LedgerStore = (*PGLedgerStore)(nil)
