package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ListingRepository interface {
	List(ctx context.Context, kind domain.ListingKind) ([]domain.Listing, error)
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
}

type PGListingRepository struct {
	db *pgxpool.Pool
}

func NewListingRepository(db *pgxpool.Pool) ListingRepository {
	return &PGListingRepository{db: db}
}

const listingColumns = `id, kind, name, location, airline, flight_number, origin, destination,
	departure_time, arrival_time, duration_minutes, stops, cabin_class, layover, baggage,
	price, rating, amenities, distance_km, image, available`

func (r *PGListingRepository) List(ctx context.Context, kind domain.ListingKind) ([]domain.Listing, error) {
	rows, err := r.db.Query(ctx, `SELECT `+listingColumns+` FROM listings WHERE kind=$1 ORDER BY position, id`, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]domain.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *l)
	}
	return listings, rows.Err()
}

func (r *PGListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	row := r.db.QueryRow(ctx, `SELECT `+listingColumns+` FROM listings WHERE id=$1`, id)
	l, err := scanListing(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var (
		l               domain.Listing
		departure       *time.Time
		arrival         *time.Time
		durationMinutes int
	)
	if err := row.Scan(&l.ID, &l.Kind, &l.Name, &l.Location, &l.Airline, &l.FlightNumber, &l.Origin, &l.Destination,
		&departure, &arrival, &durationMinutes, &l.Stops, &l.CabinClass, &l.Layover, &l.Baggage,
		&l.Price, &l.Rating, &l.Amenities, &l.DistanceKm, &l.Image, &l.Available); err != nil {
		return nil, err
	}
	if departure != nil {
		l.DepartureTime = departure.UTC()
	}
	if arrival != nil {
		l.ArrivalTime = arrival.UTC()
	}
	l.Duration = time.Duration(durationMinutes) * time.Minute
	return &l, nil
}

var _ ListingRepository = (*PGListingRepository)(nil)
