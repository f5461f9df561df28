package repository

import (
	"context"

	"github.com/Domenick1991/travelbooking/internal/catalog"
	"github.com/Domenick1991/travelbooking/internal/domain"
)

// StaticListingRepository serves the built-in catalog.
type StaticListingRepository struct{}

func NewStaticListingRepository() ListingRepository {
	return StaticListingRepository{}
}

func (StaticListingRepository) List(_ context.Context, kind domain.ListingKind) ([]domain.Listing, error) {
	switch kind {
	case domain.ListingKindHotel:
		return catalog.Hotels(), nil
	case domain.ListingKindFlight:
		return catalog.Flights(), nil
	default:
		return []domain.Listing{}, nil
	}
}

func (StaticListingRepository) GetByID(_ context.Context, id string) (*domain.Listing, error) {
	for _, set := range [][]domain.Listing{catalog.Hotels(), catalog.Flights()} {
		for i := range set {
			if set[i].ID == id {
				return &set[i], nil
			}
		}
	}
	return nil, domain.ErrListingNotFound
}
