package repository

import (
	"context"
	"testing"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticListingRepository(t *testing.T) {
	repo := NewStaticListingRepository()
	ctx := context.Background()

	hotels, err := repo.List(ctx, domain.ListingKindHotel)
	require.NoError(t, err)
	assert.Len(t, hotels, 12)

	flights, err := repo.List(ctx, domain.ListingKindFlight)
	require.NoError(t, err)
	assert.NotEmpty(t, flights)

	l, err := repo.GetByID(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, "Royal Retreat", l.Name)

	l, err = repo.GetByID(ctx, "F1")
	require.NoError(t, err)
	assert.Equal(t, "EK123", l.FlightNumber)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestStaticListingRepository_ReturnsCopies(t *testing.T) {
	repo := NewStaticListingRepository()
	ctx := context.Background()

	first, _ := repo.List(ctx, domain.ListingKindHotel)
	first[0].Name = "changed"

	second, _ := repo.List(ctx, domain.ListingKindHotel)
	assert.Equal(t, "Luxury Inn", second[0].Name)
}
