package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewListingRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewListingRepository(pool)
	assert.NotNil(t, repo)
}
