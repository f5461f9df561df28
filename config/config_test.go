package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("http:\n  address: \":9090\"\n"))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, 0.15, cfg.Booking.TaxRate)
	assert.Equal(t, 24*time.Hour, cfg.Booking.CancelWindow())
	assert.Equal(t, 0.8, cfg.Booking.AvailabilityRate)
	assert.Equal(t, StorageFile, cfg.Ledger.Storage)
	assert.Equal(t, "bookingHistory", cfg.Ledger.Key)
	assert.Equal(t, time.Second, cfg.Contact.SubmitDelay())
	assert.False(t, cfg.Catalog.Cache)
	assert.Equal(t, "newsletterEmails", cfg.Contact.NewsletterKey)
	assert.Equal(t, "data/newsletter_emails.json", cfg.Contact.NewsletterPath)
}

func TestParse_Overrides(t *testing.T) {
	raw := `
env: prod
ledger:
  storage: redis
  key: history
catalog:
  source: postgres
  cache: true
booking:
  tax_rate: 0.2
  cancel_window_hours: 12
database:
  host: db
  port: 5432
  user: app
  password: secret
  name: travel
  ssl_mode: disable
`
	cfg, err := Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, StorageRedis, cfg.Ledger.Storage)
	assert.Equal(t, "history", cfg.Ledger.Key)
	assert.Equal(t, StoragePostgres, cfg.Catalog.Source)
	assert.True(t, cfg.Catalog.Cache)
	assert.Equal(t, 0.2, cfg.Booking.TaxRate)
	assert.Equal(t, 12*time.Hour, cfg.Booking.CancelWindow())
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=travel sslmode=disable", cfg.Database.DSN())
}

func TestParse_ZeroTaxRate(t *testing.T) {
	cfg, err := Parse([]byte("booking:\n  tax_rate: 0\n"))
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.Booking.TaxRate)
}

func TestParse_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "unknown storage", raw: "ledger:\n  storage: sqlite\n"},
		{name: "unknown catalog", raw: "catalog:\n  source: csv\n"},
		{name: "negative tax", raw: "booking:\n  tax_rate: -0.1\n"},
		{name: "availability out of range", raw: "booking:\n  availability_rate: 1.5\n"},
		{name: "broken yaml", raw: "http: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.raw))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
