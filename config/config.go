package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvLocal = "local"
	EnvProd  = "prod"
)

const defaultTaxRate = 0.15

const (
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	Env      string         `yaml:"env"`
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Booking  BookingConfig  `yaml:"booking"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Contact  ContactConfig  `yaml:"contact"`
}

type HTTPConfig struct {
	Address        string   `yaml:"address"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	SwaggerFile    string   `yaml:"swagger_file"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type BookingConfig struct {
	TaxRate               float64 `yaml:"tax_rate"`
	CancelWindowHours     int     `yaml:"cancel_window_hours"`
	AvailabilityRate      float64 `yaml:"availability_rate"`
	ListingsCacheTTL      int     `yaml:"listings_cache_ttl_seconds"`
	MaxAdvanceBookingDays int     `yaml:"max_advance_booking_days"`
}

func (b BookingConfig) CancelWindow() time.Duration {
	return time.Duration(b.CancelWindowHours) * time.Hour
}

func (b BookingConfig) CacheTTL() time.Duration {
	return time.Duration(b.ListingsCacheTTL) * time.Second
}

// LedgerConfig selects where the booking history is kept. Every backend stores
// the whole ledger under Key.
type LedgerConfig struct {
	Storage string `yaml:"storage"`
	Path    string `yaml:"path"`
	Key     string `yaml:"key"`
}

// CatalogConfig picks the listing source. Cache puts Redis in front of it.
type CatalogConfig struct {
	Source string `yaml:"source"`
	Cache  bool   `yaml:"cache"`
}

type ContactConfig struct {
	CaptchaFailureRate float64 `yaml:"captcha_failure_rate"`
	SubmitDelayMillis  int     `yaml:"submit_delay_ms"`
	MapTileURL         string  `yaml:"map_tile_url"`
	// The newsletter list uses the ledger's storage backend.
	NewsletterPath string `yaml:"newsletter_path"`
	NewsletterKey  string `yaml:"newsletter_key"`
}

func (c ContactConfig) SubmitDelay() time.Duration {
	return time.Duration(c.SubmitDelayMillis) * time.Millisecond
}

// LoadConfig reads .env (if present) and the YAML file at path, then fills
// defaults for anything left unset.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if env := os.Getenv("APP_ENV"); env != "" {
		cfg.Env = env
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	// Seeded before decoding so an explicit zero tax rate survives.
	cfg := Config{Booking: BookingConfig{TaxRate: defaultTaxRate}}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Env == "" {
		c.Env = EnvLocal
	}
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.Booking.CancelWindowHours == 0 {
		c.Booking.CancelWindowHours = 24
	}
	if c.Booking.AvailabilityRate == 0 {
		c.Booking.AvailabilityRate = 0.8
	}
	if c.Booking.ListingsCacheTTL == 0 {
		c.Booking.ListingsCacheTTL = 60
	}
	if c.Booking.MaxAdvanceBookingDays == 0 {
		c.Booking.MaxAdvanceBookingDays = 365
	}
	if c.Ledger.Storage == "" {
		c.Ledger.Storage = StorageFile
	}
	if c.Ledger.Path == "" {
		c.Ledger.Path = "data/booking_history.json"
	}
	if c.Ledger.Key == "" {
		c.Ledger.Key = "bookingHistory"
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = "static"
	}
	if c.Contact.CaptchaFailureRate == 0 {
		c.Contact.CaptchaFailureRate = 0.1
	}
	if c.Contact.SubmitDelayMillis == 0 {
		c.Contact.SubmitDelayMillis = 1000
	}
	if c.Contact.NewsletterPath == "" {
		c.Contact.NewsletterPath = "data/newsletter_emails.json"
	}
	if c.Contact.NewsletterKey == "" {
		c.Contact.NewsletterKey = "newsletterEmails"
	}
	if c.Contact.MapTileURL == "" {
		c.Contact.MapTileURL = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	}
}

func (c *Config) validate() error {
	switch c.Ledger.Storage {
	case StorageFile, StorageRedis, StoragePostgres:
	default:
		return fmt.Errorf("unknown ledger storage %q", c.Ledger.Storage)
	}
	switch c.Catalog.Source {
	case "static", StoragePostgres:
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}
	if c.Booking.TaxRate < 0 {
		return fmt.Errorf("tax_rate must not be negative, got %v", c.Booking.TaxRate)
	}
	if c.Booking.AvailabilityRate < 0 || c.Booking.AvailabilityRate > 1 {
		return fmt.Errorf("availability_rate must be within [0,1], got %v", c.Booking.AvailabilityRate)
	}
	return nil
}
