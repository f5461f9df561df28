package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/travelbooking/api"
	"github.com/Domenick1991/travelbooking/config"
	"github.com/Domenick1991/travelbooking/internal/bootstrap"
	"github.com/Domenick1991/travelbooking/internal/cache"
	"github.com/Domenick1991/travelbooking/internal/kafka"
	"github.com/Domenick1991/travelbooking/internal/logger"
	"github.com/Domenick1991/travelbooking/internal/pricing"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/Domenick1991/travelbooking/internal/service/booking"
	"github.com/Domenick1991/travelbooking/internal/service/contact"
	"github.com/Domenick1991/travelbooking/internal/service/listings"
	"github.com/Domenick1991/travelbooking/internal/simulate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var pool *pgxpool.Pool
	if cfg.Ledger.Storage == config.StoragePostgres || cfg.Catalog.Source == config.StoragePostgres {
		pool, err = pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			lg.Fatal("connect postgres", zap.Error(err))
		}
		defer pool.Close()
	}

	redisClient := cache.NewRedisClient(cfg.Redis)
	defer redisClient.Close()

	var listingCache listings.ListingCache
	if cfg.Catalog.Cache {
		listingCache = cache.NewRedisCache(redisClient, cfg.Booking.CacheTTL())
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers, lg)
	defer producer.Close()
	checkCtx, cancelCheck := context.WithTimeout(ctx, 3*time.Second)
	if err := producer.CheckConnection(checkCtx); err != nil {
		lg.Warn("kafka unreachable, booking events will be dropped", zap.Error(err))
	}
	cancelCheck()

	listingRepo := repository.NewStaticListingRepository()
	if cfg.Catalog.Source == config.StoragePostgres {
		listingRepo = repository.NewListingRepository(pool)
	}

	ledger, err := newLedgerStore(cfg, pool, redisClient)
	if err != nil {
		lg.Fatal("init ledger store", zap.Error(err))
	}
	subscribers, err := newSubscriberStore(cfg, pool, redisClient)
	if err != nil {
		lg.Fatal("init newsletter store", zap.Error(err))
	}

	maxAdvance := time.Duration(cfg.Booking.MaxAdvanceBookingDays) * 24 * time.Hour

	listingService := listings.NewListingService(
		listingRepo,
		listingCache,
		simulate.NewRandomAvailability(cfg.Booking.AvailabilityRate, nil),
		listings.WithMaxAdvance(maxAdvance),
		listings.WithLogger(lg.Named("listings")),
	)
	bookingService := booking.NewBookingService(
		ledger,
		listingRepo,
		pricing.NewCalculator(cfg.Booking.TaxRate),
		producer,
		cfg.Kafka.BookingEventsTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithCancelWindow(cfg.Booking.CancelWindow()),
		booking.WithMaxAdvance(maxAdvance),
		booking.WithLogger(lg.Named("booking")),
	)
	contactService := contact.NewContactService(
		simulate.NewRandomCaptcha(cfg.Contact.CaptchaFailureRate, nil),
		cfg.Contact.SubmitDelay(),
		cfg.Contact.MapTileURL,
		contact.WithProducer(producer, cfg.Kafka.NotificationsTopic),
		contact.WithSubscribers(subscribers),
		contact.WithLogger(lg.Named("contact")),
	)

	if err := bootstrap.Run(ctx, cfg, lg,
		api.NewListingHandler(listingService, lg),
		api.NewBookingHandler(bookingService, lg),
		api.NewContactHandler(contactService, lg),
	); err != nil {
		lg.Fatal("server error", zap.Error(err))
	}
}

func newLedgerStore(cfg *config.Config, pool *pgxpool.Pool, client *redis.Client) (repository.LedgerStore, error) {
	switch cfg.Ledger.Storage {
	case config.StorageFile:
		return repository.NewFileLedgerStore(cfg.Ledger.Path), nil
	case config.StorageRedis:
		return repository.NewRedisLedgerStore(client, cfg.Ledger.Key), nil
	case config.StoragePostgres:
		return repository.NewPGLedgerStore(pool, cfg.Ledger.Key), nil
	default:
		return nil, fmt.Errorf("unknown ledger storage %q", cfg.Ledger.Storage)
	}
}

// newSubscriberStore keeps newsletter emails on the same backend as the ledger.
func newSubscriberStore(cfg *config.Config, pool *pgxpool.Pool, client *redis.Client) (repository.SubscriberStore, error) {
	switch cfg.Ledger.Storage {
	case config.StorageFile:
		return repository.NewFileSubscriberStore(cfg.Contact.NewsletterPath), nil
	case config.StorageRedis:
		return repository.NewRedisSubscriberStore(client, cfg.Contact.NewsletterKey), nil
	case config.StoragePostgres:
		return repository.NewPGSubscriberStore(pool, cfg.Contact.NewsletterKey), nil
	default:
		return nil, fmt.Errorf("unknown newsletter storage %q", cfg.Ledger.Storage)
	}
}
