package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/travelbooking/config"
	"github.com/Domenick1991/travelbooking/internal/email"
	"github.com/Domenick1991/travelbooking/internal/kafka"
	"github.com/Domenick1991/travelbooking/internal/logger"
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

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic, lg.Named("consumer"))
	defer consumer.Close()

	emailSender := email.NewSender(lg)

	lg.Info("worker started", zap.String("topic", cfg.Kafka.NotificationsTopic))
	err = consumer.Consume(ctx, func(ctx context.Context, event kafka.BookingEvent) error {
		if err := emailSender.Send(ctx, event); err != nil {
			lg.Warn("email not sent", zap.String("type", event.Type), zap.Error(err))
		}
		return nil
	})
	if err != nil {
		lg.Error("consumer stopped", zap.Error(err))
		return
	}
	lg.Info("worker stopped")
}
