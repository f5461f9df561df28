package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Domenick1991/travelbooking/config"
)

// New builds the process logger: JSON at info level in prod, colored console
// at debug level everywhere else.
func New(env string) (*zap.Logger, error) {
	var cfg zap.Config

	if env == config.EnvProd {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return cfg.Build()
}
