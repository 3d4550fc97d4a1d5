package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func InitLogger(cfg *Config) {
	Log.SetOutput(os.Stdout)

	if cfg.IsProduction() {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
}

// WithContext returns a logger carrying the request id set by the chi
// RequestID middleware, when there is one.
func WithContext(ctx context.Context) logrus.FieldLogger {
	if ctx == nil {
		return Log
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		return Log.WithField("request_id", reqID)
	}
	return Log
}
