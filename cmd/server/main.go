package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saulo-duarte/roadmap-lambda/internal/config"
	"github.com/saulo-duarte/roadmap-lambda/internal/container"
)

func main() {
	ctx := context.Background()

	c, err := container.New(ctx)
	if err != nil {
		config.Log.WithError(err).Fatal("Failed to start")
	}

	// generation plus speech synthesis can take a while
	writeTimeout := c.Config.GenerateTimeout + 60*time.Second

	server := &http.Server{
		Addr:              ":" + c.Config.Port,
		Handler:           c.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		config.Log.WithField("port", c.Config.Port).Info("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Log.WithError(err).Fatal("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	config.Log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		config.Log.WithError(err).Error("HTTP server shutdown error")
	}
	if err := c.Telemetry.Shutdown(shutdownCtx); err != nil {
		config.Log.WithError(err).Error("Telemetry shutdown error")
	}

	config.Log.Info("Shutdown complete")
}
