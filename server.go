package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Saivya1/Portfolio/internal/config"
	"github.com/Saivya1/Portfolio/internal/store"
)

// cleanupInterval is how often the retention sweep runs while serving.
const cleanupInterval = 24 * time.Hour

// runServer serves the site until ctx is cancelled, then shuts down
// gracefully and drains pending visitor writes.
func runServer(ctx context.Context, cfg config.Config) error {
	st, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	a, err := newApp(cfg, st, log.Default())
	if err != nil {
		return err
	}
	if cfg.UsesDefaultAdmin() {
		log.Warn("using default admin credentials, set ADMIN_USERNAME and ADMIN_PASSWORD")
	}
	log.Info("admin access available", "path", "/admin/login")
	log.Info("privacy: visitor tracking enabled with hashed IP addresses")

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopSweep := a.startRetention(ctx, cleanupInterval)
	defer stopSweep()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr, "mode", cfg.Mode)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	a.visits.Wait()
	return nil
}

// startRetention runs retentionLoop in the background. The returned stop
// func cancels it and waits until any sweep in progress has finished.
func (a *app) startRetention(ctx context.Context, interval time.Duration) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.retentionLoop(ctx, interval)
	}()
	return func() {
		cancel()
		<-done
	}
}

// retentionLoop runs the privacy cleanup once at start and then every
// interval until ctx is done.
func (a *app) retentionLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if _, err := a.cleanupOldVisitors(ctx); err != nil && ctx.Err() == nil {
			a.logger.Error("privacy cleanup", "err", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
