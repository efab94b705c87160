package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/mind-engage/selfcheck/internal/api/http"
	"github.com/mind-engage/selfcheck/internal/config"
	"github.com/mind-engage/selfcheck/internal/logging"
	"github.com/mind-engage/selfcheck/internal/quiz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("quizd exited", "err", err)
		stop()
		os.Exit(1)
	}
}

// run serves until ctx is cancelled or the listener fails.
func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	// --- Quiz ---
	qz := quiz.Builtin()
	if cfg.QuizFile != "" {
		var err error
		qz, err = quiz.Load(cfg.QuizFile)
		if err != nil {
			return fmt.Errorf("load quiz: %w", err)
		}
	}
	catalog := quiz.NewCatalog(qz)

	// --- Router ---
	r := api.NewRouter(api.RouterConfig{
		Catalog:     catalog,
		PageQuizID:  qz.ID,
		CORSOrigins: cfg.CORSOrigins(),
		Log:         logger,
	})

	s := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.HTTPAddr, "mode", cfg.Mode, "quiz_id", qz.ID, "questions", len(qz.Questions))
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("listen %s: %w", cfg.HTTPAddr, err)
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("stopped")
	return nil
}
