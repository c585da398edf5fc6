package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/config"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/infra"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/repository"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/router"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title Sistema de Gestión VLock API
// @version 1.0
// @description API de administración para constructora: empleados, contratos, suministros, adeudos y reportes.
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if cfg.Env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	mailer := infra.NewMailer(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Background workers: email delivery and report generation share the pool.
	dispatcher := worker.NewDispatcher(rdb)
	suministroRepo := repository.NewSuministroRepository(db)
	adeudoRepo := repository.NewAdeudoRepository(db)
	pool := worker.NewPool(rdb)
	pool.Register("email", worker.NewEmailWorker(mailer).Process)
	pool.Register("reporte", worker.NewReporteWorker(suministroRepo, adeudoRepo, mailer, cfg.ReporteStoragePath).Process)
	pool.Start(ctx, cfg.WorkerPoolSize)

	worker.StartAlertaCron(ctx, worker.AlertaCronConfig{
		AdeudoRepo:   adeudoRepo,
		RDB:          rdb,
		Dispatcher:   dispatcher,
		AlertaEmail:  cfg.AlertaEmail,
		TickInterval: time.Duration(cfg.AlertaTickMinutos) * time.Minute,
	})

	r := router.New(cfg, db, rdb, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
