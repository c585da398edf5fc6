package worker

// alerta_cron.go
// Background goroutine that periodically scans unpaid debts approaching their
// due date and enqueues one notification email per debt per day. A Redis
// SETNX key dedupes ticks so restarting the server never double-notifies.

import (
	"context"
	"fmt"
	"time"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/repository"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// alertHorizonDays bounds the scan: nothing beyond a week out ever alerts.
const alertHorizonDays = 7

// AlertaCronConfig holds all dependencies for the alert goroutine.
type AlertaCronConfig struct {
	AdeudoRepo   repository.AdeudoRepository
	RDB          *redis.Client
	Dispatcher   *Dispatcher
	AlertaEmail  string
	TickInterval time.Duration
}

// StartAlertaCron launches a background goroutine that ticks on the configured
// interval and notifies about debts inside their alert window. It respects the
// context for graceful shutdown.
func StartAlertaCron(ctx context.Context, cfg AlertaCronConfig) {
	go func() {
		ticker := time.NewTicker(cfg.TickInterval)
		defer ticker.Stop()

		log.Info().Msg("alerta_cron: started")

		// First scan right away; the SETNX dedupe absorbs restarts, so
		// waiting a full tick would only delay the day's notices.
		processAlertas(ctx, cfg)

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("alerta_cron: shutting down")
				return
			case <-ticker.C:
				processAlertas(ctx, cfg)
			}
		}
	}()
}

func processAlertas(ctx context.Context, cfg AlertaCronConfig) {
	if cfg.AlertaEmail == "" {
		return
	}

	hoy := time.Now()
	horizonte := hoy.AddDate(0, 0, alertHorizonDays)

	adeudos, err := cfg.AdeudoRepo.ListPorVencer(ctx, horizonte)
	if err != nil {
		log.Error().Err(err).Msg("alerta_cron: failed to query upcoming debts")
		return
	}

	enviadas := 0
	for i := range adeudos {
		adeudo := &adeudos[i]

		if !service.DebeAlertarHoy(adeudo.FechaVencimiento, adeudo.Estado, hoy) {
			continue
		}
		alerta := service.CalcularAlerta(adeudo.FechaVencimiento, adeudo.Estado, hoy)
		if alerta == nil {
			continue
		}

		// One notice per debt per day, across restarts and replicas.
		dedupeKey := fmt.Sprintf("alerta:adeudo:%s:%s", adeudo.ID, hoy.Format("2006-01-02"))
		ok, err := cfg.RDB.SetNX(ctx, dedupeKey, 1, 48*time.Hour).Result()
		if err != nil {
			log.Error().Err(err).Str("adeudo_id", adeudo.ID.String()).Msg("alerta_cron: dedupe check failed")
			continue
		}
		if !ok {
			continue
		}

		proveedor := ""
		if adeudo.Proveedor != nil {
			proveedor = fmt.Sprintf(" (%s)", adeudo.Proveedor.Nombre)
		}
		payload := EmailJobPayload{
			ToEmail: cfg.AlertaEmail,
			Subject: fmt.Sprintf("Adeudo por vencer: %s", adeudo.Descripcion),
			Body: fmt.Sprintf("%s%s\nMonto pendiente: $%s\n%s\nNivel de urgencia: %s",
				adeudo.Descripcion, proveedor,
				adeudo.MontoTotal.Sub(adeudo.MontoPagado).StringFixed(2),
				alerta.Mensaje, alerta.NivelUrgencia),
		}
		if err := cfg.Dispatcher.EnqueueEmail(ctx, payload); err != nil {
			log.Error().Err(err).Str("adeudo_id", adeudo.ID.String()).Msg("alerta_cron: failed to enqueue notice")
			// Drop the dedupe key so the next tick can retry.
			cfg.RDB.Del(ctx, dedupeKey)
			continue
		}
		enviadas++
	}

	if enviadas > 0 {
		log.Info().Int("count", enviadas).Msg("alerta_cron: due-date notices enqueued")
	}
}
