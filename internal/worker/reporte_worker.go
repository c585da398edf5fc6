package worker

// reporte_worker.go
// Processes async report jobs from QueueReporte: generates the Excel or PDF
// file and emails it to the requester.

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/infra"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/repository"

	"github.com/rs/zerolog/log"
)

// ReporteWorker builds report files off the request path and mails them out.
type ReporteWorker struct {
	suministroRepo repository.SuministroRepository
	adeudoRepo     repository.AdeudoRepository
	mailer         *infra.Mailer
	storagePath    string
}

func NewReporteWorker(suministroRepo repository.SuministroRepository, adeudoRepo repository.AdeudoRepository, mailer *infra.Mailer, storagePath string) *ReporteWorker {
	return &ReporteWorker{suministroRepo: suministroRepo, adeudoRepo: adeudoRepo, mailer: mailer, storagePath: storagePath}
}

func (w *ReporteWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload dto.ReporteJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("reporte_worker: invalid payload")
		return nil // malformed payloads never succeed; don't retry
	}
	if payload.Email == "" {
		log.Warn().Msg("reporte_worker: empty email — skipping")
		return nil
	}

	var filePath, subject, body string
	var registros int
	var err error

	switch payload.Formato {
	case "adeudos-excel":
		var filas []model.Adeudo
		filas, err = w.adeudoRepo.ListTodos(ctx, dto.AdeudoFilter{
			Estado:      payload.Estado,
			ProveedorID: payload.ProveedorID,
		})
		if err != nil {
			return fmt.Errorf("reporte_worker: query adeudos: %w", err)
		}
		registros = len(filas)
		filePath, err = infra.GenerateAdeudosExcel(filas, w.storagePath)
		subject = "Reporte de adeudos"
		body = fmt.Sprintf("Se adjunta el reporte de adeudos solicitado (%d registros).", registros)
	default:
		var filas []model.Suministro
		filas, err = w.suministroRepo.ListTodos(ctx, dto.SuministroFilter{
			ProyectoID:  payload.ProyectoID,
			ProveedorID: payload.ProveedorID,
			Fecha:       payload.Fecha,
		})
		if err != nil {
			return fmt.Errorf("reporte_worker: query suministros: %w", err)
		}
		registros = len(filas)
		if payload.Formato == "pdf" {
			filePath, err = infra.GenerateSuministrosPDF(filas, "Reporte solicitado", w.storagePath)
		} else {
			filePath, err = infra.GenerateSuministrosExcel(filas, w.storagePath)
		}
		subject = "Reporte de suministros"
		body = fmt.Sprintf("Se adjunta el reporte de suministros solicitado (%d registros).", registros)
	}
	if err != nil {
		return fmt.Errorf("reporte_worker: generate %s: %w", payload.Formato, err)
	}
	defer os.Remove(filePath)

	if err := w.mailer.Send(payload.Email, subject, body, filePath); err != nil {
		return fmt.Errorf("reporte_worker: send to %s: %w", payload.Email, err)
	}

	log.Info().
		Str("to", payload.Email).
		Str("formato", payload.Formato).
		Int("registros", registros).
		Msg("reporte_worker: report delivered")
	return nil
}
