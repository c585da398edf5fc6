package service

import (
	"context"
	"fmt"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/infra"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/repository"

	"github.com/google/uuid"
)

// ReporteEncolador abstracts the async job dispatcher so the service does not
// depend on the worker package. Implemented by worker.Dispatcher.
type ReporteEncolador interface {
	EnqueueReporte(ctx context.Context, payload interface{}) error
}

type ReporteService interface {
	// GenerarExcel / GenerarPDF build the file synchronously and return its path.
	GenerarExcel(ctx context.Context, req dto.ReporteSuministrosRequest) (string, error)
	GenerarPDF(ctx context.Context, req dto.ReporteSuministrosRequest) (string, error)
	// GenerarAdeudosExcel builds the debt report synchronously.
	GenerarAdeudosExcel(ctx context.Context, req dto.ReporteAdeudosRequest) (string, error)
	// Encolar defers generation to the worker pool, which emails the result.
	Encolar(ctx context.Context, formato string, req dto.ReporteSuministrosRequest) (*dto.ReporteEncoladoResponse, error)
	// EncolarAdeudos is the async path for the debt report.
	EncolarAdeudos(ctx context.Context, req dto.ReporteAdeudosRequest) (*dto.ReporteEncoladoResponse, error)
}

type reporteService struct {
	suministroRepo repository.SuministroRepository
	adeudoRepo     repository.AdeudoRepository
	proyectoRepo   repository.ProyectoRepository
	encolador      ReporteEncolador
	storagePath    string
}

func NewReporteService(
	suministroRepo repository.SuministroRepository,
	adeudoRepo repository.AdeudoRepository,
	proyectoRepo repository.ProyectoRepository,
	encolador ReporteEncolador,
	storagePath string,
) ReporteService {
	return &reporteService{
		suministroRepo: suministroRepo,
		adeudoRepo:     adeudoRepo,
		proyectoRepo:   proyectoRepo,
		encolador:      encolador,
		storagePath:    storagePath,
	}
}

func (s *reporteService) GenerarExcel(ctx context.Context, req dto.ReporteSuministrosRequest) (string, error) {
	filas, err := s.suministroRepo.ListTodos(ctx, reporteFilter(req))
	if err != nil {
		return "", err
	}
	return infra.GenerateSuministrosExcel(filas, s.storagePath)
}

func (s *reporteService) GenerarPDF(ctx context.Context, req dto.ReporteSuministrosRequest) (string, error) {
	filas, err := s.suministroRepo.ListTodos(ctx, reporteFilter(req))
	if err != nil {
		return "", err
	}
	titulo, err := s.tituloReporte(ctx, req.ProyectoID)
	if err != nil {
		return "", err
	}
	return infra.GenerateSuministrosPDF(filas, titulo, s.storagePath)
}

func (s *reporteService) GenerarAdeudosExcel(ctx context.Context, req dto.ReporteAdeudosRequest) (string, error) {
	filas, err := s.adeudoRepo.ListTodos(ctx, dto.AdeudoFilter{
		Estado:      req.Estado,
		ProveedorID: req.ProveedorID,
	})
	if err != nil {
		return "", err
	}
	return infra.GenerateAdeudosExcel(filas, s.storagePath)
}

func (s *reporteService) Encolar(ctx context.Context, formato string, req dto.ReporteSuministrosRequest) (*dto.ReporteEncoladoResponse, error) {
	if req.Email == "" {
		return nil, &ValidacionError{Indice: -1, Detalle: "email es obligatorio para la entrega asíncrona"}
	}

	payload := dto.ReporteJobPayload{
		Formato:     formato,
		ProyectoID:  req.ProyectoID,
		ProveedorID: req.ProveedorID,
		Fecha:       req.Fecha,
		Email:       req.Email,
	}
	if err := s.encolador.EnqueueReporte(ctx, payload); err != nil {
		return nil, err
	}

	return &dto.ReporteEncoladoResponse{
		Mensaje: fmt.Sprintf("el reporte %s se generará y enviará por correo", formato),
		Email:   req.Email,
	}, nil
}

func (s *reporteService) EncolarAdeudos(ctx context.Context, req dto.ReporteAdeudosRequest) (*dto.ReporteEncoladoResponse, error) {
	if req.Email == "" {
		return nil, &ValidacionError{Indice: -1, Detalle: "email es obligatorio para la entrega asíncrona"}
	}

	payload := dto.ReporteJobPayload{
		Formato:     "adeudos-excel",
		ProveedorID: req.ProveedorID,
		Estado:      req.Estado,
		Email:       req.Email,
	}
	if err := s.encolador.EnqueueReporte(ctx, payload); err != nil {
		return nil, err
	}

	return &dto.ReporteEncoladoResponse{
		Mensaje: "el reporte de adeudos se generará y enviará por correo",
		Email:   req.Email,
	}, nil
}

func (s *reporteService) tituloReporte(ctx context.Context, proyectoID string) (string, error) {
	if proyectoID == "" {
		return "Todos los proyectos", nil
	}
	id, err := uuid.Parse(proyectoID)
	if err != nil {
		return "", &ValidacionError{Indice: -1, Detalle: "id_proyecto inválido"}
	}
	proyecto, err := s.proyectoRepo.FindByID(ctx, id)
	if err != nil {
		return "", &ValidacionError{Indice: -1, Detalle: "el proyecto no existe"}
	}
	return proyecto.Nombre, nil
}

func reporteFilter(req dto.ReporteSuministrosRequest) dto.SuministroFilter {
	return dto.SuministroFilter{
		ProyectoID:  req.ProyectoID,
		ProveedorID: req.ProveedorID,
		Fecha:       req.Fecha,
	}
}
