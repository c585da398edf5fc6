package service

import (
	"context"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/repository"

	"github.com/google/uuid"
)

type PresupuestoService interface {
	Crear(ctx context.Context, req dto.CrearPresupuestoRequest) (*dto.PresupuestoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPresupuestoRequest) (*dto.PresupuestoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.PresupuestoResponse, error)
	Listar(ctx context.Context) ([]dto.PresupuestoResponse, error)
	ListarPorProyecto(ctx context.Context, proyectoID uuid.UUID) ([]dto.PresupuestoResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type presupuestoService struct {
	repo         repository.PresupuestoRepository
	proyectoRepo repository.ProyectoRepository
}

func NewPresupuestoService(repo repository.PresupuestoRepository, proyectoRepo repository.ProyectoRepository) PresupuestoService {
	return &presupuestoService{repo: repo, proyectoRepo: proyectoRepo}
}

func (s *presupuestoService) Crear(ctx context.Context, req dto.CrearPresupuestoRequest) (*dto.PresupuestoResponse, error) {
	proyectoID, err := uuid.Parse(req.ProyectoID)
	if err != nil {
		return nil, &ValidacionError{Indice: -1, Detalle: "id_proyecto inválido"}
	}
	if _, err := s.proyectoRepo.FindByID(ctx, proyectoID); err != nil {
		return nil, &ValidacionError{Indice: -1, Detalle: "el proyecto no existe"}
	}

	presupuesto := &model.Presupuesto{
		ProyectoID:    proyectoID,
		Concepto:      req.Concepto,
		MontoEstimado: req.MontoEstimado,
		Periodo:       strOpcional(req.Periodo),
		Activo:        true,
	}
	if err := s.repo.Create(ctx, presupuesto); err != nil {
		return nil, err
	}
	creado, err := s.repo.FindByID(ctx, presupuesto.ID)
	if err != nil {
		return nil, err
	}
	return presupuestoToResponse(creado), nil
}

func (s *presupuestoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPresupuestoRequest) (*dto.PresupuestoResponse, error) {
	presupuesto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Concepto != nil && *req.Concepto != "" {
		presupuesto.Concepto = *req.Concepto
	}
	if req.MontoEstimado != nil {
		presupuesto.MontoEstimado = *req.MontoEstimado
	}
	if req.MontoEjercido != nil {
		presupuesto.MontoEjercido = *req.MontoEjercido
	}
	asignarStr(&presupuesto.Periodo, req.Periodo)
	if req.Activo != nil {
		presupuesto.Activo = *req.Activo
	}

	if err := s.repo.Update(ctx, presupuesto); err != nil {
		return nil, err
	}
	actualizado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return presupuestoToResponse(actualizado), nil
}

func (s *presupuestoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.PresupuestoResponse, error) {
	presupuesto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return presupuestoToResponse(presupuesto), nil
}

func (s *presupuestoService) Listar(ctx context.Context) ([]dto.PresupuestoResponse, error) {
	presupuestos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return presupuestosToResponses(presupuestos), nil
}

func (s *presupuestoService) ListarPorProyecto(ctx context.Context, proyectoID uuid.UUID) ([]dto.PresupuestoResponse, error) {
	presupuestos, err := s.repo.ListByProyecto(ctx, proyectoID)
	if err != nil {
		return nil, err
	}
	return presupuestosToResponses(presupuestos), nil
}

func (s *presupuestoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

func presupuestosToResponses(presupuestos []model.Presupuesto) []dto.PresupuestoResponse {
	out := make([]dto.PresupuestoResponse, 0, len(presupuestos))
	for i := range presupuestos {
		out = append(out, *presupuestoToResponse(&presupuestos[i]))
	}
	return out
}

func presupuestoToResponse(p *model.Presupuesto) *dto.PresupuestoResponse {
	resp := &dto.PresupuestoResponse{
		ID:            p.ID.String(),
		ProyectoID:    p.ProyectoID.String(),
		Concepto:      p.Concepto,
		MontoEstimado: p.MontoEstimado,
		MontoEjercido: p.MontoEjercido,
		Disponible:    p.MontoEstimado.Sub(p.MontoEjercido),
		Periodo:       p.Periodo,
		Activo:        p.Activo,
	}
	if p.Proyecto != nil {
		resp.Proyecto = &p.Proyecto.Nombre
	}
	return resp
}
