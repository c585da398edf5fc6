package service

import (
	"context"
	"time"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/repository"

	"github.com/google/uuid"
)

type ProyectoService interface {
	Crear(ctx context.Context, req dto.CrearProyectoRequest) (*dto.ProyectoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProyectoRequest) (*dto.ProyectoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProyectoResponse, error)
	Listar(ctx context.Context) ([]dto.ProyectoResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type proyectoService struct {
	repo repository.ProyectoRepository
}

func NewProyectoService(repo repository.ProyectoRepository) ProyectoService {
	return &proyectoService{repo: repo}
}

func (s *proyectoService) Crear(ctx context.Context, req dto.CrearProyectoRequest) (*dto.ProyectoResponse, error) {
	estado := req.Estado
	if estado == "" {
		estado = "activo"
	}
	proyecto := &model.Proyecto{
		Nombre:      req.Nombre,
		Ubicacion:   strOpcional(req.Ubicacion),
		Responsable: strOpcional(req.Responsable),
		Estado:      estado,
		Activo:      true,
	}

	var err error
	if proyecto.FechaInicio, err = fechaOpcional(req.FechaInicio); err != nil {
		return nil, &ValidacionError{Indice: -1, Detalle: "fecha_inicio inválida, se espera YYYY-MM-DD"}
	}
	if proyecto.FechaFin, err = fechaOpcional(req.FechaFin); err != nil {
		return nil, &ValidacionError{Indice: -1, Detalle: "fecha_fin inválida, se espera YYYY-MM-DD"}
	}

	if err := s.repo.Create(ctx, proyecto); err != nil {
		return nil, err
	}
	return proyectoToResponse(proyecto), nil
}

func (s *proyectoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProyectoRequest) (*dto.ProyectoResponse, error) {
	proyecto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil && *req.Nombre != "" {
		proyecto.Nombre = *req.Nombre
	}
	asignarStr(&proyecto.Ubicacion, req.Ubicacion)
	asignarStr(&proyecto.Responsable, req.Responsable)
	if req.Estado != nil && *req.Estado != "" {
		proyecto.Estado = *req.Estado
	}
	if req.FechaInicio != nil && *req.FechaInicio != "" {
		f, err := time.Parse("2006-01-02", *req.FechaInicio)
		if err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "fecha_inicio inválida, se espera YYYY-MM-DD"}
		}
		proyecto.FechaInicio = &f
	}
	if req.FechaFin != nil && *req.FechaFin != "" {
		f, err := time.Parse("2006-01-02", *req.FechaFin)
		if err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "fecha_fin inválida, se espera YYYY-MM-DD"}
		}
		proyecto.FechaFin = &f
	}
	if req.Activo != nil {
		proyecto.Activo = *req.Activo
	}

	if err := s.repo.Update(ctx, proyecto); err != nil {
		return nil, err
	}
	return proyectoToResponse(proyecto), nil
}

func (s *proyectoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProyectoResponse, error) {
	proyecto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return proyectoToResponse(proyecto), nil
}

func (s *proyectoService) Listar(ctx context.Context) ([]dto.ProyectoResponse, error) {
	proyectos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProyectoResponse, 0, len(proyectos))
	for i := range proyectos {
		out = append(out, *proyectoToResponse(&proyectos[i]))
	}
	return out, nil
}

func (s *proyectoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

func fechaOpcional(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	f, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func formatoFecha(t *time.Time) *string {
	if t == nil {
		return nil
	}
	f := t.Format("2006-01-02")
	return &f
}

func proyectoToResponse(p *model.Proyecto) *dto.ProyectoResponse {
	return &dto.ProyectoResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		Ubicacion:   p.Ubicacion,
		Responsable: p.Responsable,
		FechaInicio: formatoFecha(p.FechaInicio),
		FechaFin:    formatoFecha(p.FechaFin),
		Estado:      p.Estado,
		Activo:      p.Activo,
	}
}
