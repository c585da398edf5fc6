package service

import (
	"context"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/repository"

	"github.com/google/uuid"
)

type EmpleadoService interface {
	Crear(ctx context.Context, req dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEmpleadoRequest) (*dto.EmpleadoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.EmpleadoResponse, error)
	Listar(ctx context.Context) ([]dto.EmpleadoResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type empleadoService struct {
	repo         repository.EmpleadoRepository
	oficioRepo   repository.OficioRepository
	proyectoRepo repository.ProyectoRepository
}

func NewEmpleadoService(
	repo repository.EmpleadoRepository,
	oficioRepo repository.OficioRepository,
	proyectoRepo repository.ProyectoRepository,
) EmpleadoService {
	return &empleadoService{repo: repo, oficioRepo: oficioRepo, proyectoRepo: proyectoRepo}
}

func (s *empleadoService) Crear(ctx context.Context, req dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	empleado := &model.Empleado{
		Nombre:     req.Nombre,
		Apellido:   req.Apellido,
		NSS:        strOpcional(req.NSS),
		RFC:        strOpcional(req.RFC),
		Telefono:   strOpcional(req.Telefono),
		PagoDiario: req.PagoDiario,
		Activo:     true,
	}

	oficioID, err := s.resolverOficio(ctx, req.OficioID)
	if err != nil {
		return nil, err
	}
	empleado.OficioID = oficioID

	proyectoID, err := s.resolverProyecto(ctx, req.ProyectoID)
	if err != nil {
		return nil, err
	}
	empleado.ProyectoID = proyectoID

	if err := s.repo.Create(ctx, empleado); err != nil {
		return nil, err
	}
	creado, err := s.repo.FindByID(ctx, empleado.ID)
	if err != nil {
		return nil, err
	}
	return empleadoToResponse(creado), nil
}

func (s *empleadoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	empleado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil && *req.Nombre != "" {
		empleado.Nombre = *req.Nombre
	}
	if req.Apellido != nil && *req.Apellido != "" {
		empleado.Apellido = *req.Apellido
	}
	asignarStr(&empleado.NSS, req.NSS)
	asignarStr(&empleado.RFC, req.RFC)
	asignarStr(&empleado.Telefono, req.Telefono)
	if req.PagoDiario != nil {
		empleado.PagoDiario = *req.PagoDiario
	}

	if req.OficioID != nil {
		oficioID, err := s.resolverOficio(ctx, req.OficioID)
		if err != nil {
			return nil, err
		}
		empleado.OficioID = oficioID
	}
	if req.ProyectoID != nil {
		proyectoID, err := s.resolverProyecto(ctx, req.ProyectoID)
		if err != nil {
			return nil, err
		}
		empleado.ProyectoID = proyectoID
	}

	if err := s.repo.Update(ctx, empleado); err != nil {
		return nil, err
	}
	actualizado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return empleadoToResponse(actualizado), nil
}

func (s *empleadoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.EmpleadoResponse, error) {
	empleado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return empleadoToResponse(empleado), nil
}

func (s *empleadoService) Listar(ctx context.Context) ([]dto.EmpleadoResponse, error) {
	empleados, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmpleadoResponse, 0, len(empleados))
	for i := range empleados {
		out = append(out, *empleadoToResponse(&empleados[i]))
	}
	return out, nil
}

func (s *empleadoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *empleadoService) resolverOficio(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, &ValidacionError{Indice: -1, Detalle: "id_oficio inválido"}
	}
	if _, err := s.oficioRepo.FindByID(ctx, id); err != nil {
		return nil, &ValidacionError{Indice: -1, Detalle: "el oficio no existe"}
	}
	return &id, nil
}

func (s *empleadoService) resolverProyecto(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, &ValidacionError{Indice: -1, Detalle: "id_proyecto inválido"}
	}
	if _, err := s.proyectoRepo.FindByID(ctx, id); err != nil {
		return nil, &ValidacionError{Indice: -1, Detalle: "el proyecto no existe"}
	}
	return &id, nil
}

func empleadoToResponse(e *model.Empleado) *dto.EmpleadoResponse {
	resp := &dto.EmpleadoResponse{
		ID:         e.ID.String(),
		Nombre:     e.Nombre,
		Apellido:   e.Apellido,
		NSS:        e.NSS,
		RFC:        e.RFC,
		Telefono:   e.Telefono,
		PagoDiario: e.PagoDiario,
		Activo:     e.Activo,
	}
	if e.Oficio != nil {
		resp.Oficio = &e.Oficio.Nombre
	}
	if e.Proyecto != nil {
		resp.Proyecto = &e.Proyecto.Nombre
	}
	return resp
}
