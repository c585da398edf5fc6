package service

import (
	"context"
	"errors"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/repository"

	"github.com/google/uuid"
)

var ErrOficioDuplicado = errors.New("ya existe un oficio con ese nombre")

type OficioService interface {
	Crear(ctx context.Context, req dto.CrearOficioRequest) (*dto.OficioResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarOficioRequest) (*dto.OficioResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.OficioResponse, error)
	Listar(ctx context.Context) ([]dto.OficioResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type oficioService struct {
	repo repository.OficioRepository
}

func NewOficioService(repo repository.OficioRepository) OficioService {
	return &oficioService{repo: repo}
}

func (s *oficioService) Crear(ctx context.Context, req dto.CrearOficioRequest) (*dto.OficioResponse, error) {
	if _, err := s.repo.FindByNombre(ctx, req.Nombre); err == nil {
		return nil, ErrOficioDuplicado
	}

	oficio := &model.Oficio{
		Nombre:      req.Nombre,
		Descripcion: strOpcional(req.Descripcion),
		Activo:      true,
	}
	if err := s.repo.Create(ctx, oficio); err != nil {
		return nil, err
	}
	return oficioToResponse(oficio), nil
}

func (s *oficioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarOficioRequest) (*dto.OficioResponse, error) {
	oficio, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil && *req.Nombre != "" && *req.Nombre != oficio.Nombre {
		if _, err := s.repo.FindByNombre(ctx, *req.Nombre); err == nil {
			return nil, ErrOficioDuplicado
		}
		oficio.Nombre = *req.Nombre
	}
	asignarStr(&oficio.Descripcion, req.Descripcion)
	if req.Activo != nil {
		oficio.Activo = *req.Activo
	}

	if err := s.repo.Update(ctx, oficio); err != nil {
		return nil, err
	}
	return oficioToResponse(oficio), nil
}

func (s *oficioService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.OficioResponse, error) {
	oficio, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return oficioToResponse(oficio), nil
}

func (s *oficioService) Listar(ctx context.Context) ([]dto.OficioResponse, error) {
	oficios, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OficioResponse, 0, len(oficios))
	for i := range oficios {
		out = append(out, *oficioToResponse(&oficios[i]))
	}
	return out, nil
}

func (s *oficioService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

func oficioToResponse(o *model.Oficio) *dto.OficioResponse {
	return &dto.OficioResponse{
		ID:          o.ID.String(),
		Nombre:      o.Nombre,
		Descripcion: o.Descripcion,
		Activo:      o.Activo,
	}
}
