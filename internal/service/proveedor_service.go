package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/repository"

	"github.com/google/uuid"
)

var ErrProveedorRFCDuplicado = errors.New("ya existe un proveedor activo con ese RFC")

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error)
	Listar(ctx context.Context) ([]dto.ProveedorResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	if req.RFC != nil && *req.RFC != "" {
		if _, err := s.repo.FindPorRFC(ctx, *req.RFC); err == nil {
			return nil, ErrProveedorRFCDuplicado
		}
	}

	proveedor := &model.Proveedor{
		Nombre:        req.Nombre,
		RFC:           strOpcional(req.RFC),
		TipoProveedor: strOpcional(req.TipoProveedor),
		Telefono:      strOpcional(req.Telefono),
		Email:         strOpcional(req.Email),
		Direccion:     strOpcional(req.Direccion),
		Activo:        true,
	}
	if err := s.repo.Create(ctx, proveedor); err != nil {
		return nil, err
	}
	return proveedorToResponse(proveedor), nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	proveedor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil && *req.Nombre != "" {
		proveedor.Nombre = *req.Nombre
	}
	if req.RFC != nil && *req.RFC != "" &&
		(proveedor.RFC == nil || !strings.EqualFold(*req.RFC, *proveedor.RFC)) {
		if _, err := s.repo.FindPorRFC(ctx, *req.RFC); err == nil {
			return nil, ErrProveedorRFCDuplicado
		}
	}
	asignarStr(&proveedor.RFC, req.RFC)
	asignarStr(&proveedor.TipoProveedor, req.TipoProveedor)
	asignarStr(&proveedor.Telefono, req.Telefono)
	asignarStr(&proveedor.Email, req.Email)
	asignarStr(&proveedor.Direccion, req.Direccion)
	if req.Activo != nil {
		proveedor.Activo = *req.Activo
	}

	if err := s.repo.Update(ctx, proveedor); err != nil {
		return nil, err
	}
	return proveedorToResponse(proveedor), nil
}

func (s *proveedorService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error) {
	proveedor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return proveedorToResponse(proveedor), nil
}

func (s *proveedorService) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		out = append(out, *proveedorToResponse(&proveedores[i]))
	}
	return out, nil
}

func (s *proveedorService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

func proveedorToResponse(p *model.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:            p.ID.String(),
		Nombre:        p.Nombre,
		RFC:           p.RFC,
		TipoProveedor: p.TipoProveedor,
		Telefono:      p.Telefono,
		Email:         p.Email,
		Direccion:     p.Direccion,
		Activo:        p.Activo,
	}
}
