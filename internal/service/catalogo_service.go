package service

import (
	"context"
	"errors"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/repository"

	"github.com/google/uuid"
)

var ErrCategoriaDuplicada = errors.New("ya existe una categoría con ese nombre")

// CatalogoService manages the reference catalogs behind supply line items.
type CatalogoService interface {
	CrearCategoria(ctx context.Context, req dto.CrearCategoriaSuministroRequest) (*dto.CategoriaSuministroResponse, error)
	ActualizarCategoria(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaSuministroRequest) (*dto.CategoriaSuministroResponse, error)
	ListarCategorias(ctx context.Context) ([]dto.CategoriaSuministroResponse, error)
	DesactivarCategoria(ctx context.Context, id uuid.UUID) error

	CrearUnidad(ctx context.Context, req dto.CrearUnidadMedidaRequest) (*dto.UnidadMedidaResponse, error)
	ActualizarUnidad(ctx context.Context, id uuid.UUID, req dto.ActualizarUnidadMedidaRequest) (*dto.UnidadMedidaResponse, error)
	ListarUnidades(ctx context.Context) ([]dto.UnidadMedidaResponse, error)
	DesactivarUnidad(ctx context.Context, id uuid.UUID) error
}

type catalogoService struct {
	repo repository.CatalogoRepository
}

func NewCatalogoService(repo repository.CatalogoRepository) CatalogoService {
	return &catalogoService{repo: repo}
}

func (s *catalogoService) CrearCategoria(ctx context.Context, req dto.CrearCategoriaSuministroRequest) (*dto.CategoriaSuministroResponse, error) {
	if _, err := s.repo.FindCategoriaPorNombre(ctx, req.Nombre); err == nil {
		return nil, ErrCategoriaDuplicada
	}

	categoria := &model.CategoriaSuministro{
		Nombre: req.Nombre,
		Tipo:   strOpcional(req.Tipo),
		Activo: true,
	}
	if err := s.repo.CrearCategoria(ctx, categoria); err != nil {
		return nil, err
	}
	return categoriaToResponse(categoria), nil
}

func (s *catalogoService) ActualizarCategoria(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaSuministroRequest) (*dto.CategoriaSuministroResponse, error) {
	categoria, err := s.repo.FindCategoria(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil && *req.Nombre != "" && *req.Nombre != categoria.Nombre {
		if _, err := s.repo.FindCategoriaPorNombre(ctx, *req.Nombre); err == nil {
			return nil, ErrCategoriaDuplicada
		}
		categoria.Nombre = *req.Nombre
	}
	asignarStr(&categoria.Tipo, req.Tipo)
	if req.Activo != nil {
		categoria.Activo = *req.Activo
	}

	if err := s.repo.ActualizarCategoria(ctx, categoria); err != nil {
		return nil, err
	}
	return categoriaToResponse(categoria), nil
}

func (s *catalogoService) ListarCategorias(ctx context.Context) ([]dto.CategoriaSuministroResponse, error) {
	categorias, err := s.repo.ListCategorias(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaSuministroResponse, 0, len(categorias))
	for i := range categorias {
		out = append(out, *categoriaToResponse(&categorias[i]))
	}
	return out, nil
}

func (s *catalogoService) DesactivarCategoria(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindCategoria(ctx, id); err != nil {
		return err
	}
	return s.repo.DesactivarCategoria(ctx, id)
}

func (s *catalogoService) CrearUnidad(ctx context.Context, req dto.CrearUnidadMedidaRequest) (*dto.UnidadMedidaResponse, error) {
	unidad := &model.UnidadMedida{
		Nombre:  req.Nombre,
		Simbolo: req.Simbolo,
		Activo:  true,
	}
	if err := s.repo.CrearUnidad(ctx, unidad); err != nil {
		return nil, err
	}
	return unidadToResponse(unidad), nil
}

func (s *catalogoService) ActualizarUnidad(ctx context.Context, id uuid.UUID, req dto.ActualizarUnidadMedidaRequest) (*dto.UnidadMedidaResponse, error) {
	unidad, err := s.repo.FindUnidad(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil && *req.Nombre != "" {
		unidad.Nombre = *req.Nombre
	}
	if req.Simbolo != nil && *req.Simbolo != "" {
		unidad.Simbolo = *req.Simbolo
	}
	if req.Activo != nil {
		unidad.Activo = *req.Activo
	}

	if err := s.repo.ActualizarUnidad(ctx, unidad); err != nil {
		return nil, err
	}
	return unidadToResponse(unidad), nil
}

func (s *catalogoService) ListarUnidades(ctx context.Context) ([]dto.UnidadMedidaResponse, error) {
	unidades, err := s.repo.ListUnidades(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnidadMedidaResponse, 0, len(unidades))
	for i := range unidades {
		out = append(out, *unidadToResponse(&unidades[i]))
	}
	return out, nil
}

func (s *catalogoService) DesactivarUnidad(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindUnidad(ctx, id); err != nil {
		return err
	}
	return s.repo.DesactivarUnidad(ctx, id)
}

func categoriaToResponse(c *model.CategoriaSuministro) *dto.CategoriaSuministroResponse {
	return &dto.CategoriaSuministroResponse{
		ID:     c.ID.String(),
		Nombre: c.Nombre,
		Tipo:   c.Tipo,
		Activo: c.Activo,
	}
}

func unidadToResponse(u *model.UnidadMedida) *dto.UnidadMedidaResponse {
	return &dto.UnidadMedidaResponse{
		ID:      u.ID.String(),
		Nombre:  u.Nombre,
		Simbolo: u.Simbolo,
		Activo:  u.Activo,
	}
}
