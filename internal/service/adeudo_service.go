package service

import (
	"context"
	"time"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AdeudoService interface {
	Crear(ctx context.Context, req dto.CrearAdeudoRequest) (*dto.AdeudoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarAdeudoRequest) (*dto.AdeudoResponse, error)
	RegistrarPago(ctx context.Context, id uuid.UUID, req dto.RegistrarPagoRequest) (*dto.AdeudoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.AdeudoResponse, error)
	Listar(ctx context.Context, filter dto.AdeudoFilter) (*dto.AdeudoListResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type adeudoService struct {
	repo          repository.AdeudoRepository
	proveedorRepo repository.ProveedorRepository
	proyectoRepo  repository.ProyectoRepository
	// hoy is injectable so alert windows can be pinned in tests.
	hoy func() time.Time
}

func NewAdeudoService(
	repo repository.AdeudoRepository,
	proveedorRepo repository.ProveedorRepository,
	proyectoRepo repository.ProyectoRepository,
) AdeudoService {
	return &adeudoService{
		repo:          repo,
		proveedorRepo: proveedorRepo,
		proyectoRepo:  proyectoRepo,
		hoy:           time.Now,
	}
}

func (s *adeudoService) Crear(ctx context.Context, req dto.CrearAdeudoRequest) (*dto.AdeudoResponse, error) {
	adeudo := &model.Adeudo{
		Descripcion: req.Descripcion,
		MontoTotal:  req.MontoTotal,
		MontoPagado: decimal.Zero,
		Estado:      "pendiente",
	}

	if req.ProveedorID != nil && *req.ProveedorID != "" {
		id, err := uuid.Parse(*req.ProveedorID)
		if err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "id_proveedor inválido"}
		}
		if _, err := s.proveedorRepo.FindByID(ctx, id); err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "el proveedor no existe"}
		}
		adeudo.ProveedorID = &id
	}
	if req.ProyectoID != nil && *req.ProyectoID != "" {
		id, err := uuid.Parse(*req.ProyectoID)
		if err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "id_proyecto inválido"}
		}
		if _, err := s.proyectoRepo.FindByID(ctx, id); err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "el proyecto no existe"}
		}
		adeudo.ProyectoID = &id
	}
	if req.FechaVencimiento != nil && *req.FechaVencimiento != "" {
		f, err := time.Parse("2006-01-02", *req.FechaVencimiento)
		if err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "fecha_vencimiento inválida, se espera YYYY-MM-DD"}
		}
		adeudo.FechaVencimiento = &f
	}

	if err := s.repo.Create(ctx, adeudo); err != nil {
		return nil, err
	}
	creado, err := s.repo.FindByID(ctx, adeudo.ID)
	if err != nil {
		return nil, err
	}
	return s.adeudoToResponse(creado), nil
}

func (s *adeudoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarAdeudoRequest) (*dto.AdeudoResponse, error) {
	adeudo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Descripcion != nil && *req.Descripcion != "" {
		adeudo.Descripcion = *req.Descripcion
	}
	if req.ProveedorID != nil && *req.ProveedorID != "" {
		pid, err := uuid.Parse(*req.ProveedorID)
		if err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "id_proveedor inválido"}
		}
		if _, err := s.proveedorRepo.FindByID(ctx, pid); err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "el proveedor no existe"}
		}
		adeudo.ProveedorID = &pid
	}
	if req.ProyectoID != nil && *req.ProyectoID != "" {
		pid, err := uuid.Parse(*req.ProyectoID)
		if err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "id_proyecto inválido"}
		}
		if _, err := s.proyectoRepo.FindByID(ctx, pid); err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "el proyecto no existe"}
		}
		adeudo.ProyectoID = &pid
	}
	if req.MontoTotal != nil {
		adeudo.MontoTotal = *req.MontoTotal
	}
	if req.FechaVencimiento != nil && *req.FechaVencimiento != "" {
		f, err := time.Parse("2006-01-02", *req.FechaVencimiento)
		if err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "fecha_vencimiento inválida, se espera YYYY-MM-DD"}
		}
		adeudo.FechaVencimiento = &f
	}
	if req.Estado != nil && *req.Estado != "" {
		adeudo.Estado = *req.Estado
	}

	if err := s.repo.Update(ctx, adeudo); err != nil {
		return nil, err
	}
	actualizado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.adeudoToResponse(actualizado), nil
}

// RegistrarPago accumulates a payment on the debt and rolls its estado:
// pagado once monto_pagado covers monto_total, parcial for anything in
// between, back to pendiente only if nothing has been paid.
func (s *adeudoService) RegistrarPago(ctx context.Context, id uuid.UUID, req dto.RegistrarPagoRequest) (*dto.AdeudoResponse, error) {
	adeudo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if adeudo.Estado == "pagado" {
		return nil, &ValidacionError{Indice: -1, Detalle: "el adeudo ya está pagado"}
	}

	adeudo.MontoPagado = adeudo.MontoPagado.Add(req.Monto)
	switch {
	case adeudo.MontoPagado.GreaterThanOrEqual(adeudo.MontoTotal):
		adeudo.Estado = "pagado"
	case adeudo.MontoPagado.IsPositive():
		adeudo.Estado = "parcial"
	default:
		adeudo.Estado = "pendiente"
	}

	if err := s.repo.Update(ctx, adeudo); err != nil {
		return nil, err
	}
	actualizado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.adeudoToResponse(actualizado), nil
}

func (s *adeudoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.AdeudoResponse, error) {
	adeudo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.adeudoToResponse(adeudo), nil
}

func (s *adeudoService) Listar(ctx context.Context, filter dto.AdeudoFilter) (*dto.AdeudoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	adeudos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.AdeudoResponse, 0, len(adeudos))
	for i := range adeudos {
		data = append(data, *s.adeudoToResponse(&adeudos[i]))
	}
	return &dto.AdeudoListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *adeudoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *adeudoService) adeudoToResponse(a *model.Adeudo) *dto.AdeudoResponse {
	resp := &dto.AdeudoResponse{
		ID:          a.ID.String(),
		Descripcion: a.Descripcion,
		MontoTotal:  a.MontoTotal,
		MontoPagado: a.MontoPagado,
		Estado:      a.Estado,
		Alerta:      CalcularAlerta(a.FechaVencimiento, a.Estado, s.hoy()),
		CreatedAt:   a.CreatedAt.UTC().Format(time.RFC3339),
	}
	if a.ProveedorID != nil {
		id := a.ProveedorID.String()
		resp.ProveedorID = &id
	}
	if a.ProyectoID != nil {
		id := a.ProyectoID.String()
		resp.ProyectoID = &id
	}
	if a.FechaVencimiento != nil {
		f := a.FechaVencimiento.Format("2006-01-02")
		resp.FechaVencimiento = &f
	}
	if a.Proveedor != nil {
		resp.Proveedor = &a.Proveedor.Nombre
	}
	if a.Proyecto != nil {
		resp.Proyecto = &a.Proyecto.Nombre
	}
	return resp
}
