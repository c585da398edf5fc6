package service

import (
	"context"
	"time"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BitacoraService records and queries the append-only audit trail.
type BitacoraService interface {
	// Registrar never fails the caller: an audit write error is logged and
	// swallowed so a mutation that already committed is not reported as failed.
	Registrar(ctx context.Context, usuarioID *uuid.UUID, accion, entidad string, entidadID *string, detalle *string)
	Listar(ctx context.Context, filter dto.BitacoraFilter) (*dto.BitacoraListResponse, error)
}

type bitacoraService struct {
	repo repository.BitacoraRepository
}

func NewBitacoraService(repo repository.BitacoraRepository) BitacoraService {
	return &bitacoraService{repo: repo}
}

func (s *bitacoraService) Registrar(ctx context.Context, usuarioID *uuid.UUID, accion, entidad string, entidadID *string, detalle *string) {
	entrada := &model.Bitacora{
		UsuarioID: usuarioID,
		Accion:    accion,
		Entidad:   entidad,
		EntidadID: entidadID,
		Detalle:   detalle,
	}
	if err := s.repo.Create(ctx, entrada); err != nil {
		log.Error().Err(err).
			Str("entidad", entidad).
			Str("accion", accion).
			Msg("no se pudo registrar la entrada de bitácora")
	}
}

func (s *bitacoraService) Listar(ctx context.Context, filter dto.BitacoraFilter) (*dto.BitacoraListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	entradas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.BitacoraResponse, 0, len(entradas))
	for i := range entradas {
		data = append(data, *bitacoraToResponse(&entradas[i]))
	}
	return &dto.BitacoraListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func bitacoraToResponse(b *model.Bitacora) *dto.BitacoraResponse {
	resp := &dto.BitacoraResponse{
		ID:        b.ID.String(),
		Accion:    b.Accion,
		Entidad:   b.Entidad,
		EntidadID: b.EntidadID,
		Detalle:   b.Detalle,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
	if b.Usuario != nil {
		resp.Usuario = &b.Usuario.Username
	}
	return resp
}
