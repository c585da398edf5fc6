package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/repository"

	"github.com/google/uuid"
)

type ContratoService interface {
	Crear(ctx context.Context, req dto.CrearContratoRequest) (*dto.ContratoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarContratoRequest) (*dto.ContratoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ContratoResponse, error)
	Listar(ctx context.Context) ([]dto.ContratoResponse, error)
	ListarPorEmpleado(ctx context.Context, empleadoID uuid.UUID) ([]dto.ContratoResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type contratoService struct {
	repo         repository.ContratoRepository
	empleadoRepo repository.EmpleadoRepository
}

func NewContratoService(repo repository.ContratoRepository, empleadoRepo repository.EmpleadoRepository) ContratoService {
	return &contratoService{repo: repo, empleadoRepo: empleadoRepo}
}

func (s *contratoService) Crear(ctx context.Context, req dto.CrearContratoRequest) (*dto.ContratoResponse, error) {
	empleadoID, err := uuid.Parse(req.EmpleadoID)
	if err != nil {
		return nil, &ValidacionError{Indice: -1, Detalle: "id_empleado inválido"}
	}
	if _, err := s.empleadoRepo.FindByID(ctx, empleadoID); err != nil {
		return nil, &ValidacionError{Indice: -1, Detalle: "el empleado no existe"}
	}

	inicio, err := time.Parse("2006-01-02", req.FechaInicio)
	if err != nil {
		return nil, &ValidacionError{Indice: -1, Detalle: "fecha_inicio inválida, se espera YYYY-MM-DD"}
	}

	contrato := &model.Contrato{
		EmpleadoID:    empleadoID,
		TipoContrato:  req.TipoContrato,
		FechaInicio:   inicio,
		SalarioDiario: req.SalarioDiario,
		Activo:        true,
	}

	if req.FechaFin != nil && *req.FechaFin != "" {
		fin, err := time.Parse("2006-01-02", *req.FechaFin)
		if err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "fecha_fin inválida, se espera YYYY-MM-DD"}
		}
		if fin.Before(inicio) {
			return nil, &ValidacionError{Indice: -1, Detalle: "fecha_fin no puede ser anterior a fecha_inicio"}
		}
		contrato.FechaFin = &fin
	}

	if err := s.repo.Create(ctx, contrato); err != nil {
		return nil, err
	}
	creado, err := s.repo.FindByID(ctx, contrato.ID)
	if err != nil {
		return nil, err
	}
	return contratoToResponse(creado), nil
}

func (s *contratoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarContratoRequest) (*dto.ContratoResponse, error) {
	contrato, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TipoContrato != nil && *req.TipoContrato != "" {
		contrato.TipoContrato = *req.TipoContrato
	}
	if req.FechaInicio != nil && *req.FechaInicio != "" {
		inicio, err := time.Parse("2006-01-02", *req.FechaInicio)
		if err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "fecha_inicio inválida, se espera YYYY-MM-DD"}
		}
		contrato.FechaInicio = inicio
	}
	if req.FechaFin != nil && *req.FechaFin != "" {
		fin, err := time.Parse("2006-01-02", *req.FechaFin)
		if err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "fecha_fin inválida, se espera YYYY-MM-DD"}
		}
		if fin.Before(contrato.FechaInicio) {
			return nil, &ValidacionError{Indice: -1, Detalle: "fecha_fin no puede ser anterior a fecha_inicio"}
		}
		contrato.FechaFin = &fin
	}
	if req.SalarioDiario != nil {
		contrato.SalarioDiario = *req.SalarioDiario
	}
	if req.Activo != nil {
		contrato.Activo = *req.Activo
	}

	if err := s.repo.Update(ctx, contrato); err != nil {
		return nil, err
	}
	actualizado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return contratoToResponse(actualizado), nil
}

func (s *contratoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ContratoResponse, error) {
	contrato, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return contratoToResponse(contrato), nil
}

func (s *contratoService) Listar(ctx context.Context) ([]dto.ContratoResponse, error) {
	contratos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return contratosToResponses(contratos), nil
}

func (s *contratoService) ListarPorEmpleado(ctx context.Context, empleadoID uuid.UUID) ([]dto.ContratoResponse, error) {
	contratos, err := s.repo.ListByEmpleado(ctx, empleadoID)
	if err != nil {
		return nil, err
	}
	return contratosToResponses(contratos), nil
}

func (s *contratoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

func contratosToResponses(contratos []model.Contrato) []dto.ContratoResponse {
	out := make([]dto.ContratoResponse, 0, len(contratos))
	for i := range contratos {
		out = append(out, *contratoToResponse(&contratos[i]))
	}
	return out
}

func contratoToResponse(c *model.Contrato) *dto.ContratoResponse {
	resp := &dto.ContratoResponse{
		ID:            c.ID.String(),
		EmpleadoID:    c.EmpleadoID.String(),
		TipoContrato:  c.TipoContrato,
		FechaInicio:   c.FechaInicio.Format("2006-01-02"),
		FechaFin:      formatoFecha(c.FechaFin),
		SalarioDiario: c.SalarioDiario,
		Activo:        c.Activo,
	}
	if c.Empleado != nil {
		nombre := fmt.Sprintf("%s %s", c.Empleado.Nombre, c.Empleado.Apellido)
		resp.Empleado = &nombre
	}
	return resp
}
