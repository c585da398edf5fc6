package service

import (
	"context"
	"testing"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubContratoRepo struct {
	contratos map[uuid.UUID]*model.Contrato
}

func newStubContratoRepo() *stubContratoRepo {
	return &stubContratoRepo{contratos: make(map[uuid.UUID]*model.Contrato)}
}

func (r *stubContratoRepo) Create(_ context.Context, c *model.Contrato) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	copia := *c
	r.contratos[c.ID] = &copia
	return nil
}

func (r *stubContratoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Contrato, error) {
	c, ok := r.contratos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *c
	return &copia, nil
}

func (r *stubContratoRepo) ListByEmpleado(_ context.Context, empleadoID uuid.UUID) ([]model.Contrato, error) {
	var out []model.Contrato
	for _, c := range r.contratos {
		if c.EmpleadoID == empleadoID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubContratoRepo) List(_ context.Context) ([]model.Contrato, error) {
	out := make([]model.Contrato, 0, len(r.contratos))
	for _, c := range r.contratos {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubContratoRepo) Update(_ context.Context, c *model.Contrato) error {
	copia := *c
	r.contratos[c.ID] = &copia
	return nil
}

func (r *stubContratoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if c, ok := r.contratos[id]; ok {
		c.Activo = false
	}
	return nil
}

type stubEmpleadoRepo struct{ ids map[uuid.UUID]bool }

func (r *stubEmpleadoRepo) Create(_ context.Context, _ *model.Empleado) error { return nil }
func (r *stubEmpleadoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Empleado, error) {
	if !r.ids[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.Empleado{ID: id, Nombre: "Juan", Apellido: "Pérez"}, nil
}
func (r *stubEmpleadoRepo) List(_ context.Context) ([]model.Empleado, error)  { return nil, nil }
func (r *stubEmpleadoRepo) Update(_ context.Context, _ *model.Empleado) error { return nil }
func (r *stubEmpleadoRepo) SoftDelete(_ context.Context, _ uuid.UUID) error   { return nil }

func buildContratoSvc() (ContratoService, *stubContratoRepo, uuid.UUID) {
	repo := newStubContratoRepo()
	empleadoID := uuid.New()
	svc := NewContratoService(repo, &stubEmpleadoRepo{ids: map[uuid.UUID]bool{empleadoID: true}})
	return svc, repo, empleadoID
}

func TestCrearContrato(t *testing.T) {
	svc, _, empleadoID := buildContratoSvc()

	resp, err := svc.Crear(context.Background(), dto.CrearContratoRequest{
		EmpleadoID:    empleadoID.String(),
		TipoContrato:  "obra_determinada",
		FechaInicio:   "2026-01-15",
		SalarioDiario: decimal.NewFromFloat(450.50),
	})
	require.NoError(t, err)
	assert.True(t, resp.Activo)
	assert.Equal(t, "2026-01-15", resp.FechaInicio)
	assert.Nil(t, resp.FechaFin)
	assert.Equal(t, "450.5", resp.SalarioDiario.String())
}

func TestCrearContrato_FechaFinAnterior(t *testing.T) {
	svc, repo, empleadoID := buildContratoSvc()

	_, err := svc.Crear(context.Background(), dto.CrearContratoRequest{
		EmpleadoID:    empleadoID.String(),
		TipoContrato:  "tiempo_determinado",
		FechaInicio:   "2026-06-01",
		FechaFin:      ptr("2026-05-01"),
		SalarioDiario: decimal.NewFromFloat(300),
	})
	var verr *ValidacionError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Detalle, "fecha_fin")
	assert.Empty(t, repo.contratos)
}

func TestCrearContrato_EmpleadoInexistente(t *testing.T) {
	svc, _, _ := buildContratoSvc()

	_, err := svc.Crear(context.Background(), dto.CrearContratoRequest{
		EmpleadoID:    uuid.New().String(),
		TipoContrato:  "indefinido",
		FechaInicio:   "2026-01-15",
		SalarioDiario: decimal.NewFromFloat(400),
	})
	var verr *ValidacionError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Detalle, "empleado")
}

func TestDesactivarContrato(t *testing.T) {
	svc, repo, empleadoID := buildContratoSvc()

	resp, err := svc.Crear(context.Background(), dto.CrearContratoRequest{
		EmpleadoID:    empleadoID.String(),
		TipoContrato:  "indefinido",
		FechaInicio:   "2026-01-15",
		SalarioDiario: decimal.NewFromFloat(400),
	})
	require.NoError(t, err)

	id := uuid.MustParse(resp.ID)
	require.NoError(t, svc.Desactivar(context.Background(), id))
	assert.False(t, repo.contratos[id].Activo)
}
