package service

import (
	"context"
	"testing"
	"time"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubAdeudoRepo struct {
	adeudos map[uuid.UUID]*model.Adeudo
}

func newStubAdeudoRepo() *stubAdeudoRepo {
	return &stubAdeudoRepo{adeudos: make(map[uuid.UUID]*model.Adeudo)}
}

func (r *stubAdeudoRepo) Create(_ context.Context, a *model.Adeudo) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	copia := *a
	r.adeudos[a.ID] = &copia
	return nil
}

func (r *stubAdeudoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Adeudo, error) {
	a, ok := r.adeudos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *a
	return &copia, nil
}

func (r *stubAdeudoRepo) List(_ context.Context, _ dto.AdeudoFilter) ([]model.Adeudo, int64, error) {
	out := make([]model.Adeudo, 0, len(r.adeudos))
	for _, a := range r.adeudos {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (r *stubAdeudoRepo) ListTodos(_ context.Context, _ dto.AdeudoFilter) ([]model.Adeudo, error) {
	out := make([]model.Adeudo, 0, len(r.adeudos))
	for _, a := range r.adeudos {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAdeudoRepo) ListPorVencer(_ context.Context, horizonte time.Time) ([]model.Adeudo, error) {
	var out []model.Adeudo
	for _, a := range r.adeudos {
		if a.Estado == "pagado" || a.FechaVencimiento == nil {
			continue
		}
		if !a.FechaVencimiento.After(horizonte) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAdeudoRepo) Update(_ context.Context, a *model.Adeudo) error {
	copia := *a
	r.adeudos[a.ID] = &copia
	return nil
}

func (r *stubAdeudoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.adeudos, id)
	return nil
}

func buildAdeudoSvc(hoy time.Time) (AdeudoService, *stubAdeudoRepo) {
	repo := newStubAdeudoRepo()
	svc := NewAdeudoService(
		repo,
		&stubProveedorRepo{ids: map[uuid.UUID]bool{}},
		&stubProyectoRepo{ids: map[uuid.UUID]bool{}},
	)
	svc.(*adeudoService).hoy = func() time.Time { return hoy }
	return svc, repo
}

func TestCrearAdeudo(t *testing.T) {
	svc, _ := buildAdeudoSvc(fecha("2026-03-10"))

	resp, err := svc.Crear(context.Background(), dto.CrearAdeudoRequest{
		Descripcion:      "Factura de cemento",
		MontoTotal:       decimal.NewFromFloat(1500),
		FechaVencimiento: ptr("2026-03-12"),
	})
	require.NoError(t, err)
	assert.Equal(t, "pendiente", resp.Estado)
	assert.Equal(t, "0", resp.MontoPagado.String())
	require.NotNil(t, resp.Alerta)
	assert.Equal(t, UrgenciaAlto, resp.Alerta.NivelUrgencia)
	assert.Equal(t, 2, resp.Alerta.DiasRestantes)
}

func TestCrearAdeudo_FechaInvalida(t *testing.T) {
	svc, _ := buildAdeudoSvc(fecha("2026-03-10"))

	_, err := svc.Crear(context.Background(), dto.CrearAdeudoRequest{
		Descripcion:      "Factura",
		MontoTotal:       decimal.NewFromFloat(100),
		FechaVencimiento: ptr("12/03/2026"),
	})
	var verr *ValidacionError
	require.ErrorAs(t, err, &verr)
}

func TestCrearAdeudo_ProveedorInexistente(t *testing.T) {
	svc, _ := buildAdeudoSvc(fecha("2026-03-10"))

	_, err := svc.Crear(context.Background(), dto.CrearAdeudoRequest{
		Descripcion: "Factura",
		MontoTotal:  decimal.NewFromFloat(100),
		ProveedorID: ptr(uuid.New().String()),
	})
	var verr *ValidacionError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Detalle, "proveedor")
}

func TestRegistrarPago_RuedaEstados(t *testing.T) {
	svc, repo := buildAdeudoSvc(fecha("2026-03-10"))

	creado, err := svc.Crear(context.Background(), dto.CrearAdeudoRequest{
		Descripcion: "Renta de maquinaria",
		MontoTotal:  decimal.NewFromFloat(100),
	})
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	// Partial payment.
	resp, err := svc.RegistrarPago(context.Background(), id, dto.RegistrarPagoRequest{
		Monto: decimal.NewFromFloat(40),
	})
	require.NoError(t, err)
	assert.Equal(t, "parcial", resp.Estado)
	assert.Equal(t, "40", resp.MontoPagado.String())

	// Remainder settles the debt.
	resp, err = svc.RegistrarPago(context.Background(), id, dto.RegistrarPagoRequest{
		Monto: decimal.NewFromFloat(60),
	})
	require.NoError(t, err)
	assert.Equal(t, "pagado", resp.Estado)
	assert.Nil(t, resp.Alerta)

	// Further payments are rejected.
	_, err = svc.RegistrarPago(context.Background(), id, dto.RegistrarPagoRequest{
		Monto: decimal.NewFromFloat(1),
	})
	var verr *ValidacionError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Detalle, "pagado")

	assert.Equal(t, "pagado", repo.adeudos[id].Estado)
}

func TestRegistrarPago_SobrepagoLiquida(t *testing.T) {
	svc, _ := buildAdeudoSvc(fecha("2026-03-10"))

	creado, err := svc.Crear(context.Background(), dto.CrearAdeudoRequest{
		Descripcion: "Flete",
		MontoTotal:  decimal.NewFromFloat(100),
	})
	require.NoError(t, err)

	resp, err := svc.RegistrarPago(context.Background(), uuid.MustParse(creado.ID), dto.RegistrarPagoRequest{
		Monto: decimal.NewFromFloat(150),
	})
	require.NoError(t, err)
	assert.Equal(t, "pagado", resp.Estado)
}

func TestListarAdeudos_AdjuntaAlerta(t *testing.T) {
	svc, repo := buildAdeudoSvc(fecha("2026-03-10"))

	venc := fecha("2026-03-09") // overdue
	repo.adeudos[uuid.New()] = &model.Adeudo{
		ID:               uuid.New(),
		Descripcion:      "Factura vencida",
		MontoTotal:       decimal.NewFromFloat(500),
		MontoPagado:      decimal.Zero,
		FechaVencimiento: &venc,
		Estado:           "pendiente",
	}

	resp, err := svc.Listar(context.Background(), dto.AdeudoFilter{})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	require.NotNil(t, resp.Data[0].Alerta)
	assert.Equal(t, UrgenciaVencido, resp.Data[0].Alerta.NivelUrgencia)
	assert.Equal(t, "Vencido hace 1 día(s)", resp.Data[0].Alerta.Mensaje)
}

func TestActualizarAdeudo_Inexistente(t *testing.T) {
	svc, _ := buildAdeudoSvc(fecha("2026-03-10"))
	_, err := svc.Actualizar(context.Background(), uuid.New(), dto.ActualizarAdeudoRequest{})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
