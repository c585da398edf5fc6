package service

import (
	"context"
	"strings"
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

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubSuministroRepo is an in-memory SuministroRepository. DB() returns nil so
// the service runs its transaction body directly.
type stubSuministroRepo struct {
	filas map[uuid.UUID]*model.Suministro
}

func newStubSuministroRepo() *stubSuministroRepo {
	return &stubSuministroRepo{filas: make(map[uuid.UUID]*model.Suministro)}
}

func (r *stubSuministroRepo) CreateTx(_ context.Context, _ *gorm.DB, s *model.Suministro) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	copia := *s
	r.filas[s.ID] = &copia
	return nil
}

func (r *stubSuministroRepo) UpdateTx(_ context.Context, _ *gorm.DB, s *model.Suministro) error {
	copia := *s
	r.filas[s.ID] = &copia
	return nil
}

func (r *stubSuministroRepo) DeleteTx(_ context.Context, _ *gorm.DB, id uuid.UUID) error {
	delete(r.filas, id)
	return nil
}

func (r *stubSuministroRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Suministro, error) {
	f, ok := r.filas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *f
	return &copia, nil
}

func (r *stubSuministroRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Suministro, error) {
	f, ok := r.filas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *f
	return &copia, nil
}

func (r *stubSuministroRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Suministro, error) {
	out := make([]model.Suministro, 0, len(ids))
	for _, id := range ids {
		if f, ok := r.filas[id]; ok {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *stubSuministroRepo) List(_ context.Context, _ dto.SuministroFilter) ([]model.Suministro, int64, error) {
	out := make([]model.Suministro, 0, len(r.filas))
	for _, f := range r.filas {
		out = append(out, *f)
	}
	return out, int64(len(out)), nil
}

func (r *stubSuministroRepo) ListTodos(_ context.Context, _ dto.SuministroFilter) ([]model.Suministro, error) {
	out := make([]model.Suministro, 0, len(r.filas))
	for _, f := range r.filas {
		out = append(out, *f)
	}
	return out, nil
}

func (r *stubSuministroRepo) BuscarPorFolio(_ context.Context, folio string, excluir []uuid.UUID, limite int) ([]model.Suministro, int64, error) {
	norm := strings.ToLower(strings.TrimSpace(folio))
	excluidos := make(map[uuid.UUID]bool, len(excluir))
	for _, id := range excluir {
		excluidos[id] = true
	}

	var matches []model.Suministro
	var total int64
	for _, f := range r.filas {
		if f.Folio == nil || excluidos[f.ID] {
			continue
		}
		if strings.ToLower(strings.TrimSpace(*f.Folio)) != norm {
			continue
		}
		total++
		if len(matches) < limite {
			matches = append(matches, *f)
		}
	}
	return matches, total, nil
}

func (r *stubSuministroRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.filas, id)
	return nil
}

func (r *stubSuministroRepo) DB() *gorm.DB { return nil }

// stubProyectoRepo knows a fixed set of valid IDs.
type stubProyectoRepo struct{ ids map[uuid.UUID]bool }

func (r *stubProyectoRepo) Create(_ context.Context, _ *model.Proyecto) error { return nil }
func (r *stubProyectoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Proyecto, error) {
	if !r.ids[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.Proyecto{ID: id, Nombre: "Proyecto de prueba"}, nil
}
func (r *stubProyectoRepo) List(_ context.Context) ([]model.Proyecto, error)  { return nil, nil }
func (r *stubProyectoRepo) Update(_ context.Context, _ *model.Proyecto) error { return nil }
func (r *stubProyectoRepo) SoftDelete(_ context.Context, _ uuid.UUID) error   { return nil }

type stubProveedorRepo struct{ ids map[uuid.UUID]bool }

func (r *stubProveedorRepo) Create(_ context.Context, _ *model.Proveedor) error { return nil }
func (r *stubProveedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Proveedor, error) {
	if !r.ids[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.Proveedor{ID: id, Nombre: "Proveedor de prueba"}, nil
}
func (r *stubProveedorRepo) FindPorRFC(_ context.Context, _ string) (*model.Proveedor, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *stubProveedorRepo) List(_ context.Context) ([]model.Proveedor, error)  { return nil, nil }
func (r *stubProveedorRepo) Update(_ context.Context, _ *model.Proveedor) error { return nil }
func (r *stubProveedorRepo) SoftDelete(_ context.Context, _ uuid.UUID) error    { return nil }

type stubCatalogoRepo struct {
	categorias map[uuid.UUID]bool
	unidades   map[uuid.UUID]bool
}

func (r *stubCatalogoRepo) CrearCategoria(_ context.Context, _ *model.CategoriaSuministro) error {
	return nil
}
func (r *stubCatalogoRepo) FindCategoria(_ context.Context, id uuid.UUID) (*model.CategoriaSuministro, error) {
	if !r.categorias[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.CategoriaSuministro{ID: id, Nombre: "Concreto"}, nil
}
func (r *stubCatalogoRepo) FindCategoriaPorNombre(_ context.Context, _ string) (*model.CategoriaSuministro, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *stubCatalogoRepo) ListCategorias(_ context.Context) ([]model.CategoriaSuministro, error) {
	return nil, nil
}
func (r *stubCatalogoRepo) ActualizarCategoria(_ context.Context, _ *model.CategoriaSuministro) error {
	return nil
}
func (r *stubCatalogoRepo) DesactivarCategoria(_ context.Context, _ uuid.UUID) error { return nil }
func (r *stubCatalogoRepo) CrearUnidad(_ context.Context, _ *model.UnidadMedida) error {
	return nil
}
func (r *stubCatalogoRepo) FindUnidad(_ context.Context, id uuid.UUID) (*model.UnidadMedida, error) {
	if !r.unidades[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.UnidadMedida{ID: id, Nombre: "Metro cúbico", Simbolo: "m3"}, nil
}
func (r *stubCatalogoRepo) ListUnidades(_ context.Context) ([]model.UnidadMedida, error) {
	return nil, nil
}
func (r *stubCatalogoRepo) ActualizarUnidad(_ context.Context, _ *model.UnidadMedida) error {
	return nil
}
func (r *stubCatalogoRepo) DesactivarUnidad(_ context.Context, _ uuid.UUID) error { return nil }

// ── Fixture ───────────────────────────────────────────────────────────────────

type suministroFixture struct {
	svc         SuministroService
	repo        *stubSuministroRepo
	proyectoID  uuid.UUID
	proveedorID uuid.UUID
	unidadID    uuid.UUID
}

func buildSuministroSvc() *suministroFixture {
	f := &suministroFixture{
		repo:        newStubSuministroRepo(),
		proyectoID:  uuid.New(),
		proveedorID: uuid.New(),
		unidadID:    uuid.New(),
	}
	f.svc = NewSuministroService(
		f.repo,
		&stubProyectoRepo{ids: map[uuid.UUID]bool{f.proyectoID: true}},
		&stubProveedorRepo{ids: map[uuid.UUID]bool{f.proveedorID: true}},
		&stubCatalogoRepo{unidades: map[uuid.UUID]bool{f.unidadID: true}, categorias: map[uuid.UUID]bool{}},
	)
	return f
}

func (f *suministroFixture) header(folio string) dto.InfoRecibo {
	info := dto.InfoRecibo{
		ProyectoID:  f.proyectoID.String(),
		ProveedorID: f.proveedorID.String(),
		Fecha:       "2026-03-10",
	}
	if folio != "" {
		info.Folio = &folio
	}
	return info
}

func (f *suministroFixture) linea(nombre string, cantidad, precio float64) dto.LineaSuministroRequest {
	c := decimal.NewFromFloat(cantidad)
	p := decimal.NewFromFloat(precio)
	return dto.LineaSuministroRequest{
		Nombre:         nombre,
		Cantidad:       &c,
		UnidadMedidaID: f.unidadID.String(),
		PrecioUnitario: &p,
	}
}

func ptr(s string) *string { return &s }

// ── RegistrarMultiples ────────────────────────────────────────────────────────

func TestRegistrarMultiples_CalculoConIVA(t *testing.T) {
	f := buildSuministroSvc()

	resp, err := f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo: f.header("F-001"),
		Suministros: []dto.LineaSuministroRequest{
			f.linea("Cemento gris", 2, 10.00),
			f.linea("Grava", 1, 5.005), // price rounds to 5.01 before deriving
		},
		IncludeIVA: true,
	})
	require.NoError(t, err)
	require.Len(t, resp.Data.Results, 2)
	assert.Equal(t, "creado", resp.Data.Results[0].Accion)
	assert.Equal(t, "creado", resp.Data.Results[1].Accion)

	fila1 := f.repo.filas[uuid.MustParse(resp.Data.Results[0].ID)]
	assert.Equal(t, "20", fila1.Subtotal.String())
	assert.Equal(t, "23.2", fila1.CostoTotal.String())
	assert.True(t, fila1.IncludeIVA)
	assert.Equal(t, "Pendiente", fila1.Estado)

	fila2 := f.repo.filas[uuid.MustParse(resp.Data.Results[1].ID)]
	assert.Equal(t, "5.01", fila2.PrecioUnitario.String())
	assert.Equal(t, "5.01", fila2.Subtotal.String())
	assert.Equal(t, "5.81", fila2.CostoTotal.String()) // 5.01 × 1.16 = 5.8116
}

func TestRegistrarMultiples_SinIVA(t *testing.T) {
	f := buildSuministroSvc()

	resp, err := f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:  f.header(""),
		Suministros: []dto.LineaSuministroRequest{f.linea("Arena", 3, 7.50)},
	})
	require.NoError(t, err)

	fila := f.repo.filas[uuid.MustParse(resp.Data.Results[0].ID)]
	assert.Equal(t, "22.5", fila.Subtotal.String())
	assert.Equal(t, fila.Subtotal.String(), fila.CostoTotal.String())
	assert.False(t, fila.IncludeIVA)
}

func TestRegistrarMultiples_ResubmitPreservaTotales(t *testing.T) {
	f := buildSuministroSvc()

	resp, err := f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:  f.header("F-010"),
		Suministros: []dto.LineaSuministroRequest{f.linea("Cemento gris", 2, 10.00)},
		IncludeIVA:  true,
	})
	require.NoError(t, err)
	id := resp.Data.Results[0].ID

	// Same amounts with a different IVA flag: stored totals are preserved
	// because cantidad and precio did not change.
	linea := f.linea("Cemento gris", 2, 10.00)
	linea.ID = &id
	resp2, err := f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:        f.header("F-010"),
		Suministros:       []dto.LineaSuministroRequest{linea},
		IncludeIVA:        false,
		PermitirDuplicado: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "actualizado", resp2.Data.Results[0].Accion)
	assert.Equal(t, id, resp2.Data.Results[0].ID)

	fila := f.repo.filas[uuid.MustParse(id)]
	assert.Equal(t, "23.2", fila.CostoTotal.String())
	assert.True(t, fila.IncludeIVA)
	assert.Len(t, f.repo.filas, 1)
}

func TestRegistrarMultiples_CambioDeMontoRecalcula(t *testing.T) {
	f := buildSuministroSvc()

	resp, err := f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:  f.header(""),
		Suministros: []dto.LineaSuministroRequest{f.linea("Varilla 3/8", 2, 10.00)},
		IncludeIVA:  true,
	})
	require.NoError(t, err)
	id := resp.Data.Results[0].ID

	linea := f.linea("Varilla 3/8", 4, 10.00)
	linea.ID = &id
	_, err = f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:  f.header(""),
		Suministros: []dto.LineaSuministroRequest{linea},
		IncludeIVA:  false,
	})
	require.NoError(t, err)

	fila := f.repo.filas[uuid.MustParse(id)]
	assert.Equal(t, "40", fila.Subtotal.String())
	assert.Equal(t, "40", fila.CostoTotal.String())
	assert.False(t, fila.IncludeIVA)
}

func TestRegistrarMultiples_IDObsoletoCrea(t *testing.T) {
	f := buildSuministroSvc()

	obsoleto := uuid.New().String()
	linea := f.linea("Tabique", 100, 2.00)
	linea.ID = &obsoleto

	resp, err := f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:  f.header(""),
		Suministros: []dto.LineaSuministroRequest{linea},
	})
	require.NoError(t, err)
	assert.Equal(t, "creado", resp.Data.Results[0].Accion)
	assert.NotEqual(t, obsoleto, resp.Data.Results[0].ID)
	assert.Len(t, f.repo.filas, 1)
}

func TestRegistrarMultiples_EliminaSoloExplicitos(t *testing.T) {
	f := buildSuministroSvc()

	resp, err := f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo: f.header("F-020"),
		Suministros: []dto.LineaSuministroRequest{
			f.linea("Cemento", 1, 100),
			f.linea("Arena", 1, 50),
		},
	})
	require.NoError(t, err)
	idA := resp.Data.Results[0].ID
	idB := resp.Data.Results[1].ID

	// Resubmit only line A without listing B as deleted: B survives.
	lineaA := f.linea("Cemento", 1, 100)
	lineaA.ID = &idA
	_, err = f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:        f.header("F-020"),
		Suministros:       []dto.LineaSuministroRequest{lineaA},
		PermitirDuplicado: true,
	})
	require.NoError(t, err)
	assert.Len(t, f.repo.filas, 2)

	// Now delete B explicitly.
	_, err = f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:        f.header("F-020"),
		Suministros:       []dto.LineaSuministroRequest{lineaA},
		Eliminados:        []string{idB},
		PermitirDuplicado: true,
	})
	require.NoError(t, err)
	assert.Len(t, f.repo.filas, 1)
	_, existe := f.repo.filas[uuid.MustParse(idB)]
	assert.False(t, existe)
}

func TestRegistrarMultiples_VacioNoBorraCampos(t *testing.T) {
	f := buildSuministroSvc()

	info := f.header("F-030")
	info.Observaciones = ptr("entrega en obra norte")
	resp, err := f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:  info,
		Suministros: []dto.LineaSuministroRequest{f.linea("Mortero", 5, 20)},
	})
	require.NoError(t, err)
	id := resp.Data.Results[0].ID

	// Re-edit with blank observaciones: the stored value is preserved.
	linea := f.linea("Mortero", 5, 20)
	linea.ID = &id
	info2 := f.header("F-030")
	info2.Observaciones = ptr("")
	_, err = f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:        info2,
		Suministros:       []dto.LineaSuministroRequest{linea},
		PermitirDuplicado: true,
	})
	require.NoError(t, err)

	fila := f.repo.filas[uuid.MustParse(id)]
	require.NotNil(t, fila.Observaciones)
	assert.Equal(t, "entrega en obra norte", *fila.Observaciones)
}

func TestRegistrarMultiples_LineaInvalidaReportaIndice(t *testing.T) {
	f := buildSuministroSvc()

	mala := f.linea("Grava", 1, 10)
	mala.UnidadMedidaID = uuid.New().String() // nonexistent unidad

	_, err := f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo: f.header(""),
		Suministros: []dto.LineaSuministroRequest{
			f.linea("Cemento", 1, 10),
			mala,
		},
	})
	var verr *ValidacionError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 1, verr.Indice)
	assert.Empty(t, f.repo.filas) // nothing was written
}

func TestRegistrarMultiples_ProyectoInexistente(t *testing.T) {
	f := buildSuministroSvc()

	info := f.header("")
	info.ProyectoID = uuid.New().String()
	_, err := f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:  info,
		Suministros: []dto.LineaSuministroRequest{f.linea("Cemento", 1, 10)},
	})
	var verr *ValidacionError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, -1, verr.Indice)
}

// ── Folio duplicado ───────────────────────────────────────────────────────────

func TestRegistrarMultiples_FolioDuplicadoBloquea(t *testing.T) {
	f := buildSuministroSvc()

	_, err := f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:  f.header(" F-100 "),
		Suministros: []dto.LineaSuministroRequest{f.linea("Cemento", 1, 10)},
	})
	require.NoError(t, err)

	// Same folio with different casing and whitespace.
	_, err = f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:  f.header("f-100"),
		Suministros: []dto.LineaSuministroRequest{f.linea("Arena", 1, 5)},
	})
	var dup *FolioDuplicadoError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, int64(1), dup.Total)
	require.Len(t, dup.Conflictos, 1)
	assert.Len(t, f.repo.filas, 1) // second receipt was not written
}

func TestRegistrarMultiples_FolioDuplicadoPermitido(t *testing.T) {
	f := buildSuministroSvc()

	_, err := f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:  f.header("F-200"),
		Suministros: []dto.LineaSuministroRequest{f.linea("Cemento", 1, 10)},
	})
	require.NoError(t, err)

	resp, err := f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:        f.header("F-200"),
		Suministros:       []dto.LineaSuministroRequest{f.linea("Arena", 1, 5)},
		PermitirDuplicado: true,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Advertencia)
	assert.Contains(t, *resp.Advertencia, "1 registro(s)")
	assert.Len(t, f.repo.filas, 2)
}

func TestRegistrarMultiples_FolioNoSeAutoDetecta(t *testing.T) {
	f := buildSuministroSvc()

	resp, err := f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:  f.header("F-300"),
		Suministros: []dto.LineaSuministroRequest{f.linea("Cemento", 1, 10)},
	})
	require.NoError(t, err)
	id := resp.Data.Results[0].ID

	// Re-editing the same receipt keeps its folio without flagging a
	// conflict: lines carrying an ID are excluded from the search.
	linea := f.linea("Cemento", 1, 10)
	linea.ID = &id
	resp2, err := f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:  f.header("F-300"),
		Suministros: []dto.LineaSuministroRequest{linea},
	})
	require.NoError(t, err)
	assert.Nil(t, resp2.Advertencia)
}

func TestValidarFolio(t *testing.T) {
	f := buildSuministroSvc()

	resp, err := f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:  f.header("F-400"),
		Suministros: []dto.LineaSuministroRequest{f.linea("Cemento", 1, 10)},
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp.Data.Results[0].ID)

	out, err := f.svc.ValidarFolio(context.Background(), "  f-400 ", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.TotalConflictos)

	// Excluding the row itself clears the conflict.
	out, err = f.svc.ValidarFolio(context.Background(), "F-400", []uuid.UUID{id})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.TotalConflictos)

	// Blank folio: empty response, no lookup.
	out, err = f.svc.ValidarFolio(context.Background(), "   ", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.TotalConflictos)
	assert.Empty(t, out.Conflictos)
}

// ── Actualizar (PUT) ──────────────────────────────────────────────────────────

func TestActualizar_FlipIVARecalculaTotal(t *testing.T) {
	f := buildSuministroSvc()

	resp, err := f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:  f.header(""),
		Suministros: []dto.LineaSuministroRequest{f.linea("Cemento", 2, 10.00)},
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp.Data.Results[0].ID)

	incluir := true
	actualizado, err := f.svc.Actualizar(context.Background(), id, dto.ActualizarSuministroRequest{
		IncludeIVA: &incluir,
	})
	require.NoError(t, err)
	assert.Equal(t, "20", actualizado.Subtotal.String())
	assert.Equal(t, "23.2", actualizado.CostoTotal.String())
	assert.True(t, actualizado.IncludeIVA)
}

func TestActualizar_CambioEstadoNoTocaMontos(t *testing.T) {
	f := buildSuministroSvc()

	resp, err := f.svc.RegistrarMultiples(context.Background(), dto.RegistrarSuministrosRequest{
		InfoRecibo:  f.header(""),
		Suministros: []dto.LineaSuministroRequest{f.linea("Grava", 3, 15.00)},
		IncludeIVA:  true,
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp.Data.Results[0].ID)

	estado := "Entregado"
	actualizado, err := f.svc.Actualizar(context.Background(), id, dto.ActualizarSuministroRequest{
		Estado: &estado,
	})
	require.NoError(t, err)
	assert.Equal(t, "Entregado", actualizado.Estado)
	assert.Equal(t, "45", actualizado.Subtotal.String())
	assert.Equal(t, "52.2", actualizado.CostoTotal.String())
}

func TestEliminar_Inexistente(t *testing.T) {
	f := buildSuministroSvc()
	err := f.svc.Eliminar(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSuministroResponse_CreatedAtEnUTC(t *testing.T) {
	// A row stamped in local time must come back as the same instant in UTC.
	cdmx := time.FixedZone("America/Mexico_City", -6*3600)
	fila := &model.Suministro{
		CreatedAt: time.Date(2026, 3, 10, 20, 30, 0, 0, cdmx),
	}

	resp := suministroToResponse(fila)

	assert.Equal(t, "2026-03-11T02:30:00Z", resp.CreatedAt)
}
