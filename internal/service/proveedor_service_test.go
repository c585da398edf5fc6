package service

import (
	"context"
	"strings"
	"testing"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stub repository ──────────────────────────────────────────────────────────

type stubProveedorCRUDRepo struct {
	proveedores map[uuid.UUID]model.Proveedor
}

func newStubProveedorCRUDRepo() *stubProveedorCRUDRepo {
	return &stubProveedorCRUDRepo{proveedores: map[uuid.UUID]model.Proveedor{}}
}

func (r *stubProveedorCRUDRepo) Create(_ context.Context, p *model.Proveedor) error {
	p.ID = uuid.New()
	r.proveedores[p.ID] = *p
	return nil
}

func (r *stubProveedorCRUDRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := p
	return &copia, nil
}

func (r *stubProveedorCRUDRepo) FindPorRFC(_ context.Context, rfc string) (*model.Proveedor, error) {
	for _, p := range r.proveedores {
		if p.Activo && p.RFC != nil && strings.EqualFold(*p.RFC, rfc) {
			copia := p
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProveedorCRUDRepo) List(_ context.Context) ([]model.Proveedor, error) {
	var out []model.Proveedor
	for _, p := range r.proveedores {
		if p.Activo {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProveedorCRUDRepo) Update(_ context.Context, p *model.Proveedor) error {
	r.proveedores[p.ID] = *p
	return nil
}

func (r *stubProveedorCRUDRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p := r.proveedores[id]
	p.Activo = false
	r.proveedores[id] = p
	return nil
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCrearProveedor(t *testing.T) {
	svc := NewProveedorService(newStubProveedorCRUDRepo())

	resp, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{
		Nombre:        "Aceros del Norte",
		RFC:           ptr("ADN010203XY1"),
		TipoProveedor: ptr("material"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Aceros del Norte", resp.Nombre)
	assert.Equal(t, "ADN010203XY1", *resp.RFC)
	assert.True(t, resp.Activo)
	assert.Nil(t, resp.Telefono)
}

func TestCrearProveedor_RFCDuplicado(t *testing.T) {
	svc := NewProveedorService(newStubProveedorCRUDRepo())

	_, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{
		Nombre: "Aceros del Norte",
		RFC:    ptr("ADN010203XY1"),
	})
	require.NoError(t, err)

	// Same tax id in a different case still collides.
	_, err = svc.Crear(context.Background(), dto.CrearProveedorRequest{
		Nombre: "Aceros Norte SA",
		RFC:    ptr("adn010203xy1"),
	})
	assert.ErrorIs(t, err, ErrProveedorRFCDuplicado)
}

func TestCrearProveedor_SinRFCNoValida(t *testing.T) {
	svc := NewProveedorService(newStubProveedorCRUDRepo())

	_, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{Nombre: "Fletes García"})
	require.NoError(t, err)
	_, err = svc.Crear(context.Background(), dto.CrearProveedorRequest{Nombre: "Fletes López"})
	assert.NoError(t, err)
}

func TestActualizarProveedor_RFCDeOtro(t *testing.T) {
	svc := NewProveedorService(newStubProveedorCRUDRepo())

	_, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{
		Nombre: "Aceros del Norte",
		RFC:    ptr("ADN010203XY1"),
	})
	require.NoError(t, err)

	otro, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{
		Nombre: "Concretos MX",
		RFC:    ptr("CMX040506AB2"),
	})
	require.NoError(t, err)

	_, err = svc.Actualizar(context.Background(), mustParse(otro.ID), dto.ActualizarProveedorRequest{
		RFC: ptr("ADN010203XY1"),
	})
	assert.ErrorIs(t, err, ErrProveedorRFCDuplicado)
}

func TestActualizarProveedor_MismoRFCNoConflicta(t *testing.T) {
	svc := NewProveedorService(newStubProveedorCRUDRepo())

	creado, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{
		Nombre: "Aceros del Norte",
		RFC:    ptr("ADN010203XY1"),
	})
	require.NoError(t, err)

	// Re-sending its own RFC, even in another case, is not a conflict.
	resp, err := svc.Actualizar(context.Background(), mustParse(creado.ID), dto.ActualizarProveedorRequest{
		RFC:      ptr("adn010203xy1"),
		Telefono: ptr("5512345678"),
	})
	require.NoError(t, err)
	assert.Equal(t, "5512345678", *resp.Telefono)
}

func TestActualizarProveedor_VacioNoBorraCampos(t *testing.T) {
	svc := NewProveedorService(newStubProveedorCRUDRepo())

	creado, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{
		Nombre:    "Aceros del Norte",
		RFC:       ptr("ADN010203XY1"),
		Direccion: ptr("Av. Industrias 500"),
	})
	require.NoError(t, err)

	resp, err := svc.Actualizar(context.Background(), mustParse(creado.ID), dto.ActualizarProveedorRequest{
		RFC:       ptr(""),
		Direccion: ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "ADN010203XY1", *resp.RFC)
	assert.Equal(t, "Av. Industrias 500", *resp.Direccion)
}

func TestDesactivarProveedor(t *testing.T) {
	svc := NewProveedorService(newStubProveedorCRUDRepo())

	creado, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{
		Nombre: "Aceros del Norte",
		RFC:    ptr("ADN010203XY1"),
	})
	require.NoError(t, err)
	require.NoError(t, svc.Desactivar(context.Background(), mustParse(creado.ID)))

	lista, err := svc.Listar(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lista)

	// An inactive supplier releases its RFC.
	_, err = svc.Crear(context.Background(), dto.CrearProveedorRequest{
		Nombre: "Aceros Norte SA",
		RFC:    ptr("ADN010203XY1"),
	})
	assert.NoError(t, err)
}

func TestObtenerProveedor_Inexistente(t *testing.T) {
	svc := NewProveedorService(newStubProveedorCRUDRepo())

	_, err := svc.ObtenerPorID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
