package repository

import (
	"context"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogoRepository groups the two reference catalogs every supply line
// points at: categories and units of measure.
type CatalogoRepository interface {
	CrearCategoria(ctx context.Context, c *model.CategoriaSuministro) error
	FindCategoria(ctx context.Context, id uuid.UUID) (*model.CategoriaSuministro, error)
	FindCategoriaPorNombre(ctx context.Context, nombre string) (*model.CategoriaSuministro, error)
	ListCategorias(ctx context.Context) ([]model.CategoriaSuministro, error)
	ActualizarCategoria(ctx context.Context, c *model.CategoriaSuministro) error
	DesactivarCategoria(ctx context.Context, id uuid.UUID) error

	CrearUnidad(ctx context.Context, u *model.UnidadMedida) error
	FindUnidad(ctx context.Context, id uuid.UUID) (*model.UnidadMedida, error)
	ListUnidades(ctx context.Context) ([]model.UnidadMedida, error)
	ActualizarUnidad(ctx context.Context, u *model.UnidadMedida) error
	DesactivarUnidad(ctx context.Context, id uuid.UUID) error
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) CrearCategoria(ctx context.Context, c *model.CategoriaSuministro) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *catalogoRepo) FindCategoria(ctx context.Context, id uuid.UUID) (*model.CategoriaSuministro, error) {
	var c model.CategoriaSuministro
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *catalogoRepo) FindCategoriaPorNombre(ctx context.Context, nombre string) (*model.CategoriaSuministro, error) {
	var c model.CategoriaSuministro
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *catalogoRepo) ListCategorias(ctx context.Context) ([]model.CategoriaSuministro, error) {
	var categorias []model.CategoriaSuministro
	err := r.db.WithContext(ctx).Where("activo = true").Order("nombre").Find(&categorias).Error
	return categorias, err
}

func (r *catalogoRepo) ActualizarCategoria(ctx context.Context, c *model.CategoriaSuministro) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *catalogoRepo) DesactivarCategoria(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.CategoriaSuministro{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *catalogoRepo) CrearUnidad(ctx context.Context, u *model.UnidadMedida) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *catalogoRepo) FindUnidad(ctx context.Context, id uuid.UUID) (*model.UnidadMedida, error) {
	var u model.UnidadMedida
	err := r.db.WithContext(ctx).First(&u, id).Error
	return &u, err
}

func (r *catalogoRepo) ListUnidades(ctx context.Context) ([]model.UnidadMedida, error) {
	var unidades []model.UnidadMedida
	err := r.db.WithContext(ctx).Where("activo = true").Order("nombre").Find(&unidades).Error
	return unidades, err
}

func (r *catalogoRepo) ActualizarUnidad(ctx context.Context, u *model.UnidadMedida) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *catalogoRepo) DesactivarUnidad(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.UnidadMedida{}).Where("id = ?", id).Update("activo", false).Error
}
