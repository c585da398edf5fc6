package repository

import (
	"context"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OficioRepository interface {
	Create(ctx context.Context, o *model.Oficio) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Oficio, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Oficio, error)
	List(ctx context.Context) ([]model.Oficio, error)
	Update(ctx context.Context, o *model.Oficio) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type oficioRepo struct{ db *gorm.DB }

func NewOficioRepository(db *gorm.DB) OficioRepository { return &oficioRepo{db: db} }

func (r *oficioRepo) Create(ctx context.Context, o *model.Oficio) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *oficioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Oficio, error) {
	var o model.Oficio
	err := r.db.WithContext(ctx).First(&o, id).Error
	return &o, err
}

func (r *oficioRepo) FindByNombre(ctx context.Context, nombre string) (*model.Oficio, error) {
	var o model.Oficio
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *oficioRepo) List(ctx context.Context) ([]model.Oficio, error) {
	var oficios []model.Oficio
	err := r.db.WithContext(ctx).Where("activo = true").Order("nombre").Find(&oficios).Error
	return oficios, err
}

func (r *oficioRepo) Update(ctx context.Context, o *model.Oficio) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *oficioRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Oficio{}).Where("id = ?", id).Update("activo", false).Error
}
