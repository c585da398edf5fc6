package repository

import (
	"context"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"

	"gorm.io/gorm"
)

type BitacoraRepository interface {
	Create(ctx context.Context, b *model.Bitacora) error
	List(ctx context.Context, filter dto.BitacoraFilter) ([]model.Bitacora, int64, error)
}

type bitacoraRepo struct{ db *gorm.DB }

func NewBitacoraRepository(db *gorm.DB) BitacoraRepository { return &bitacoraRepo{db: db} }

func (r *bitacoraRepo) Create(ctx context.Context, b *model.Bitacora) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bitacoraRepo) List(ctx context.Context, filter dto.BitacoraFilter) ([]model.Bitacora, int64, error) {
	var entradas []model.Bitacora
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Bitacora{})

	if filter.Entidad != "" {
		q = q.Where("entidad = ?", filter.Entidad)
	}
	if filter.Accion != "" {
		q = q.Where("accion = ?", filter.Accion)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Usuario").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&entradas).Error

	return entradas, total, err
}
