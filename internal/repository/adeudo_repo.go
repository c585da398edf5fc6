package repository

import (
	"context"
	"time"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdeudoRepository interface {
	Create(ctx context.Context, a *model.Adeudo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Adeudo, error)
	List(ctx context.Context, filter dto.AdeudoFilter) ([]model.Adeudo, int64, error)
	ListTodos(ctx context.Context, filter dto.AdeudoFilter) ([]model.Adeudo, error)
	// ListPorVencer returns unpaid debts whose due date falls on or before the
	// horizon. Used by the due-date cron.
	ListPorVencer(ctx context.Context, horizonte time.Time) ([]model.Adeudo, error)
	Update(ctx context.Context, a *model.Adeudo) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type adeudoRepo struct{ db *gorm.DB }

func NewAdeudoRepository(db *gorm.DB) AdeudoRepository { return &adeudoRepo{db: db} }

func (r *adeudoRepo) Create(ctx context.Context, a *model.Adeudo) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *adeudoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Adeudo, error) {
	var a model.Adeudo
	err := r.db.WithContext(ctx).Preload("Proveedor").Preload("Proyecto").First(&a, id).Error
	return &a, err
}

func (r *adeudoRepo) List(ctx context.Context, filter dto.AdeudoFilter) ([]model.Adeudo, int64, error) {
	var adeudos []model.Adeudo
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Adeudo{})

	if filter.Estado != "" && filter.Estado != "all" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.ProveedorID != "" {
		q = q.Where("id_proveedor = ?", filter.ProveedorID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Proveedor").Preload("Proyecto").
		Order("fecha_vencimiento ASC NULLS LAST").
		Offset(offset).Limit(filter.Limit).
		Find(&adeudos).Error

	return adeudos, total, err
}

// ListTodos returns every debt matching the filter, unpaginated. Reports need
// the full result set.
func (r *adeudoRepo) ListTodos(ctx context.Context, filter dto.AdeudoFilter) ([]model.Adeudo, error) {
	var adeudos []model.Adeudo

	q := r.db.WithContext(ctx).Model(&model.Adeudo{})
	if filter.Estado != "" && filter.Estado != "all" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.ProveedorID != "" {
		q = q.Where("id_proveedor = ?", filter.ProveedorID)
	}

	err := q.Preload("Proveedor").Preload("Proyecto").
		Order("fecha_vencimiento ASC NULLS LAST").
		Find(&adeudos).Error
	return adeudos, err
}

func (r *adeudoRepo) ListPorVencer(ctx context.Context, horizonte time.Time) ([]model.Adeudo, error) {
	var adeudos []model.Adeudo
	err := r.db.WithContext(ctx).Preload("Proveedor").
		Where("estado <> 'pagado' AND fecha_vencimiento IS NOT NULL AND fecha_vencimiento <= ?", horizonte).
		Order("fecha_vencimiento ASC").
		Find(&adeudos).Error
	return adeudos, err
}

func (r *adeudoRepo) Update(ctx context.Context, a *model.Adeudo) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *adeudoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Adeudo{}, id).Error
}
