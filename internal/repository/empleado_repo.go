package repository

import (
	"context"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmpleadoRepository interface {
	Create(ctx context.Context, e *model.Empleado) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Empleado, error)
	List(ctx context.Context) ([]model.Empleado, error)
	Update(ctx context.Context, e *model.Empleado) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type empleadoRepo struct{ db *gorm.DB }

func NewEmpleadoRepository(db *gorm.DB) EmpleadoRepository { return &empleadoRepo{db: db} }

func (r *empleadoRepo) Create(ctx context.Context, e *model.Empleado) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *empleadoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Empleado, error) {
	var e model.Empleado
	err := r.db.WithContext(ctx).Preload("Oficio").Preload("Proyecto").First(&e, id).Error
	return &e, err
}

func (r *empleadoRepo) List(ctx context.Context) ([]model.Empleado, error) {
	var empleados []model.Empleado
	err := r.db.WithContext(ctx).Preload("Oficio").Preload("Proyecto").
		Where("activo = true").Order("apellido, nombre").Find(&empleados).Error
	return empleados, err
}

func (r *empleadoRepo) Update(ctx context.Context, e *model.Empleado) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *empleadoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Empleado{}).Where("id = ?", id).Update("activo", false).Error
}
