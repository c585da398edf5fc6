package repository

import (
	"context"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContratoRepository interface {
	Create(ctx context.Context, c *model.Contrato) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Contrato, error)
	ListByEmpleado(ctx context.Context, empleadoID uuid.UUID) ([]model.Contrato, error)
	List(ctx context.Context) ([]model.Contrato, error)
	Update(ctx context.Context, c *model.Contrato) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type contratoRepo struct{ db *gorm.DB }

func NewContratoRepository(db *gorm.DB) ContratoRepository { return &contratoRepo{db: db} }

func (r *contratoRepo) Create(ctx context.Context, c *model.Contrato) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contratoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Contrato, error) {
	var c model.Contrato
	err := r.db.WithContext(ctx).Preload("Empleado").First(&c, id).Error
	return &c, err
}

func (r *contratoRepo) ListByEmpleado(ctx context.Context, empleadoID uuid.UUID) ([]model.Contrato, error) {
	var contratos []model.Contrato
	err := r.db.WithContext(ctx).Where("id_empleado = ?", empleadoID).
		Order("fecha_inicio DESC").Find(&contratos).Error
	return contratos, err
}

func (r *contratoRepo) List(ctx context.Context) ([]model.Contrato, error) {
	var contratos []model.Contrato
	err := r.db.WithContext(ctx).Preload("Empleado").
		Where("activo = true").Order("fecha_inicio DESC").Find(&contratos).Error
	return contratos, err
}

func (r *contratoRepo) Update(ctx context.Context, c *model.Contrato) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *contratoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Contrato{}).Where("id = ?", id).Update("activo", false).Error
}
