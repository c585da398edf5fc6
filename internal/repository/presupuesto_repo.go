package repository

import (
	"context"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PresupuestoRepository interface {
	Create(ctx context.Context, p *model.Presupuesto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Presupuesto, error)
	ListByProyecto(ctx context.Context, proyectoID uuid.UUID) ([]model.Presupuesto, error)
	List(ctx context.Context) ([]model.Presupuesto, error)
	Update(ctx context.Context, p *model.Presupuesto) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type presupuestoRepo struct{ db *gorm.DB }

func NewPresupuestoRepository(db *gorm.DB) PresupuestoRepository { return &presupuestoRepo{db: db} }

func (r *presupuestoRepo) Create(ctx context.Context, p *model.Presupuesto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *presupuestoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Presupuesto, error) {
	var p model.Presupuesto
	err := r.db.WithContext(ctx).Preload("Proyecto").First(&p, id).Error
	return &p, err
}

func (r *presupuestoRepo) ListByProyecto(ctx context.Context, proyectoID uuid.UUID) ([]model.Presupuesto, error) {
	var presupuestos []model.Presupuesto
	err := r.db.WithContext(ctx).Preload("Proyecto").
		Where("id_proyecto = ? AND activo = true", proyectoID).
		Order("concepto").Find(&presupuestos).Error
	return presupuestos, err
}

func (r *presupuestoRepo) List(ctx context.Context) ([]model.Presupuesto, error) {
	var presupuestos []model.Presupuesto
	err := r.db.WithContext(ctx).Preload("Proyecto").
		Where("activo = true").Order("concepto").Find(&presupuestos).Error
	return presupuestos, err
}

func (r *presupuestoRepo) Update(ctx context.Context, p *model.Presupuesto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *presupuestoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Presupuesto{}).Where("id = ?", id).Update("activo", false).Error
}
