package repository

import (
	"context"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProyectoRepository interface {
	Create(ctx context.Context, p *model.Proyecto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Proyecto, error)
	List(ctx context.Context) ([]model.Proyecto, error)
	Update(ctx context.Context, p *model.Proyecto) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type proyectoRepo struct{ db *gorm.DB }

func NewProyectoRepository(db *gorm.DB) ProyectoRepository { return &proyectoRepo{db: db} }

func (r *proyectoRepo) Create(ctx context.Context, p *model.Proyecto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *proyectoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Proyecto, error) {
	var p model.Proyecto
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *proyectoRepo) List(ctx context.Context) ([]model.Proyecto, error) {
	var proyectos []model.Proyecto
	err := r.db.WithContext(ctx).Where("activo = true").Order("nombre").Find(&proyectos).Error
	return proyectos, err
}

func (r *proyectoRepo) Update(ctx context.Context, p *model.Proyecto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *proyectoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Proyecto{}).Where("id = ?", id).Update("activo", false).Error
}
