package repository

import (
	"context"
	"strings"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SuministroRepository interface {
	CreateTx(ctx context.Context, tx *gorm.DB, s *model.Suministro) error
	UpdateTx(ctx context.Context, tx *gorm.DB, s *model.Suministro) error
	DeleteTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Suministro, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Suministro, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Suministro, error)
	List(ctx context.Context, filter dto.SuministroFilter) ([]model.Suministro, int64, error)
	ListTodos(ctx context.Context, filter dto.SuministroFilter) ([]model.Suministro, error)
	BuscarPorFolio(ctx context.Context, folio string, excluir []uuid.UUID, limite int) ([]model.Suministro, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type suministroRepo struct{ db *gorm.DB }

func NewSuministroRepository(db *gorm.DB) SuministroRepository { return &suministroRepo{db: db} }

func (r *suministroRepo) DB() *gorm.DB { return r.db }

func (r *suministroRepo) CreateTx(ctx context.Context, tx *gorm.DB, s *model.Suministro) error {
	return tx.WithContext(ctx).Create(s).Error
}

func (r *suministroRepo) UpdateTx(ctx context.Context, tx *gorm.DB, s *model.Suministro) error {
	return tx.WithContext(ctx).Save(s).Error
}

func (r *suministroRepo) DeleteTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return tx.WithContext(ctx).Delete(&model.Suministro{}, id).Error
}

// FindByIDTx looks up a row inside an open transaction. Used by the upsert
// engine to decide update-vs-create for lines that carry an ID.
func (r *suministroRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Suministro, error) {
	var s model.Suministro
	err := tx.First(&s, id).Error
	return &s, err
}

func (r *suministroRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Suministro, error) {
	var s model.Suministro
	err := r.db.WithContext(ctx).
		Preload("Proyecto").Preload("Proveedor").Preload("Categoria").Preload("UnidadMedida").
		First(&s, id).Error
	return &s, err
}

// FindByIDs re-reads persisted rows with their reference associations
// populated, preserving no particular order.
func (r *suministroRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Suministro, error) {
	var suministros []model.Suministro
	err := r.db.WithContext(ctx).
		Preload("Proyecto").Preload("Proveedor").Preload("Categoria").Preload("UnidadMedida").
		Where("id IN ?", ids).Find(&suministros).Error
	return suministros, err
}

func (r *suministroRepo) List(ctx context.Context, filter dto.SuministroFilter) ([]model.Suministro, int64, error) {
	var suministros []model.Suministro
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Suministro{})

	if filter.ProyectoID != "" {
		q = q.Where("id_proyecto = ?", filter.ProyectoID)
	}
	if filter.ProveedorID != "" {
		q = q.Where("id_proveedor = ?", filter.ProveedorID)
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(fecha) = ?", filter.Fecha)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Proyecto").Preload("Proveedor").Preload("Categoria").Preload("UnidadMedida").
		Order("fecha DESC, created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&suministros).Error

	return suministros, total, err
}

// ListTodos returns every row matching the filter, unpaginated. Reports need
// the full result set.
func (r *suministroRepo) ListTodos(ctx context.Context, filter dto.SuministroFilter) ([]model.Suministro, error) {
	var suministros []model.Suministro

	q := r.db.WithContext(ctx).Model(&model.Suministro{})
	if filter.ProyectoID != "" {
		q = q.Where("id_proyecto = ?", filter.ProyectoID)
	}
	if filter.ProveedorID != "" {
		q = q.Where("id_proveedor = ?", filter.ProveedorID)
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(fecha) = ?", filter.Fecha)
	}

	err := q.Preload("Proyecto").Preload("Proveedor").Preload("Categoria").Preload("UnidadMedida").
		Order("fecha ASC, created_at ASC").
		Find(&suministros).Error
	return suministros, err
}

// BuscarPorFolio finds rows whose folio matches after trimming and case
// folding, excluding the given IDs (so an edit does not flag its own rows).
// Returns at most limite rows for display plus the full match count.
func (r *suministroRepo) BuscarPorFolio(ctx context.Context, folio string, excluir []uuid.UUID, limite int) ([]model.Suministro, int64, error) {
	norm := strings.ToLower(strings.TrimSpace(folio))

	q := r.db.WithContext(ctx).Model(&model.Suministro{}).
		Where("folio IS NOT NULL AND LOWER(TRIM(folio)) = ?", norm)
	if len(excluir) > 0 {
		q = q.Where("id NOT IN ?", excluir)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var matches []model.Suministro
	err := q.Preload("Proyecto").Preload("Proveedor").
		Order("fecha DESC").Limit(limite).Find(&matches).Error
	return matches, total, err
}

func (r *suministroRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Suministro{}, id).Error
}
