package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Presupuesto is a budget line for a project and concept.
type Presupuesto struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProyectoID    uuid.UUID       `gorm:"column:id_proyecto;type:uuid;not null;index"`
	Concepto      string          `gorm:"not null"`
	MontoEstimado decimal.Decimal `gorm:"column:monto_estimado;type:decimal(12,2);not null"`
	MontoEjercido decimal.Decimal `gorm:"column:monto_ejercido;type:decimal(12,2);not null;default:0"`
	Periodo       *string         `gorm:"type:varchar(20)"`
	Activo        bool            `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Proyecto *Proyecto `gorm:"foreignKey:ProyectoID"`
}

func (Presupuesto) TableName() string { return "presupuestos" }
