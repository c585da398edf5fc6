package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Adeudo is an outstanding company debt, usually to a supplier, with an
// optional due date that drives alerting.
// Estado: "pendiente" | "parcial" | "pagado"
type Adeudo struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Descripcion      string     `gorm:"not null"`
	ProveedorID      *uuid.UUID `gorm:"column:id_proveedor;type:uuid;index"`
	ProyectoID       *uuid.UUID `gorm:"column:id_proyecto;type:uuid;index"`
	MontoTotal       decimal.Decimal `gorm:"column:monto_total;type:decimal(12,2);not null"`
	MontoPagado      decimal.Decimal `gorm:"column:monto_pagado;type:decimal(12,2);not null;default:0"`
	FechaVencimiento *time.Time      `gorm:"column:fecha_vencimiento;index"`
	Estado           string          `gorm:"type:varchar(20);not null;default:'pendiente'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
	Proyecto  *Proyecto  `gorm:"foreignKey:ProyectoID"`
}

func (Adeudo) TableName() string { return "adeudos" }
