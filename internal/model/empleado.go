package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Empleado is a field or office worker, optionally assigned to a project.
type Empleado struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre     string    `gorm:"not null"`
	Apellido   string    `gorm:"not null"`
	NSS        *string   `gorm:"column:nss;uniqueIndex"`
	RFC        *string   `gorm:"column:rfc"`
	Telefono   *string
	OficioID   *uuid.UUID      `gorm:"column:id_oficio;type:uuid;index"`
	ProyectoID *uuid.UUID      `gorm:"column:id_proyecto;type:uuid;index"`
	PagoDiario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Activo     bool            `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Oficio   *Oficio   `gorm:"foreignKey:OficioID"`
	Proyecto *Proyecto `gorm:"foreignKey:ProyectoID"`
}

func (Empleado) TableName() string { return "empleados" }
