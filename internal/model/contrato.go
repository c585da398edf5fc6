package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Contrato links an employee to an employment agreement.
// TipoContrato: "obra_determinada" | "tiempo_determinado" | "indefinido"
type Contrato struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpleadoID    uuid.UUID `gorm:"column:id_empleado;type:uuid;not null;index"`
	TipoContrato  string    `gorm:"type:varchar(30);not null"`
	FechaInicio   time.Time `gorm:"not null"`
	FechaFin      *time.Time
	SalarioDiario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Activo        bool            `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Empleado *Empleado `gorm:"foreignKey:EmpleadoID"`
}

func (Contrato) TableName() string { return "contratos" }
