package model

import (
	"time"

	"github.com/google/uuid"
)

// Proveedor represents a material/service supplier with commercial data.
type Proveedor struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre        string    `gorm:"not null"`
	RFC           *string   `gorm:"column:rfc;uniqueIndex"`
	TipoProveedor *string   `gorm:"type:varchar(50)"`
	Telefono      *string
	Email         *string
	Direccion     *string
	Activo        bool `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Suministros []Suministro `gorm:"foreignKey:ProveedorID"`
}

func (Proveedor) TableName() string { return "proveedores" }
