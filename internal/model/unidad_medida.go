package model

import (
	"time"

	"github.com/google/uuid"
)

// UnidadMedida is a unit of measure (pza, m3, ton, viaje, …).
type UnidadMedida struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"uniqueIndex;not null"`
	Simbolo   string    `gorm:"type:varchar(10);not null"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UnidadMedida) TableName() string { return "unidades_medida" }
