package model

import (
	"time"

	"github.com/google/uuid"
)

// Proyecto is a construction project (obra).
// Estado: "activo" | "pausado" | "finalizado"
type Proyecto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"not null;index"`
	Ubicacion   *string
	Responsable *string
	FechaInicio *time.Time
	FechaFin    *time.Time
	Estado      string `gorm:"type:varchar(20);not null;default:'activo'"`
	Activo      bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Proyecto) TableName() string { return "proyectos" }
