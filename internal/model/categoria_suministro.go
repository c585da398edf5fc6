package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoriaSuministro classifies supply line items (Material, Concreto,
// Maquinaria, Servicio, …).
type CategoriaSuministro struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Tipo        *string   `gorm:"type:varchar(50)"`
	Activo      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CategoriaSuministro) TableName() string { return "categorias_suministro" }
