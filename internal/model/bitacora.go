package model

import (
	"time"

	"github.com/google/uuid"
)

// Bitacora is an append-only audit entry recorded for every mutation on a
// core entity. Rows are never updated or deleted.
// Accion: "crear" | "actualizar" | "eliminar"
type Bitacora struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID *uuid.UUID `gorm:"column:id_usuario;type:uuid;index"`
	Accion    string     `gorm:"type:varchar(20);not null"`
	Entidad   string     `gorm:"type:varchar(40);not null;index"`
	EntidadID *string    `gorm:"column:id_entidad;type:varchar(40)"`
	Detalle   *string
	CreatedAt time.Time `gorm:"index"`

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (Bitacora) TableName() string { return "bitacora" }
