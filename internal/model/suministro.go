package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Suministro is one line item of a supply receipt. The receipt header
// (project, provider, folio, date, transport data) is denormalized onto every
// line — there is no separate header table. Column names are fixed by the
// existing store and must not be renamed.
//
// Estado: "Pendiente" | "Entregado" | "Parcial"
type Suministro struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	// Receipt header (replicated on every line of the same receipt)
	ProyectoID         uuid.UUID `gorm:"column:id_proyecto;type:uuid;not null;index"`
	ProveedorID        uuid.UUID `gorm:"column:id_proveedor;type:uuid;not null;index"`
	Folio              *string   `gorm:"index"`
	Fecha              time.Time `gorm:"not null;index"`
	MetodoPago         *string   `gorm:"column:metodo_pago;type:varchar(30)"`
	VehiculoTransporte *string   `gorm:"column:vehiculo_transporte"`
	Operador           *string
	HoraSalida         *string `gorm:"column:hora_salida;type:varchar(8)"`
	HoraLlegada        *string `gorm:"column:hora_llegada;type:varchar(8)"`
	Observaciones      *string

	// Line item
	CategoriaID          *uuid.UUID       `gorm:"column:id_categoria_suministro;type:uuid;index"`
	Nombre               string           `gorm:"not null"`
	CodigoProducto       *string          `gorm:"column:codigo_producto"`
	DescripcionDetallada *string          `gorm:"column:descripcion_detallada"`
	Cantidad             *decimal.Decimal `gorm:"column:cantidad;type:decimal(12,3)"`
	UnidadMedidaID       uuid.UUID        `gorm:"column:id_unidad_medida;type:uuid;not null"`
	PrecioUnitario       *decimal.Decimal `gorm:"column:precio_unitario;type:decimal(12,2)"`
	Subtotal             *decimal.Decimal `gorm:"column:subtotal;type:decimal(12,2)"`
	CostoTotal           *decimal.Decimal `gorm:"column:costo_total;type:decimal(12,2)"`
	IncludeIVA           bool             `gorm:"column:include_iva;not null;default:false"`
	Estado               string           `gorm:"type:varchar(20);not null;default:'Pendiente'"`

	// Concrete deliveries track volumetric loss
	M3Entregados  *decimal.Decimal `gorm:"column:m3_entregados;type:decimal(12,3)"`
	M3PorEntregar *decimal.Decimal `gorm:"column:m3_por_entregar;type:decimal(12,3)"`
	M3Perdidos    *decimal.Decimal `gorm:"column:m3_perdidos;type:decimal(12,3)"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Proyecto     *Proyecto            `gorm:"foreignKey:ProyectoID"`
	Proveedor    *Proveedor           `gorm:"foreignKey:ProveedorID"`
	Categoria    *CategoriaSuministro `gorm:"foreignKey:CategoriaID"`
	UnidadMedida *UnidadMedida        `gorm:"foreignKey:UnidadMedidaID"`
}

func (Suministro) TableName() string { return "suministros" }
