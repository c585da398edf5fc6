package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// SuministroFilter is bound from the query string of GET /v1/suministros.
type SuministroFilter struct {
	ProyectoID  string `form:"id_proyecto"  validate:"omitempty,uuid"`
	ProveedorID string `form:"id_proveedor" validate:"omitempty,uuid"`
	Fecha       string `form:"fecha"` // YYYY-MM-DD; empty = all
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type SuministroListResponse struct {
	Data  []SuministroResponse `json:"data"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// InfoRecibo is the receipt header, replicated onto every line item persisted
// in the same submission.
type InfoRecibo struct {
	ProyectoID         string  `json:"id_proyecto"  validate:"required,uuid"`
	ProveedorID        string  `json:"id_proveedor" validate:"required,uuid"`
	Folio              *string `json:"folio"`
	Fecha              string  `json:"fecha" validate:"required,datetime=2006-01-02"`
	MetodoPago         *string `json:"metodo_pago"`
	VehiculoTransporte *string `json:"vehiculo_transporte"`
	Operador           *string `json:"operador"`
	HoraSalida         *string `json:"hora_salida"`
	HoraLlegada        *string `json:"hora_llegada"`
	Observaciones      *string `json:"observaciones"`
}

// LineaSuministroRequest is one line item of a submission. A present ID asks
// for an update; an absent ID asks for a create. A present-but-stale ID is
// advisory only and falls back to create.
type LineaSuministroRequest struct {
	ID                   *string          `json:"id"                      validate:"omitempty,uuid"`
	CategoriaID          *string          `json:"id_categoria_suministro" validate:"omitempty,uuid"`
	Nombre               string           `json:"nombre"                  validate:"required,min=1"`
	CodigoProducto       *string          `json:"codigo_producto"`
	DescripcionDetallada *string          `json:"descripcion_detallada"`
	Cantidad             *decimal.Decimal `json:"cantidad"                validate:"required"`
	UnidadMedidaID       string           `json:"id_unidad_medida"        validate:"required,uuid"`
	PrecioUnitario       *decimal.Decimal `json:"precio_unitario"         validate:"required"`
	Estado               string           `json:"estado"                  validate:"omitempty,oneof=Pendiente Entregado Parcial"`
	M3Entregados         *decimal.Decimal `json:"m3_entregados"`
	M3PorEntregar        *decimal.Decimal `json:"m3_por_entregar"`
	M3Perdidos           *decimal.Decimal `json:"m3_perdidos"`
}

type RegistrarSuministrosRequest struct {
	InfoRecibo  InfoRecibo               `json:"info_recibo" validate:"required"`
	Suministros []LineaSuministroRequest `json:"suministros" validate:"required,min=1,dive"`
	IncludeIVA  bool                     `json:"include_iva"`
	// PermitirDuplicado persists the receipt even when the folio collides with
	// existing rows (the check stays advisory).
	PermitirDuplicado bool `json:"permitir_duplicado"`
	// Eliminados lists line item IDs the edit flow removed from the receipt.
	// Omitting an ID leaves the row untouched — the engine never diffs.
	Eliminados []string `json:"suministros_eliminados" validate:"omitempty,dive,uuid"`
}

// ActualizarSuministroRequest is a partial single-line update (PUT).
// Empty strings count as "not supplied" to match the client's blank fields.
type ActualizarSuministroRequest struct {
	CategoriaID          *string          `json:"id_categoria_suministro" validate:"omitempty,uuid"`
	Nombre               *string          `json:"nombre"`
	CodigoProducto       *string          `json:"codigo_producto"`
	DescripcionDetallada *string          `json:"descripcion_detallada"`
	Cantidad             *decimal.Decimal `json:"cantidad"`
	UnidadMedidaID       *string          `json:"id_unidad_medida" validate:"omitempty,uuid"`
	PrecioUnitario       *decimal.Decimal `json:"precio_unitario"`
	Estado               *string          `json:"estado" validate:"omitempty,oneof=Pendiente Entregado Parcial"`
	IncludeIVA           *bool            `json:"include_iva"`
	Folio                *string          `json:"folio"`
	MetodoPago           *string          `json:"metodo_pago"`
	Observaciones        *string          `json:"observaciones"`
	M3Entregados         *decimal.Decimal `json:"m3_entregados"`
	M3PorEntregar        *decimal.Decimal `json:"m3_por_entregar"`
	M3Perdidos           *decimal.Decimal `json:"m3_perdidos"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SuministroResponse struct {
	ID                   string           `json:"id"`
	ProyectoID           string           `json:"id_proyecto"`
	Proyecto             *string          `json:"proyecto"`
	ProveedorID          string           `json:"id_proveedor"`
	Proveedor            *string          `json:"proveedor"`
	Folio                *string          `json:"folio"`
	Fecha                string           `json:"fecha"`
	MetodoPago           *string          `json:"metodo_pago"`
	CategoriaID          *string          `json:"id_categoria_suministro"`
	Categoria            *string          `json:"categoria"`
	Nombre               string           `json:"nombre"`
	CodigoProducto       *string          `json:"codigo_producto"`
	DescripcionDetallada *string          `json:"descripcion_detallada"`
	Cantidad             *decimal.Decimal `json:"cantidad"`
	UnidadMedidaID       string           `json:"id_unidad_medida"`
	UnidadMedida         *string          `json:"unidad_medida"`
	PrecioUnitario       *decimal.Decimal `json:"precio_unitario"`
	Subtotal             *decimal.Decimal `json:"subtotal"`
	CostoTotal           *decimal.Decimal `json:"costo_total"`
	IncludeIVA           bool             `json:"include_iva"`
	Estado               string           `json:"estado"`
	M3Entregados         *decimal.Decimal `json:"m3_entregados,omitempty"`
	M3PorEntregar        *decimal.Decimal `json:"m3_por_entregar,omitempty"`
	M3Perdidos           *decimal.Decimal `json:"m3_perdidos,omitempty"`
	Observaciones        *string          `json:"observaciones"`
	CreatedAt            string           `json:"created_at"`
}

// ResultadoLinea reports what happened to each submitted line, by input index.
type ResultadoLinea struct {
	Indice int    `json:"indice"`
	ID     string `json:"id"`
	Accion string `json:"accion"` // creado | actualizado
}

type RegistrarSuministrosData struct {
	Results []ResultadoLinea     `json:"results"`
	Created []SuministroResponse `json:"created"`
}

type RegistrarSuministrosResponse struct {
	Success     bool                     `json:"success"`
	Data        RegistrarSuministrosData `json:"data"`
	Advertencia *string                  `json:"advertencia,omitempty"`
}

// ConflictoFolio is one match returned by the duplicate folio detector.
type ConflictoFolio struct {
	ID        string  `json:"id"`
	Folio     *string `json:"folio"`
	Fecha     string  `json:"fecha"`
	Nombre    string  `json:"nombre"`
	Proveedor *string `json:"proveedor"`
	Proyecto  *string `json:"proyecto"`
}

type ValidarFolioResponse struct {
	Conflictos      []ConflictoFolio `json:"conflictos"`
	TotalConflictos int64            `json:"total_conflictos"`
}
