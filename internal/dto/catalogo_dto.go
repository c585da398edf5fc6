package dto

// Reference catalogs: supply categories and units of measure.

type CrearCategoriaSuministroRequest struct {
	Nombre string  `json:"nombre" validate:"required,min=2,max=100"`
	Tipo   *string `json:"tipo"`
}

type ActualizarCategoriaSuministroRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=2,max=100"`
	Tipo   *string `json:"tipo"`
	Activo *bool   `json:"activo"`
}

type CategoriaSuministroResponse struct {
	ID     string  `json:"id"`
	Nombre string  `json:"nombre"`
	Tipo   *string `json:"tipo"`
	Activo bool    `json:"activo"`
}

type CrearUnidadMedidaRequest struct {
	Nombre  string `json:"nombre"  validate:"required,min=1,max=100"`
	Simbolo string `json:"simbolo" validate:"required,min=1,max=10"`
}

type ActualizarUnidadMedidaRequest struct {
	Nombre  *string `json:"nombre"  validate:"omitempty,min=1,max=100"`
	Simbolo *string `json:"simbolo" validate:"omitempty,min=1,max=10"`
	Activo  *bool   `json:"activo"`
}

type UnidadMedidaResponse struct {
	ID      string `json:"id"`
	Nombre  string `json:"nombre"`
	Simbolo string `json:"simbolo"`
	Activo  bool   `json:"activo"`
}
