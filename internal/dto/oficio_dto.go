package dto

type CrearOficioRequest struct {
	Nombre      string  `json:"nombre" validate:"required,min=2,max=100"`
	Descripcion *string `json:"descripcion"`
}

type ActualizarOficioRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=2,max=100"`
	Descripcion *string `json:"descripcion"`
	Activo      *bool   `json:"activo"`
}

type OficioResponse struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Activo      bool    `json:"activo"`
}
