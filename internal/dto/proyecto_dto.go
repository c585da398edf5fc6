package dto

type CrearProyectoRequest struct {
	Nombre      string  `json:"nombre" validate:"required,min=2"`
	Ubicacion   *string `json:"ubicacion"`
	Responsable *string `json:"responsable"`
	FechaInicio *string `json:"fecha_inicio" validate:"omitempty,datetime=2006-01-02"`
	FechaFin    *string `json:"fecha_fin"    validate:"omitempty,datetime=2006-01-02"`
	Estado      string  `json:"estado"       validate:"omitempty,oneof=activo pausado finalizado"`
}

type ActualizarProyectoRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=2"`
	Ubicacion   *string `json:"ubicacion"`
	Responsable *string `json:"responsable"`
	FechaInicio *string `json:"fecha_inicio" validate:"omitempty,datetime=2006-01-02"`
	FechaFin    *string `json:"fecha_fin"    validate:"omitempty,datetime=2006-01-02"`
	Estado      *string `json:"estado"       validate:"omitempty,oneof=activo pausado finalizado"`
	Activo      *bool   `json:"activo"`
}

type ProyectoResponse struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Ubicacion   *string `json:"ubicacion"`
	Responsable *string `json:"responsable"`
	FechaInicio *string `json:"fecha_inicio"`
	FechaFin    *string `json:"fecha_fin"`
	Estado      string  `json:"estado"`
	Activo      bool    `json:"activo"`
}
