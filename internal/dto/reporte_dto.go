package dto

// ReporteSuministrosRequest is bound from the query string of the report
// endpoints. Formato selects the generator; Email switches to async delivery.
type ReporteSuministrosRequest struct {
	ProyectoID  string `form:"id_proyecto"  validate:"omitempty,uuid"`
	ProveedorID string `form:"id_proveedor" validate:"omitempty,uuid"`
	Fecha       string `form:"fecha"        validate:"omitempty,datetime=2006-01-02"`
	Email       string `form:"email"        validate:"omitempty,email"`
}

// ReporteAdeudosRequest is bound from the query string of the debt report
// endpoint.
type ReporteAdeudosRequest struct {
	Estado      string `form:"estado"       validate:"omitempty,oneof=pendiente parcial pagado all"`
	ProveedorID string `form:"id_proveedor" validate:"omitempty,uuid"`
	Email       string `form:"email"        validate:"omitempty,email"`
}

// ReporteJobPayload travels through the Redis queue for async report
// generation and email delivery.
type ReporteJobPayload struct {
	Formato     string `json:"formato"` // excel | pdf | adeudos-excel
	ProyectoID  string `json:"id_proyecto,omitempty"`
	ProveedorID string `json:"id_proveedor,omitempty"`
	Fecha       string `json:"fecha,omitempty"`
	Estado      string `json:"estado,omitempty"`
	Email       string `json:"email"`
}

type ReporteEncoladoResponse struct {
	Mensaje string `json:"mensaje"`
	Email   string `json:"email"`
}
