package dto

import "github.com/shopspring/decimal"

type CrearEmpleadoRequest struct {
	Nombre     string          `json:"nombre"      validate:"required,min=2,max=100"`
	Apellido   string          `json:"apellido"    validate:"required,min=2,max=100"`
	NSS        *string         `json:"nss"`
	RFC        *string         `json:"rfc"`
	Telefono   *string         `json:"telefono"`
	OficioID   *string         `json:"id_oficio"   validate:"omitempty,uuid"`
	ProyectoID *string         `json:"id_proyecto" validate:"omitempty,uuid"`
	PagoDiario decimal.Decimal `json:"pago_diario" validate:"required,gt=0"`
}

type ActualizarEmpleadoRequest struct {
	Nombre     *string          `json:"nombre"      validate:"omitempty,min=2,max=100"`
	Apellido   *string          `json:"apellido"    validate:"omitempty,min=2,max=100"`
	NSS        *string          `json:"nss"`
	RFC        *string          `json:"rfc"`
	Telefono   *string          `json:"telefono"`
	OficioID   *string          `json:"id_oficio"   validate:"omitempty,uuid"`
	ProyectoID *string          `json:"id_proyecto" validate:"omitempty,uuid"`
	PagoDiario *decimal.Decimal `json:"pago_diario" validate:"omitempty,gt=0"`
}

type EmpleadoResponse struct {
	ID         string          `json:"id"`
	Nombre     string          `json:"nombre"`
	Apellido   string          `json:"apellido"`
	NSS        *string         `json:"nss"`
	RFC        *string         `json:"rfc"`
	Telefono   *string         `json:"telefono"`
	Oficio     *string         `json:"oficio"`
	Proyecto   *string         `json:"proyecto"`
	PagoDiario decimal.Decimal `json:"pago_diario"`
	Activo     bool            `json:"activo"`
}
