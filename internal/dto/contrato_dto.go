package dto

import "github.com/shopspring/decimal"

type CrearContratoRequest struct {
	EmpleadoID    string          `json:"id_empleado"    validate:"required,uuid"`
	TipoContrato  string          `json:"tipo_contrato"  validate:"required,oneof=obra_determinada tiempo_determinado indefinido"`
	FechaInicio   string          `json:"fecha_inicio"   validate:"required,datetime=2006-01-02"`
	FechaFin      *string         `json:"fecha_fin"      validate:"omitempty,datetime=2006-01-02"`
	SalarioDiario decimal.Decimal `json:"salario_diario" validate:"required,gt=0"`
}

type ActualizarContratoRequest struct {
	TipoContrato  *string          `json:"tipo_contrato"  validate:"omitempty,oneof=obra_determinada tiempo_determinado indefinido"`
	FechaInicio   *string          `json:"fecha_inicio"   validate:"omitempty,datetime=2006-01-02"`
	FechaFin      *string          `json:"fecha_fin"      validate:"omitempty,datetime=2006-01-02"`
	SalarioDiario *decimal.Decimal `json:"salario_diario" validate:"omitempty,gt=0"`
	Activo        *bool            `json:"activo"`
}

type ContratoResponse struct {
	ID            string          `json:"id"`
	EmpleadoID    string          `json:"id_empleado"`
	Empleado      *string         `json:"empleado"`
	TipoContrato  string          `json:"tipo_contrato"`
	FechaInicio   string          `json:"fecha_inicio"`
	FechaFin      *string         `json:"fecha_fin"`
	SalarioDiario decimal.Decimal `json:"salario_diario"`
	Activo        bool            `json:"activo"`
}
