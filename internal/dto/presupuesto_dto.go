package dto

import "github.com/shopspring/decimal"

type CrearPresupuestoRequest struct {
	ProyectoID    string          `json:"id_proyecto"    validate:"required,uuid"`
	Concepto      string          `json:"concepto"       validate:"required,min=2"`
	MontoEstimado decimal.Decimal `json:"monto_estimado" validate:"required,gt=0"`
	Periodo       *string         `json:"periodo"`
}

type ActualizarPresupuestoRequest struct {
	Concepto      *string          `json:"concepto"       validate:"omitempty,min=2"`
	MontoEstimado *decimal.Decimal `json:"monto_estimado" validate:"omitempty,gt=0"`
	MontoEjercido *decimal.Decimal `json:"monto_ejercido" validate:"omitempty,min=0"`
	Periodo       *string          `json:"periodo"`
	Activo        *bool            `json:"activo"`
}

type PresupuestoResponse struct {
	ID            string          `json:"id"`
	ProyectoID    string          `json:"id_proyecto"`
	Proyecto      *string         `json:"proyecto"`
	Concepto      string          `json:"concepto"`
	MontoEstimado decimal.Decimal `json:"monto_estimado"`
	MontoEjercido decimal.Decimal `json:"monto_ejercido"`
	// Disponible is derived: estimado − ejercido. Never stored.
	Disponible decimal.Decimal `json:"disponible"`
	Periodo    *string         `json:"periodo"`
	Activo     bool            `json:"activo"`
}
