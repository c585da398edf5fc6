package dto

import "github.com/shopspring/decimal"

type CrearAdeudoRequest struct {
	Descripcion      string          `json:"descripcion"       validate:"required,min=2"`
	ProveedorID      *string         `json:"id_proveedor"      validate:"omitempty,uuid"`
	ProyectoID       *string         `json:"id_proyecto"       validate:"omitempty,uuid"`
	MontoTotal       decimal.Decimal `json:"monto_total"       validate:"required,gt=0"`
	FechaVencimiento *string         `json:"fecha_vencimiento" validate:"omitempty,datetime=2006-01-02"`
}

type ActualizarAdeudoRequest struct {
	Descripcion      *string          `json:"descripcion"       validate:"omitempty,min=2"`
	ProveedorID      *string          `json:"id_proveedor"      validate:"omitempty,uuid"`
	ProyectoID       *string          `json:"id_proyecto"       validate:"omitempty,uuid"`
	MontoTotal       *decimal.Decimal `json:"monto_total"       validate:"omitempty,gt=0"`
	FechaVencimiento *string          `json:"fecha_vencimiento" validate:"omitempty,datetime=2006-01-02"`
	Estado           *string          `json:"estado"            validate:"omitempty,oneof=pendiente parcial pagado"`
}

type RegistrarPagoRequest struct {
	Monto decimal.Decimal `json:"monto" validate:"required,gt=0"`
}

type AdeudoFilter struct {
	Estado      string `form:"estado"       validate:"omitempty,oneof=pendiente parcial pagado all"`
	ProveedorID string `form:"id_proveedor" validate:"omitempty,uuid"`
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// AlertaVencimiento is the derived alert object attached to every listed
// debt. It is recomputed per request, never persisted. Field names match the
// client contract.
type AlertaVencimiento struct {
	DiasRestantes int    `json:"diasRestantes"`
	NivelUrgencia string `json:"nivelUrgencia"` // vencido | critico | alto | medio | bajo
	Mensaje       string `json:"mensaje"`
}

type AdeudoResponse struct {
	ID               string             `json:"id"`
	Descripcion      string             `json:"descripcion"`
	ProveedorID      *string            `json:"id_proveedor"`
	Proveedor        *string            `json:"proveedor"`
	ProyectoID       *string            `json:"id_proyecto"`
	Proyecto         *string            `json:"proyecto"`
	MontoTotal       decimal.Decimal    `json:"monto_total"`
	MontoPagado      decimal.Decimal    `json:"monto_pagado"`
	FechaVencimiento *string            `json:"fecha_vencimiento"`
	Estado           string             `json:"estado"`
	Alerta           *AlertaVencimiento `json:"alerta"`
	CreatedAt        string             `json:"created_at"`
}

type AdeudoListResponse struct {
	Data  []AdeudoResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}
