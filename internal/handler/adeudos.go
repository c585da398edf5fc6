package handler

import (
	"net/http"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/apierror"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/service"

	"github.com/gin-gonic/gin"
)

type AdeudosHandler struct {
	svc      service.AdeudoService
	bitacora service.BitacoraService
}

func NewAdeudosHandler(svc service.AdeudoService, bitacora service.BitacoraService) *AdeudosHandler {
	return &AdeudosHandler{svc: svc, bitacora: bitacora}
}

// Crear godoc
// @Summary Registrar un adeudo
// @Tags adeudos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearAdeudoRequest true "Adeudo"
// @Success 201 {object} dto.AdeudoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/adeudos [post]
func (h *AdeudosHandler) Crear(c *gin.Context) {
	var req dto.CrearAdeudoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "crear", "adeudo", strPtr(resp.ID), strPtr(resp.Descripcion))
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Listar adeudos con su alerta de vencimiento
// @Description Cada adeudo no pagado con fecha de vencimiento dentro de los próximos 7 días (o vencido) incluye el objeto alerta con diasRestantes, nivelUrgencia y mensaje.
// @Tags adeudos
// @Produce json
// @Security BearerAuth
// @Param estado query string false "pendiente | parcial | pagado | all"
// @Param id_proveedor query string false "Filtrar por proveedor"
// @Param page query int false "Página (default 1)"
// @Param limit query int false "Registros por página (default 50)"
// @Success 200 {object} dto.AdeudoListResponse
// @Router /v1/adeudos [get]
func (h *AdeudosHandler) Listar(c *gin.Context) {
	var filter dto.AdeudoFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar adeudos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdeudosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdeudosHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarAdeudoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "actualizar", "adeudo", strPtr(resp.ID), nil)
	c.JSON(http.StatusOK, resp)
}

// RegistrarPago godoc
// @Summary Registrar un pago parcial o total sobre un adeudo
// @Description Acumula monto_pagado y recalcula el estado: pagado al cubrir el total, parcial mientras tanto.
// @Tags adeudos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID del adeudo"
// @Param body body dto.RegistrarPagoRequest true "Monto del pago"
// @Success 200 {object} dto.AdeudoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/adeudos/{id}/pagos [patch]
func (h *AdeudosHandler) RegistrarPago(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.RegistrarPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarPago(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	detalle := "pago de $" + req.Monto.StringFixed(2)
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "actualizar", "adeudo", strPtr(resp.ID), &detalle)
	c.JSON(http.StatusOK, resp)
}

func (h *AdeudosHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "eliminar", "adeudo", strPtr(id.String()), nil)
	c.JSON(http.StatusNoContent, nil)
}
