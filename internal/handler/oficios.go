package handler

import (
	"net/http"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/apierror"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/service"

	"github.com/gin-gonic/gin"
)

type OficiosHandler struct {
	svc      service.OficioService
	bitacora service.BitacoraService
}

func NewOficiosHandler(svc service.OficioService, bitacora service.BitacoraService) *OficiosHandler {
	return &OficiosHandler{svc: svc, bitacora: bitacora}
}

// Crear POST /v1/oficios
func (h *OficiosHandler) Crear(c *gin.Context) {
	var req dto.CrearOficioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "crear", "oficio", strPtr(resp.ID), strPtr(resp.Nombre))
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/oficios
func (h *OficiosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar oficios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/oficios/:id
func (h *OficiosHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarOficioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "actualizar", "oficio", strPtr(resp.ID), nil)
	c.JSON(http.StatusOK, resp)
}

// Desactivar DELETE /v1/oficios/:id
func (h *OficiosHandler) Desactivar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "eliminar", "oficio", strPtr(id.String()), nil)
	c.JSON(http.StatusNoContent, nil)
}
