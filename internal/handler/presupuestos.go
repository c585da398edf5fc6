package handler

import (
	"net/http"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/apierror"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PresupuestosHandler struct {
	svc      service.PresupuestoService
	bitacora service.BitacoraService
}

func NewPresupuestosHandler(svc service.PresupuestoService, bitacora service.BitacoraService) *PresupuestosHandler {
	return &PresupuestosHandler{svc: svc, bitacora: bitacora}
}

// Crear POST /v1/presupuestos
func (h *PresupuestosHandler) Crear(c *gin.Context) {
	var req dto.CrearPresupuestoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "crear", "presupuesto", strPtr(resp.ID), strPtr(resp.Concepto))
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/presupuestos — opcionalmente filtrado por id_proyecto
func (h *PresupuestosHandler) Listar(c *gin.Context) {
	if raw := c.Query("id_proyecto"); raw != "" {
		proyectoID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("id_proyecto inválido"))
			return
		}
		resp, err := h.svc.ListarPorProyecto(c.Request.Context(), proyectoID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Error al listar presupuestos"))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar presupuestos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /v1/presupuestos/:id
func (h *PresupuestosHandler) ObtenerPorID(c *gin.Context) {
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

// Actualizar PUT /v1/presupuestos/:id
func (h *PresupuestosHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarPresupuestoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "actualizar", "presupuesto", strPtr(resp.ID), nil)
	c.JSON(http.StatusOK, resp)
}

// Desactivar DELETE /v1/presupuestos/:id
func (h *PresupuestosHandler) Desactivar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "eliminar", "presupuesto", strPtr(id.String()), nil)
	c.JSON(http.StatusNoContent, nil)
}
