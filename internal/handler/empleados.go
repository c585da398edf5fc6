package handler

import (
	"fmt"
	"net/http"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/apierror"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/service"

	"github.com/gin-gonic/gin"
)

type EmpleadosHandler struct {
	svc      service.EmpleadoService
	bitacora service.BitacoraService
}

func NewEmpleadosHandler(svc service.EmpleadoService, bitacora service.BitacoraService) *EmpleadosHandler {
	return &EmpleadosHandler{svc: svc, bitacora: bitacora}
}

// Crear POST /v1/empleados
func (h *EmpleadosHandler) Crear(c *gin.Context) {
	var req dto.CrearEmpleadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	nombre := fmt.Sprintf("%s %s", resp.Nombre, resp.Apellido)
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "crear", "empleado", strPtr(resp.ID), &nombre)
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/empleados
func (h *EmpleadosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar empleados"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /v1/empleados/:id
func (h *EmpleadosHandler) ObtenerPorID(c *gin.Context) {
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

// Actualizar PUT /v1/empleados/:id
func (h *EmpleadosHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarEmpleadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "actualizar", "empleado", strPtr(resp.ID), nil)
	c.JSON(http.StatusOK, resp)
}

// Desactivar DELETE /v1/empleados/:id
func (h *EmpleadosHandler) Desactivar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "eliminar", "empleado", strPtr(id.String()), nil)
	c.JSON(http.StatusNoContent, nil)
}
