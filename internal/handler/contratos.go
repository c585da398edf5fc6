package handler

import (
	"net/http"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/apierror"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContratosHandler struct {
	svc      service.ContratoService
	bitacora service.BitacoraService
}

func NewContratosHandler(svc service.ContratoService, bitacora service.BitacoraService) *ContratosHandler {
	return &ContratosHandler{svc: svc, bitacora: bitacora}
}

// Crear POST /v1/contratos
func (h *ContratosHandler) Crear(c *gin.Context) {
	var req dto.CrearContratoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "crear", "contrato", strPtr(resp.ID), nil)
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/contratos — opcionalmente filtrado por id_empleado
func (h *ContratosHandler) Listar(c *gin.Context) {
	if raw := c.Query("id_empleado"); raw != "" {
		empleadoID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("id_empleado inválido"))
			return
		}
		resp, err := h.svc.ListarPorEmpleado(c.Request.Context(), empleadoID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Error al listar contratos"))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar contratos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /v1/contratos/:id
func (h *ContratosHandler) ObtenerPorID(c *gin.Context) {
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

// Actualizar PUT /v1/contratos/:id
func (h *ContratosHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarContratoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "actualizar", "contrato", strPtr(resp.ID), nil)
	c.JSON(http.StatusOK, resp)
}

// Desactivar DELETE /v1/contratos/:id
func (h *ContratosHandler) Desactivar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "eliminar", "contrato", strPtr(id.String()), nil)
	c.JSON(http.StatusNoContent, nil)
}
