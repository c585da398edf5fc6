package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/apierror"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SuministrosHandler struct {
	svc      service.SuministroService
	bitacora service.BitacoraService
}

func NewSuministrosHandler(svc service.SuministroService, bitacora service.BitacoraService) *SuministrosHandler {
	return &SuministrosHandler{svc: svc, bitacora: bitacora}
}

// RegistrarMultiples godoc
// @Summary Registrar o actualizar un recibo de suministros
// @Description Procesa todas las líneas del recibo en una sola transacción: crea las nuevas, actualiza las existentes y elimina las listadas en suministros_eliminados. Un folio repetido responde 409 salvo que permitir_duplicado sea true.
// @Tags suministros
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.RegistrarSuministrosRequest true "Recibo con líneas"
// @Success 201 {object} dto.RegistrarSuministrosResponse
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.ConflictError
// @Router /v1/suministros/multiple [post]
func (h *SuministrosHandler) RegistrarMultiples(c *gin.Context) {
	var req dto.RegistrarSuministrosRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.RegistrarMultiples(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	detalle := fmt.Sprintf("%d línea(s) procesadas", len(resp.Data.Results))
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "crear", "suministro", nil, &detalle)
	c.JSON(http.StatusCreated, resp)
}

// Actualizar godoc
// @Summary Actualizar una línea de suministro
// @Tags suministros
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID del suministro"
// @Param body body dto.ActualizarSuministroRequest true "Campos a modificar"
// @Success 200 {object} dto.SuministroResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/suministros/{id} [put]
func (h *SuministrosHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarSuministroRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "actualizar", "suministro", strPtr(resp.ID), nil)
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary Listar suministros
// @Tags suministros
// @Produce json
// @Security BearerAuth
// @Param id_proyecto query string false "Filtrar por proyecto"
// @Param id_proveedor query string false "Filtrar por proveedor"
// @Param fecha query string false "Fecha YYYY-MM-DD"
// @Param page query int false "Página (default 1)"
// @Param limit query int false "Registros por página (default 50)"
// @Success 200 {object} dto.SuministroListResponse
// @Router /v1/suministros [get]
func (h *SuministrosHandler) Listar(c *gin.Context) {
	var filter dto.SuministroFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar suministros"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SuministrosHandler) ObtenerPorID(c *gin.Context) {
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

func (h *SuministrosHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "eliminar", "suministro", strPtr(id.String()), nil)
	c.JSON(http.StatusNoContent, nil)
}

// ValidarFolio godoc
// @Summary Detectar folios duplicados mientras se captura
// @Description Búsqueda insensible a mayúsculas y espacios. excluir acepta una lista de UUIDs separados por coma (las líneas del recibo en edición).
// @Tags suministros
// @Produce json
// @Security BearerAuth
// @Param folio query string true "Folio a validar"
// @Param excluir query string false "UUIDs a excluir, separados por coma"
// @Success 200 {object} dto.ValidarFolioResponse
// @Router /v1/suministros/validar-folio [get]
func (h *SuministrosHandler) ValidarFolio(c *gin.Context) {
	folio := c.Query("folio")

	var excluir []uuid.UUID
	if raw := c.Query("excluir"); raw != "" {
		for _, parte := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(parte))
			if err != nil {
				c.JSON(http.StatusBadRequest, apierror.New("excluir contiene un UUID inválido"))
				return
			}
			excluir = append(excluir, id)
		}
	}

	resp, err := h.svc.ValidarFolio(c.Request.Context(), folio, excluir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al validar el folio"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
