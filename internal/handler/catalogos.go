package handler

import (
	"net/http"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/apierror"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogosHandler serves the two reference catalogs behind supply line
// items: categories and units of measure.
type CatalogosHandler struct {
	svc      service.CatalogoService
	bitacora service.BitacoraService
}

func NewCatalogosHandler(svc service.CatalogoService, bitacora service.BitacoraService) *CatalogosHandler {
	return &CatalogosHandler{svc: svc, bitacora: bitacora}
}

// ── Categorías de suministro ─────────────────────────────────────────────────

func (h *CatalogosHandler) CrearCategoria(c *gin.Context) {
	var req dto.CrearCategoriaSuministroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearCategoria(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "crear", "categoria_suministro", strPtr(resp.ID), strPtr(resp.Nombre))
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogosHandler) ListarCategorias(c *gin.Context) {
	resp, err := h.svc.ListarCategorias(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar categorías"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogosHandler) ActualizarCategoria(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarCategoriaSuministroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarCategoria(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "actualizar", "categoria_suministro", strPtr(resp.ID), nil)
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogosHandler) DesactivarCategoria(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.DesactivarCategoria(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "eliminar", "categoria_suministro", strPtr(id.String()), nil)
	c.JSON(http.StatusNoContent, nil)
}

// ── Unidades de medida ───────────────────────────────────────────────────────

func (h *CatalogosHandler) CrearUnidad(c *gin.Context) {
	var req dto.CrearUnidadMedidaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearUnidad(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "crear", "unidad_medida", strPtr(resp.ID), strPtr(resp.Nombre))
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogosHandler) ListarUnidades(c *gin.Context) {
	resp, err := h.svc.ListarUnidades(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar unidades"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogosHandler) ActualizarUnidad(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarUnidadMedidaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarUnidad(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "actualizar", "unidad_medida", strPtr(resp.ID), nil)
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogosHandler) DesactivarUnidad(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.DesactivarUnidad(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "eliminar", "unidad_medida", strPtr(id.String()), nil)
	c.JSON(http.StatusNoContent, nil)
}
