package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Excel godoc
// @Summary Reporte de suministros en Excel
// @Description Sin email descarga el archivo directamente; con email encola la generación y lo envía por correo.
// @Tags reportes
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id_proyecto query string false "Filtrar por proyecto"
// @Param id_proveedor query string false "Filtrar por proveedor"
// @Param fecha query string false "Fecha YYYY-MM-DD"
// @Param email query string false "Entrega asíncrona por correo"
// @Success 200
// @Success 202 {object} dto.ReporteEncoladoResponse
// @Router /v1/reportes/suministros/excel [get]
func (h *ReportesHandler) Excel(c *gin.Context) {
	h.generar(c, "excel")
}

// PDF godoc
// @Summary Reporte de suministros en PDF
// @Tags reportes
// @Produce application/pdf
// @Security BearerAuth
// @Param id_proyecto query string false "Filtrar por proyecto"
// @Param id_proveedor query string false "Filtrar por proveedor"
// @Param fecha query string false "Fecha YYYY-MM-DD"
// @Param email query string false "Entrega asíncrona por correo"
// @Success 200
// @Success 202 {object} dto.ReporteEncoladoResponse
// @Router /v1/reportes/suministros/pdf [get]
func (h *ReportesHandler) PDF(c *gin.Context) {
	h.generar(c, "pdf")
}

// AdeudosExcel godoc
// @Summary Reporte de adeudos en Excel
// @Description Sin email descarga el archivo directamente; con email encola la generación y lo envía por correo.
// @Tags reportes
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param estado query string false "Filtrar por estado (pendiente|parcial|pagado|all)"
// @Param id_proveedor query string false "Filtrar por proveedor"
// @Param email query string false "Entrega asíncrona por correo"
// @Success 200
// @Success 202 {object} dto.ReporteEncoladoResponse
// @Router /v1/reportes/adeudos/excel [get]
func (h *ReportesHandler) AdeudosExcel(c *gin.Context) {
	var req dto.ReporteAdeudosRequest
	if !bindQueryAndValidate(c, &req) {
		return
	}

	if req.Email != "" {
		resp, err := h.svc.EncolarAdeudos(c.Request.Context(), req)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, resp)
		return
	}

	filePath, err := h.svc.GenerarAdeudosExcel(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	defer os.Remove(filePath)

	c.FileAttachment(filePath, filepath.Base(filePath))
}

func (h *ReportesHandler) generar(c *gin.Context, formato string) {
	var req dto.ReporteSuministrosRequest
	if !bindQueryAndValidate(c, &req) {
		return
	}

	// Async path: queue it and let the worker email the file.
	if req.Email != "" {
		resp, err := h.svc.Encolar(c.Request.Context(), formato, req)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, resp)
		return
	}

	var filePath string
	var err error
	if formato == "pdf" {
		filePath, err = h.svc.GenerarPDF(c.Request.Context(), req)
	} else {
		filePath, err = h.svc.GenerarExcel(c.Request.Context(), req)
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}
	defer os.Remove(filePath)

	c.FileAttachment(filePath, filepath.Base(filePath))
}
