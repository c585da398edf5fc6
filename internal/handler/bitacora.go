package handler

import (
	"net/http"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/apierror"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/service"

	"github.com/gin-gonic/gin"
)

type BitacoraHandler struct{ svc service.BitacoraService }

func NewBitacoraHandler(svc service.BitacoraService) *BitacoraHandler {
	return &BitacoraHandler{svc: svc}
}

// Listar godoc
// @Summary Consultar la bitácora de cambios
// @Tags bitacora
// @Produce json
// @Security BearerAuth
// @Param entidad query string false "Filtrar por entidad (suministro, adeudo, …)"
// @Param accion query string false "crear | actualizar | eliminar"
// @Param page query int false "Página (default 1)"
// @Param limit query int false "Registros por página (default 50)"
// @Success 200 {object} dto.BitacoraListResponse
// @Router /v1/bitacora [get]
func (h *BitacoraHandler) Listar(c *gin.Context) {
	var filter dto.BitacoraFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar la bitácora"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
