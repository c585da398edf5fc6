package handler

import (
	"errors"
	"net/http"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/apierror"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// writeAuthError keeps 401 bodies to the known auth sentinels; anything else
// (a repository failure, for instance) goes through the generic 500 path so
// internal error text never reaches the client.
func writeAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCredencialesInvalidas),
		errors.Is(err, service.ErrUsuarioInactivo),
		errors.Is(err, service.ErrTokenInvalido):
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
	default:
		writeServiceError(c, err)
	}
}

// Login godoc
// @Summary Login de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary Renovar tokens con un refresh token vigente
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req)
	if err != nil {
		writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Usuarios Handler ─────────────────────────────────────────────────────────

type UsuariosHandler struct {
	svc      service.AuthService
	bitacora service.BitacoraService
}

func NewUsuariosHandler(svc service.AuthService, bitacora service.BitacoraService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc, bitacora: bitacora}
}

func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearUsuario(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameOcupado) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "crear", "usuario", strPtr(resp.ID), strPtr(resp.Username))
	c.JSON(http.StatusCreated, resp)
}

func (h *UsuariosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarUsuarios(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar usuarios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarUsuario(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "actualizar", "usuario", strPtr(resp.ID), nil)
	c.JSON(http.StatusOK, resp)
}

func (h *UsuariosHandler) Desactivar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.DesactivarUsuario(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	h.bitacora.Registrar(c.Request.Context(), usuarioID(c), "eliminar", "usuario", strPtr(id.String()), nil)
	c.JSON(http.StatusNoContent, nil)
}
