package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/apierror"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/middleware"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// bindQueryAndValidate is bindAndValidate for query-string DTOs.
func bindQueryAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Query invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseIDParam extracts and validates the :id path parameter.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}

// writeServiceError maps service-layer errors to HTTP responses.
// Folio conflicts become 409 with the match preview, duplicate catalog
// entries plain 409s, precondition failures 400 with the offending line
// index, missing rows 404.
func writeServiceError(c *gin.Context, err error) {
	var conflicto *service.FolioDuplicadoError
	if errors.As(err, &conflicto) {
		c.JSON(http.StatusConflict, apierror.NewConflict(conflicto.Error(), conflicto.Conflictos, conflicto.Total))
		return
	}
	var validacion *service.ValidacionError
	if errors.As(err, &validacion) {
		c.JSON(http.StatusBadRequest, apierror.New(validacion.Error()))
		return
	}
	if errors.Is(err, service.ErrCategoriaDuplicada) ||
		errors.Is(err, service.ErrOficioDuplicado) ||
		errors.Is(err, service.ErrProveedorRFCDuplicado) {
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Registro no encontrado"))
		return
	}
	// The client gets a generic body; the original error (rolled-back
	// transactions included) must stay diagnosable server-side.
	log.Error().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("path", c.FullPath()).
		Err(err).
		Msg("service error")
	c.JSON(http.StatusInternalServerError, apierror.New("Error interno"))
}

// usuarioID extracts the authenticated user's UUID for audit entries.
// Nil when the claims are missing or malformed; the audit row still lands.
func usuarioID(c *gin.Context) *uuid.UUID {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return nil
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil
	}
	return &id
}

func strPtr(s string) *string { return &s }
