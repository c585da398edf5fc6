package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/v1/prueba", nil)
	return c, w
}

// captureLog redirects the global zerolog logger into a buffer for the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestWriteServiceError_FolioConflicto(t *testing.T) {
	c, w := testContext(t)

	folio := "F-100"
	writeServiceError(c, &service.FolioDuplicadoError{
		Conflictos: []dto.ConflictoFolio{{ID: "abc", Folio: &folio, Nombre: "Cemento"}},
		Total:      5,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"total_conflictos":5`)
	assert.Contains(t, w.Body.String(), "F-100")
}

func TestWriteServiceError_NoEncontrado(t *testing.T) {
	c, w := testContext(t)

	writeServiceError(c, gorm.ErrRecordNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWriteServiceError_RFCDuplicado(t *testing.T) {
	c, w := testContext(t)

	writeServiceError(c, service.ErrProveedorRFCDuplicado)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "RFC")
}

func TestWriteServiceError_ErrorDesconocidoNoFiltraDetalle(t *testing.T) {
	c, w := testContext(t)
	buf := captureLog(t)

	writeServiceError(c, errors.New("pq: deadlock detected on relation suministros"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error interno")
	assert.NotContains(t, w.Body.String(), "deadlock")
	// The original error has to stay diagnosable server-side.
	assert.Contains(t, buf.String(), "deadlock detected")
}

func TestWriteAuthError_Sentinelas(t *testing.T) {
	for _, err := range []error{
		service.ErrCredencialesInvalidas,
		service.ErrUsuarioInactivo,
		service.ErrTokenInvalido,
	} {
		c, w := testContext(t)
		writeAuthError(c, err)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), err.Error())
	}
}

func TestWriteAuthError_ErrorDeRepositorio(t *testing.T) {
	c, w := testContext(t)
	buf := captureLog(t)

	writeAuthError(c, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error interno")
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
	assert.Contains(t, buf.String(), "connection refused")
}
