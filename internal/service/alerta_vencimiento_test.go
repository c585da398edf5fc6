package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fecha(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNivelUrgencia(t *testing.T) {
	hoy := fecha("2026-03-10") // Tuesday

	casos := []struct {
		nombre string
		venc   string
		estado string
		want   string
	}{
		{"vencido ayer", "2026-03-09", "pendiente", UrgenciaVencido},
		{"vence hoy", "2026-03-10", "pendiente", UrgenciaCritico},
		{"vence en 1 dia", "2026-03-11", "pendiente", UrgenciaAlto},
		{"vence en 2 dias", "2026-03-12", "parcial", UrgenciaAlto},
		{"vence en 3 dias", "2026-03-13", "pendiente", UrgenciaMedio},
		{"vence en 5 dias", "2026-03-15", "pendiente", UrgenciaMedio},
		{"vence en 6 dias", "2026-03-16", "pendiente", UrgenciaBajo},
		{"vence en 7 dias", "2026-03-17", "pendiente", UrgenciaBajo},
		{"vence en 8 dias", "2026-03-18", "pendiente", ""},
		{"pagado nunca alerta", "2026-03-09", "pagado", ""},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			venc := fecha(c.venc)
			assert.Equal(t, c.want, NivelUrgencia(&venc, c.estado, hoy))
		})
	}
}

func TestNivelUrgencia_SinFecha(t *testing.T) {
	assert.Equal(t, "", NivelUrgencia(nil, "pendiente", fecha("2026-03-10")))
}

func TestDiasRestantes_IgnoraHora(t *testing.T) {
	venc := time.Date(2026, 3, 12, 23, 59, 0, 0, time.UTC)
	hoy := time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 2, DiasRestantes(venc, hoy))
}

func TestFechaInicioAlerta(t *testing.T) {
	casos := []struct {
		nombre string
		venc   string // due date
		want   string // expected window opening
	}{
		// Midweek: plain 3-day lead.
		{"vence jueves", "2026-03-12", "2026-03-09"}, // Monday
		{"vence viernes", "2026-03-13", "2026-03-10"}, // Tuesday
		// Start would land on a weekend: slides back to Friday.
		{"vence martes", "2026-03-17", "2026-03-13"},    // Sat 14 slides to Fri 13
		{"vence miercoles", "2026-03-18", "2026-03-13"}, // Sun 15 slides to Fri 13
		// Weekend and Monday due dates open on the preceding Wednesday.
		{"vence sabado", "2026-03-14", "2026-03-11"},
		{"vence domingo", "2026-03-15", "2026-03-11"},
		{"vence lunes", "2026-03-16", "2026-03-11"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			inicio := FechaInicioAlerta(fecha(c.venc))
			assert.Equal(t, c.want, inicio.Format("2006-01-02"))
		})
	}
}

func TestFechaInicioAlerta_NuncaEnFinDeSemana(t *testing.T) {
	// Full-year sweep: the window never opens on a Saturday or Sunday and
	// always gives at least 3 days of lead.
	for d := 0; d < 366; d++ {
		venc := fecha("2026-01-01").AddDate(0, 0, d)
		inicio := FechaInicioAlerta(venc)
		assert.NotEqual(t, time.Saturday, inicio.Weekday(), "venc %s", venc.Format("2006-01-02"))
		assert.NotEqual(t, time.Sunday, inicio.Weekday(), "venc %s", venc.Format("2006-01-02"))
		assert.GreaterOrEqual(t, DiasRestantes(venc, inicio), 3, "venc %s", venc.Format("2006-01-02"))
	}
}

func TestDebeAlertarHoy(t *testing.T) {
	venc := fecha("2026-03-16") // Monday, window opens Wednesday 11

	assert.False(t, DebeAlertarHoy(&venc, "pendiente", fecha("2026-03-10")))
	assert.True(t, DebeAlertarHoy(&venc, "pendiente", fecha("2026-03-11")))
	assert.True(t, DebeAlertarHoy(&venc, "parcial", fecha("2026-03-16"))) // due date itself
	assert.False(t, DebeAlertarHoy(&venc, "pendiente", fecha("2026-03-17")))
	assert.False(t, DebeAlertarHoy(&venc, "pagado", fecha("2026-03-12")))
	assert.False(t, DebeAlertarHoy(nil, "pendiente", fecha("2026-03-12")))
}

func TestCalcularAlerta(t *testing.T) {
	hoy := fecha("2026-03-10")

	venc := fecha("2026-03-08")
	alerta := CalcularAlerta(&venc, "pendiente", hoy)
	require.NotNil(t, alerta)
	assert.Equal(t, -2, alerta.DiasRestantes)
	assert.Equal(t, UrgenciaVencido, alerta.NivelUrgencia)
	assert.Equal(t, "Vencido hace 2 día(s)", alerta.Mensaje)

	venc = fecha("2026-03-10")
	alerta = CalcularAlerta(&venc, "parcial", hoy)
	require.NotNil(t, alerta)
	assert.Equal(t, "Vence hoy", alerta.Mensaje)

	venc = fecha("2026-03-12")
	alerta = CalcularAlerta(&venc, "pendiente", hoy)
	require.NotNil(t, alerta)
	assert.Equal(t, "Vence en 2 día(s)", alerta.Mensaje)

	assert.Nil(t, CalcularAlerta(&venc, "pagado", hoy))
	assert.Nil(t, CalcularAlerta(nil, "pendiente", hoy))
}
