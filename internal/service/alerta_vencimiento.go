package service

// alerta_vencimiento.go — due-date alert arithmetic for adeudos.
// Every function takes "hoy" explicitly so callers (and tests) control the
// clock; nothing here touches persistence.

import (
	"fmt"
	"time"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
)

// Urgency tiers, from most to least pressing.
const (
	UrgenciaVencido = "vencido"
	UrgenciaCritico = "critico"
	UrgenciaAlto    = "alto"
	UrgenciaMedio   = "medio"
	UrgenciaBajo    = "bajo"
)

const diasAnticipacion = 3

// truncarDia normalizes a timestamp to its calendar date at midnight UTC so
// day differences are exact multiples of 24h regardless of zone or DST.
func truncarDia(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DiasRestantes returns whole days from hoy to the due date; negative once
// past due, zero on the due date itself.
func DiasRestantes(fechaVencimiento, hoy time.Time) int {
	diff := truncarDia(fechaVencimiento).Sub(truncarDia(hoy))
	return int(diff.Hours() / 24)
}

// NivelUrgencia buckets how soon a debt is due. Returns "" (no alert) when
// the debt is paid, has no due date, or is more than 7 days out.
func NivelUrgencia(fechaVencimiento *time.Time, estado string, hoy time.Time) string {
	if estado == "pagado" || fechaVencimiento == nil {
		return ""
	}
	dias := DiasRestantes(*fechaVencimiento, hoy)
	switch {
	case dias < 0:
		return UrgenciaVencido
	case dias == 0:
		return UrgenciaCritico
	case dias <= 2:
		return UrgenciaAlto
	case dias <= 5:
		return UrgenciaMedio
	case dias <= 7:
		return UrgenciaBajo
	default:
		return ""
	}
}

// FechaInicioAlerta returns the date the alert window opens. The default lead
// is 3 days; due dates on Saturday, Sunday or Monday use leads of 3, 4 and 5
// so the window opens on the preceding Wednesday instead of over the weekend.
// Any other start that would land on a weekend slides back to Friday.
func FechaInicioAlerta(fechaVencimiento time.Time) time.Time {
	venc := truncarDia(fechaVencimiento)

	lead := diasAnticipacion
	switch venc.Weekday() {
	case time.Saturday:
		lead = 3
	case time.Sunday:
		lead = 4
	case time.Monday:
		lead = 5
	}

	inicio := venc.AddDate(0, 0, -lead)
	switch inicio.Weekday() {
	case time.Saturday:
		inicio = inicio.AddDate(0, 0, -1)
	case time.Sunday:
		inicio = inicio.AddDate(0, 0, -2)
	}
	return inicio
}

// DebeAlertarHoy reports whether hoy falls inside the upcoming-due alert
// window: on/after FechaInicioAlerta and on/before the due date. Overdue
// debts are excluded here — they are NivelUrgencia's concern, not this
// window's.
func DebeAlertarHoy(fechaVencimiento *time.Time, estado string, hoy time.Time) bool {
	if estado == "pagado" || fechaVencimiento == nil {
		return false
	}
	dia := truncarDia(hoy)
	venc := truncarDia(*fechaVencimiento)
	if dia.After(venc) {
		return false
	}
	return !dia.Before(FechaInicioAlerta(*fechaVencimiento))
}

// MensajeAlerta renders the human-readable alert text for a day count.
func MensajeAlerta(dias int) string {
	switch {
	case dias < 0:
		return fmt.Sprintf("Vencido hace %d día(s)", -dias)
	case dias == 0:
		return "Vence hoy"
	default:
		return fmt.Sprintf("Vence en %d día(s)", dias)
	}
}

// CalcularAlerta builds the alert object attached to debt list responses.
// Returns nil when no alert applies (paid, no due date, or beyond the 7-day
// horizon).
func CalcularAlerta(fechaVencimiento *time.Time, estado string, hoy time.Time) *dto.AlertaVencimiento {
	nivel := NivelUrgencia(fechaVencimiento, estado, hoy)
	if nivel == "" {
		return nil
	}
	dias := DiasRestantes(*fechaVencimiento, hoy)
	return &dto.AlertaVencimiento{
		DiasRestantes: dias,
		NivelUrgencia: nivel,
		Mensaje:       MensajeAlerta(dias),
	}
}
