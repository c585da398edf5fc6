package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"

	"github.com/google/uuid"
)

// stubAdeudoCronRepo signals every scan; the query error stops the scan before
// it reaches Redis so the test needs no external services.
type stubAdeudoCronRepo struct{ escaneos chan struct{} }

func (r *stubAdeudoCronRepo) Create(_ context.Context, _ *model.Adeudo) error { return nil }
func (r *stubAdeudoCronRepo) FindByID(_ context.Context, _ uuid.UUID) (*model.Adeudo, error) {
	return nil, errors.New("no implementado")
}
func (r *stubAdeudoCronRepo) List(_ context.Context, _ dto.AdeudoFilter) ([]model.Adeudo, int64, error) {
	return nil, 0, nil
}
func (r *stubAdeudoCronRepo) ListTodos(_ context.Context, _ dto.AdeudoFilter) ([]model.Adeudo, error) {
	return nil, nil
}
func (r *stubAdeudoCronRepo) ListPorVencer(_ context.Context, _ time.Time) ([]model.Adeudo, error) {
	select {
	case r.escaneos <- struct{}{}:
	default:
	}
	return nil, errors.New("sin conexión")
}
func (r *stubAdeudoCronRepo) Update(_ context.Context, _ *model.Adeudo) error { return nil }
func (r *stubAdeudoCronRepo) Delete(_ context.Context, _ uuid.UUID) error     { return nil }

func TestAlertaCron_EscaneaAlArrancar(t *testing.T) {
	repo := &stubAdeudoCronRepo{escaneos: make(chan struct{}, 1)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// With an hour-long tick, only the startup scan can fire inside the test.
	StartAlertaCron(ctx, AlertaCronConfig{
		AdeudoRepo:   repo,
		AlertaEmail:  "obras@vlock.mx",
		TickInterval: time.Hour,
	})

	select {
	case <-repo.escaneos:
	case <-time.After(2 * time.Second):
		t.Fatal("esperaba un escaneo inmediato al arrancar el cron")
	}
}
