package service

import (
	"context"
	"testing"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/config"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
	porUser  map[string]uuid.UUID
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{
		usuarios: make(map[uuid.UUID]*model.Usuario),
		porUser:  make(map[string]uuid.UUID),
	}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	copia := *u
	r.usuarios[u.ID] = &copia
	r.porUser[u.Username] = u.ID
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *u
	return &copia, nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	id, ok := r.porUser[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(context.Background(), id)
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListAll(_ context.Context) ([]model.Usuario, error) {
	return r.List(context.Background())
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	copia := *u
	r.usuarios[u.ID] = &copia
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Activo = false
	}
	return nil
}

func (r *stubUsuarioRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Activo = true
	}
	return nil
}

func buildAuthSvc() (AuthService, *stubUsuarioRepo) {
	repo := newStubUsuarioRepo()
	cfg := &config.Config{
		JWTSecret:          "secreto-de-prueba",
		JWTExpirationHours: 8,
		JWTRefreshHours:    168,
	}
	return NewAuthService(repo, cfg), repo
}

func seedUsuario(repo *stubUsuarioRepo, username, password, rol string, activo bool) *model.Usuario {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &model.Usuario{
		ID:           uuid.New(),
		Username:     username,
		Nombre:       "Usuario de prueba",
		PasswordHash: string(hash),
		Rol:          rol,
		Activo:       activo,
	}
	repo.Create(context.Background(), u)
	return u
}

func TestLogin(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUsuario(repo, "ana", "clave123", "supervisor", true)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "clave123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "supervisor", resp.User.Rol)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUsuario(repo, "ana", "clave123", "lector", true)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "otra"})
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestLogin_UsuarioDesconocido(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUsuario(repo, "baja", "clave123", "lector", false)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "baja", Password: "clave123"})
	assert.ErrorIs(t, err, ErrUsuarioInactivo)
}

func TestRefresh(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUsuario(repo, "ana", "clave123", "administrador", true)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "clave123"})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "ana", resp.User.Username)
}

func TestRefresh_CortaSesionDesactivada(t *testing.T) {
	svc, repo := buildAuthSvc()
	u := seedUsuario(repo, "ana", "clave123", "lector", true)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "clave123"})
	require.NoError(t, err)

	// Deactivation after login invalidates the next refresh.
	require.NoError(t, repo.SoftDelete(context.Background(), u.ID))
	_, err = svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, ErrUsuarioInactivo)
}

func TestRefresh_TokenBasura(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: "no-es-un-jwt"})
	assert.ErrorIs(t, err, ErrTokenInvalido)
}

func TestCrearUsuario_UsernameOcupado(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUsuario(repo, "ana", "clave123", "lector", true)

	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "ana",
		Nombre:   "Otra Ana",
		Password: "clave456",
		Rol:      "lector",
	})
	assert.ErrorIs(t, err, ErrUsernameOcupado)
}

func TestCrearUsuario_NoExponePassword(t *testing.T) {
	svc, repo := buildAuthSvc()

	resp, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "nuevo",
		Nombre:   "Nuevo Usuario",
		Password: "clave123",
		Rol:      "supervisor",
	})
	require.NoError(t, err)
	assert.True(t, resp.Activo)

	// Stored hash must verify but never equal the plaintext.
	almacenado := repo.usuarios[uuid.MustParse(resp.ID)]
	assert.NotEqual(t, "clave123", almacenado.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(almacenado.PasswordHash), []byte("clave123")))
}
