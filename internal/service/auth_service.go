package service

import (
	"context"
	"errors"
	"time"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/config"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/middleware"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")
	ErrUsuarioInactivo       = errors.New("el usuario está desactivado")
	ErrUsernameOcupado       = errors.New("el username ya está registrado")
	ErrTokenInvalido         = errors.New("token inválido o expirado")
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	DesactivarUsuario(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		return nil, err
	}
	if !usuario.Activo {
		return nil, ErrUsuarioInactivo
	}
	if bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrCredencialesInvalidas
	}
	return s.emitirTokens(usuario)
}

// Refresh validates the long-lived token and issues a fresh pair, re-reading
// the user so a deactivation cuts the session at the next refresh.
func (s *authService) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error) {
	claims := &middleware.JWTClaims{}
	token, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrTokenInvalido
	}
	usuario, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrTokenInvalido
	}
	if !usuario.Activo {
		return nil, ErrUsuarioInactivo
	}
	return s.emitirTokens(usuario)
}

func (s *authService) emitirTokens(usuario *model.Usuario) (*dto.LoginResponse, error) {
	ahora := time.Now()
	exp := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	refreshExp := time.Duration(s.cfg.JWTRefreshHours) * time.Hour

	access, err := s.firmar(usuario, ahora, exp)
	if err != nil {
		return nil, err
	}
	refresh, err := s.firmar(usuario, ahora, refreshExp)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int(exp.Seconds()),
		User:         *usuarioToResponse(usuario),
	}, nil
}

func (s *authService) firmar(usuario *model.Usuario, ahora time.Time, vigencia time.Duration) (string, error) {
	claims := middleware.JWTClaims{
		UserID:   usuario.ID.String(),
		Username: usuario.Username,
		Rol:      usuario.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(ahora),
			ExpiresAt: jwt.NewNumericDate(ahora.Add(vigencia)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameOcupado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := &model.Usuario{
		Username:     req.Username,
		Nombre:       req.Nombre,
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          req.Rol,
		Activo:       true,
	}
	if err := s.repo.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return usuarioToResponse(usuario), nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != "" {
		usuario.Nombre = req.Nombre
	}
	if req.Email != nil {
		usuario.Email = req.Email
	}
	if req.Rol != "" {
		usuario.Rol = req.Rol
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, usuario); err != nil {
		return nil, err
	}
	return usuarioToResponse(usuario), nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, *usuarioToResponse(&usuarios[i]))
	}
	return out, nil
}

func (s *authService) DesactivarUsuario(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Nombre:   u.Nombre,
		Email:    u.Email,
		Rol:      u.Rol,
		Activo:   u.Activo,
	}
}
