// Package auth implementa la sesión del sistema: login por email, sin
// contraseña. Es el flujo de demostración del producto original: cualquier
// email registrado inicia sesión. La autenticación real (credenciales,
// SSO...) es un colaborador externo; el núcleo solo mantiene la identidad
// activa y nada asume que fue validada.
package auth

import (
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de sesión: login, identidad actual y logout.
type AuthUseCase struct {
	userRepo repository.UserRepository
	session  repository.SessionRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(userRepo repository.UserRepository, session repository.SessionRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, session: session, jwtCfg: jwtCfg}
}

// Login busca el usuario por email, lo fija como identidad activa y genera el
// JWT de sesión. Devuelve ErrUserNotFound si el email no está registrado.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	uc.session.SetCurrentUser(user)

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

// CurrentUser devuelve la identidad de sesión activa o (nil, nil) si nadie
// ha iniciado sesión.
func (uc *AuthUseCase) CurrentUser() (*entity.User, error) {
	return uc.session.CurrentUser(), nil
}

// Logout limpia la identidad activa.
func (uc *AuthUseCase) Logout() {
	uc.session.SetCurrentUser(nil)
}
