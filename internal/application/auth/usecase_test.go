package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/memory"
	pkgjwt "github.com/tu-usuario/crm-pro/pkg/jwt"
)

const testSecret = "auth-test-secret"

func newAuthUC(t *testing.T) (*auth.AuthUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.Seed()
	uc := auth.NewAuthUseCase(memory.NewUserRepository(store), store, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "crm-pro-test",
	})
	return uc, store
}

func TestLogin_EmailRegistrado_FijaSesionYGeneraToken(t *testing.T) {
	uc, store := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Email: "john@crm.com"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "2", out.User.ID)
	assert.Equal(t, "manager", out.User.Role)
	require.NotEmpty(t, out.Token)

	// El token lleva identidad y rol del usuario.
	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "2", userID)
	assert.Equal(t, "manager", role)

	// La sesión activa queda fijada en el store.
	current := store.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "2", current.ID)
}

func TestLogin_EmailNoRegistrado_RetornaError(t *testing.T) {
	uc, store := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Email: "nadie@crm.com"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, store.CurrentUser(), "un login fallido no fija sesión")
}

// Un segundo login reemplaza la identidad activa sin logout intermedio.
func TestLogin_Repetido_ReemplazaLaSesion(t *testing.T) {
	uc, store := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "admin@crm.com"})
	require.NoError(t, err)
	_, err = uc.Login(dto.LoginRequest{Email: "sarah@crm.com"})
	require.NoError(t, err)

	current := store.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "3", current.ID)
}

func TestLogout_LimpiaLaSesion(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "admin@crm.com"})
	require.NoError(t, err)

	user, err := uc.CurrentUser()
	require.NoError(t, err)
	require.NotNil(t, user)

	uc.Logout()

	user, err = uc.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, user)
}
