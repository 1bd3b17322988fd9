package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// SessionRepository guarda la identidad de sesión activa. Acepta cualquier
// User sin validar credenciales: la autenticación real es un colaborador
// externo y el núcleo solo necesita el "usuario actual".
type SessionRepository interface {
	SetCurrentUser(u *entity.User)
	CurrentUser() *entity.User
}
