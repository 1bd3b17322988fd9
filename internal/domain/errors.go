package domain

import "errors"

// Errores de dominio (sin dependencias externas). Las operaciones del store
// toleran ausencias (no-op silencioso); estos errores los usa la capa de
// aplicación solo cuando necesita señalar algo al exterior.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)
