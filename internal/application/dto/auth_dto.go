package dto

// LoginRequest entrada de login por email. No hay contraseña: la
// autenticación real queda fuera del alcance y la sesión es solo una
// identidad activa (flujo de demostración del producto).
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginResponse token de sesión más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
