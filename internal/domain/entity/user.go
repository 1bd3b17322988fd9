package entity

// Roles válidos para User. El rol es fijo después de la creación:
// ninguna operación del sistema lo modifica.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// User representa un usuario del sistema. No hay credenciales: la sesión se
// establece por email (ver application/auth) y el rol solo decide qué vistas
// y acciones ofrece la capa de presentación.
type User struct {
	ID        string
	Name      string
	Email     string // único por convención, no se valida unicidad
	Role      string // admin, manager, employee
	CreatedAt string // fecha calendario YYYY-MM-DD
}
