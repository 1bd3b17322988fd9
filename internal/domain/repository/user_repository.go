package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// UserRepository define el puerto de acceso a usuarios (DIP).
// Las búsquedas que no encuentran nada devuelven (nil, nil), nunca error.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
}
