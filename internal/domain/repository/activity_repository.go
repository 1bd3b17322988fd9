package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// Puertos para las actividades (tareas, llamadas, reuniones). Los listados
// devuelven siempre el conjunto completo: la visibilidad por rol se filtra
// del lado del consumidor sobre los datos crudos.

// TaskRepository define el puerto de acceso a tareas.
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	Update(task *entity.Task) error
	List() ([]*entity.Task, error)
}

// CallRepository define el puerto de acceso a llamadas.
type CallRepository interface {
	Create(call *entity.Call) error
	GetByID(id string) (*entity.Call, error)
	Update(call *entity.Call) error
	List() ([]*entity.Call, error)
}

// MeetingRepository define el puerto de acceso a reuniones.
type MeetingRepository interface {
	Create(meeting *entity.Meeting) error
	GetByID(id string) (*entity.Meeting, error)
	Update(meeting *entity.Meeting) error
	List() ([]*entity.Meeting, error)
}
