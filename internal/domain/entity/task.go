package entity

// Estados de una Task.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
)

// Task representa una tarea asignada a un empleado, opcionalmente ligada a un
// Deal. La referencia puede quedar colgante (el User ya no existe); el lado de
// lectura la trata como desconocida, nunca como error.
type Task struct {
	ID                 string
	Title              string
	AssignedEmployeeID string
	Deadline           string
	Status             string // pending, in-progress, completed
	Notes              string
	RelatedDealID      string // opcional, vacío si no aplica
}
