package dto

// ── Tareas ────────────────────────────────────────────────────────────────────

// CreateTaskRequest entrada para crear una tarea.
type CreateTaskRequest struct {
	Title              string `json:"title" validate:"required,min=1,max=200"`
	AssignedEmployeeID string `json:"assigned_employee_id" validate:"required"`
	Deadline           string `json:"deadline"`
	Status             string `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Notes              string `json:"notes"`
	RelatedDealID      string `json:"related_deal_id"`
}

// UpdateTaskRequest entrada parcial para actualizar una tarea.
type UpdateTaskRequest struct {
	Title              *string `json:"title" validate:"omitempty,min=1,max=200"`
	AssignedEmployeeID *string `json:"assigned_employee_id"`
	Deadline           *string `json:"deadline"`
	Status             *string `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Notes              *string `json:"notes"`
	RelatedDealID      *string `json:"related_deal_id"`
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	AssignedEmployeeID string `json:"assigned_employee_id"`
	Deadline           string `json:"deadline"`
	Status             string `json:"status"`
	Notes              string `json:"notes"`
	RelatedDealID      string `json:"related_deal_id,omitempty"`
}

// ── Llamadas ──────────────────────────────────────────────────────────────────

// CreateCallRequest entrada para registrar una llamada.
type CreateCallRequest struct {
	Title              string `json:"title" validate:"required,min=1,max=200"`
	RelatedLeadID      string `json:"related_lead_id"`
	RelatedDealID      string `json:"related_deal_id"`
	DateTime           string `json:"date_time"`
	Duration           int    `json:"duration" validate:"min=0"`
	CallType           string `json:"call_type" validate:"required,oneof=inbound outbound"`
	Notes              string `json:"notes"`
	Outcome            string `json:"outcome"`
	AssignedEmployeeID string `json:"assigned_employee_id" validate:"required"`
}

// UpdateCallRequest entrada parcial para actualizar una llamada.
type UpdateCallRequest struct {
	Title              *string `json:"title" validate:"omitempty,min=1,max=200"`
	RelatedLeadID      *string `json:"related_lead_id"`
	RelatedDealID      *string `json:"related_deal_id"`
	DateTime           *string `json:"date_time"`
	Duration           *int    `json:"duration" validate:"omitempty,min=0"`
	CallType           *string `json:"call_type" validate:"omitempty,oneof=inbound outbound"`
	Notes              *string `json:"notes"`
	Outcome            *string `json:"outcome"`
	AssignedEmployeeID *string `json:"assigned_employee_id"`
}

// CallResponse salida de una llamada.
type CallResponse struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	RelatedLeadID      string `json:"related_lead_id,omitempty"`
	RelatedDealID      string `json:"related_deal_id,omitempty"`
	DateTime           string `json:"date_time"`
	Duration           int    `json:"duration"`
	CallType           string `json:"call_type"`
	Notes              string `json:"notes"`
	Outcome            string `json:"outcome"`
	AssignedEmployeeID string `json:"assigned_employee_id"`
}

// ── Reuniones ─────────────────────────────────────────────────────────────────

// CreateMeetingRequest entrada para agendar una reunión.
type CreateMeetingRequest struct {
	Title         string   `json:"title" validate:"required,min=1,max=200"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Location      string   `json:"location"`
	Participants  []string `json:"participants"`
	Notes         string   `json:"notes"`
	Status        string   `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	RelatedDealID string   `json:"related_deal_id"`
}

// UpdateMeetingRequest entrada parcial para actualizar una reunión.
type UpdateMeetingRequest struct {
	Title         *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Date          *string   `json:"date"`
	Time          *string   `json:"time"`
	Location      *string   `json:"location"`
	Participants  *[]string `json:"participants"`
	Notes         *string   `json:"notes"`
	Status        *string   `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	RelatedDealID *string   `json:"related_deal_id"`
}

// MeetingResponse salida de una reunión.
type MeetingResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Location      string   `json:"location"`
	Participants  []string `json:"participants"`
	Notes         string   `json:"notes"`
	Status        string   `json:"status"`
	RelatedDealID string   `json:"related_deal_id,omitempty"`
}

// ActivityListResponse listados de actividades visibles para el usuario
// actual según su rol.
type ActivityListResponse struct {
	Tasks    []TaskResponse    `json:"tasks"`
	Calls    []CallResponse    `json:"calls"`
	Meetings []MeetingResponse `json:"meetings"`
}
