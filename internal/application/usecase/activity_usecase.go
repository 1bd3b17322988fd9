package usecase

import (
	"github.com/google/uuid"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// ActivityUseCase casos de uso de tareas, llamadas y reuniones, incluida la
// visibilidad por rol: un employee solo ve sus propias tareas y llamadas y
// las reuniones donde participa; manager y admin ven todo. El filtro se
// aplica aquí, sobre los conjuntos crudos: el store nunca pre-filtra.
type ActivityUseCase struct {
	taskRepo    repository.TaskRepository
	callRepo    repository.CallRepository
	meetingRepo repository.MeetingRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(
	taskRepo repository.TaskRepository,
	callRepo repository.CallRepository,
	meetingRepo repository.MeetingRepository,
) *ActivityUseCase {
	return &ActivityUseCase{taskRepo: taskRepo, callRepo: callRepo, meetingRepo: meetingRepo}
}

// ── Tareas ────────────────────────────────────────────────────────────────────

// CreateTask registra una tarea. Sin status explícito arranca en "pending".
func (uc *ActivityUseCase) CreateTask(in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.TaskStatusPending
	}
	task := &entity.Task{
		ID:                 uuid.New().String(),
		Title:              in.Title,
		AssignedEmployeeID: in.AssignedEmployeeID,
		Deadline:           in.Deadline,
		Status:             status,
		Notes:              in.Notes,
		RelatedDealID:      in.RelatedDealID,
	}
	if err := uc.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// UpdateTask fusiona cambios parciales; (nil, nil) si el ID no existe.
func (uc *ActivityUseCase) UpdateTask(id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.taskRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.AssignedEmployeeID != nil {
		task.AssignedEmployeeID = *in.AssignedEmployeeID
	}
	if in.Deadline != nil {
		task.Deadline = *in.Deadline
	}
	if in.Status != nil {
		task.Status = *in.Status
	}
	if in.Notes != nil {
		task.Notes = *in.Notes
	}
	if in.RelatedDealID != nil {
		task.RelatedDealID = *in.RelatedDealID
	}
	if err := uc.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// ── Llamadas ──────────────────────────────────────────────────────────────────

// CreateCall registra una llamada.
func (uc *ActivityUseCase) CreateCall(in dto.CreateCallRequest) (*dto.CallResponse, error) {
	call := &entity.Call{
		ID:                 uuid.New().String(),
		Title:              in.Title,
		RelatedLeadID:      in.RelatedLeadID,
		RelatedDealID:      in.RelatedDealID,
		DateTime:           in.DateTime,
		Duration:           in.Duration,
		CallType:           in.CallType,
		Notes:              in.Notes,
		Outcome:            in.Outcome,
		AssignedEmployeeID: in.AssignedEmployeeID,
	}
	if err := uc.callRepo.Create(call); err != nil {
		return nil, err
	}
	return toCallResponse(call), nil
}

// UpdateCall fusiona cambios parciales; (nil, nil) si el ID no existe.
func (uc *ActivityUseCase) UpdateCall(id string, in dto.UpdateCallRequest) (*dto.CallResponse, error) {
	call, err := uc.callRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if call == nil {
		return nil, nil
	}
	if in.Title != nil {
		call.Title = *in.Title
	}
	if in.RelatedLeadID != nil {
		call.RelatedLeadID = *in.RelatedLeadID
	}
	if in.RelatedDealID != nil {
		call.RelatedDealID = *in.RelatedDealID
	}
	if in.DateTime != nil {
		call.DateTime = *in.DateTime
	}
	if in.Duration != nil {
		call.Duration = *in.Duration
	}
	if in.CallType != nil {
		call.CallType = *in.CallType
	}
	if in.Notes != nil {
		call.Notes = *in.Notes
	}
	if in.Outcome != nil {
		call.Outcome = *in.Outcome
	}
	if in.AssignedEmployeeID != nil {
		call.AssignedEmployeeID = *in.AssignedEmployeeID
	}
	if err := uc.callRepo.Update(call); err != nil {
		return nil, err
	}
	return toCallResponse(call), nil
}

// ── Reuniones ─────────────────────────────────────────────────────────────────

// CreateMeeting agenda una reunión. Sin status explícito arranca "scheduled".
func (uc *ActivityUseCase) CreateMeeting(in dto.CreateMeetingRequest) (*dto.MeetingResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.MeetingStatusScheduled
	}
	meeting := &entity.Meeting{
		ID:            uuid.New().String(),
		Title:         in.Title,
		Date:          in.Date,
		Time:          in.Time,
		Location:      in.Location,
		Participants:  append([]string(nil), in.Participants...),
		Notes:         in.Notes,
		Status:        status,
		RelatedDealID: in.RelatedDealID,
	}
	if err := uc.meetingRepo.Create(meeting); err != nil {
		return nil, err
	}
	return toMeetingResponse(meeting), nil
}

// UpdateMeeting fusiona cambios parciales; (nil, nil) si el ID no existe.
func (uc *ActivityUseCase) UpdateMeeting(id string, in dto.UpdateMeetingRequest) (*dto.MeetingResponse, error) {
	meeting, err := uc.meetingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, nil
	}
	if in.Title != nil {
		meeting.Title = *in.Title
	}
	if in.Date != nil {
		meeting.Date = *in.Date
	}
	if in.Time != nil {
		meeting.Time = *in.Time
	}
	if in.Location != nil {
		meeting.Location = *in.Location
	}
	if in.Participants != nil {
		meeting.Participants = append([]string(nil), (*in.Participants)...)
	}
	if in.Notes != nil {
		meeting.Notes = *in.Notes
	}
	if in.Status != nil {
		meeting.Status = *in.Status
	}
	if in.RelatedDealID != nil {
		meeting.RelatedDealID = *in.RelatedDealID
	}
	if err := uc.meetingRepo.Update(meeting); err != nil {
		return nil, err
	}
	return toMeetingResponse(meeting), nil
}

// ── Visibilidad ───────────────────────────────────────────────────────────────

// ListVisible devuelve las actividades visibles para el usuario dado según su
// rol. Las referencias colgantes (empleado inexistente) no fallan: la tarea
// simplemente no coincide con ningún usuario y se muestra igual en las vistas
// de manager/admin.
func (uc *ActivityUseCase) ListVisible(userID, role string) (*dto.ActivityListResponse, error) {
	tasks, err := uc.taskRepo.List()
	if err != nil {
		return nil, err
	}
	calls, err := uc.callRepo.List()
	if err != nil {
		return nil, err
	}
	meetings, err := uc.meetingRepo.List()
	if err != nil {
		return nil, err
	}

	out := &dto.ActivityListResponse{
		Tasks:    []dto.TaskResponse{},
		Calls:    []dto.CallResponse{},
		Meetings: []dto.MeetingResponse{},
	}
	restricted := role == entity.RoleEmployee
	for _, t := range tasks {
		if restricted && t.AssignedEmployeeID != userID {
			continue
		}
		out.Tasks = append(out.Tasks, *toTaskResponse(t))
	}
	for _, c := range calls {
		if restricted && c.AssignedEmployeeID != userID {
			continue
		}
		out.Calls = append(out.Calls, *toCallResponse(c))
	}
	for _, m := range meetings {
		if restricted && !m.HasParticipant(userID) {
			continue
		}
		out.Meetings = append(out.Meetings, *toMeetingResponse(m))
	}
	return out, nil
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	if t == nil {
		return nil
	}
	return &dto.TaskResponse{
		ID:                 t.ID,
		Title:              t.Title,
		AssignedEmployeeID: t.AssignedEmployeeID,
		Deadline:           t.Deadline,
		Status:             t.Status,
		Notes:              t.Notes,
		RelatedDealID:      t.RelatedDealID,
	}
}

func toCallResponse(c *entity.Call) *dto.CallResponse {
	if c == nil {
		return nil
	}
	return &dto.CallResponse{
		ID:                 c.ID,
		Title:              c.Title,
		RelatedLeadID:      c.RelatedLeadID,
		RelatedDealID:      c.RelatedDealID,
		DateTime:           c.DateTime,
		Duration:           c.Duration,
		CallType:           c.CallType,
		Notes:              c.Notes,
		Outcome:            c.Outcome,
		AssignedEmployeeID: c.AssignedEmployeeID,
	}
}

func toMeetingResponse(m *entity.Meeting) *dto.MeetingResponse {
	if m == nil {
		return nil
	}
	return &dto.MeetingResponse{
		ID:            m.ID,
		Title:         m.Title,
		Date:          m.Date,
		Time:          m.Time,
		Location:      m.Location,
		Participants:  append([]string(nil), m.Participants...),
		Notes:         m.Notes,
		Status:        m.Status,
		RelatedDealID: m.RelatedDealID,
	}
}
