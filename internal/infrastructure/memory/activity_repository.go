package memory

import (
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var (
	_ repository.TaskRepository    = (*TaskRepo)(nil)
	_ repository.CallRepository    = (*CallRepo)(nil)
	_ repository.MeetingRepository = (*MeetingRepo)(nil)
)

// ── Tareas ────────────────────────────────────────────────────────────────────

// TaskRepo implementación en memoria del puerto TaskRepository.
type TaskRepo struct {
	s *Store
}

// NewTaskRepository construye el adaptador.
func NewTaskRepository(s *Store) *TaskRepo {
	return &TaskRepo{s: s}
}

func (r *TaskRepo) Create(task *entity.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.tasks = appended(r.s.tasks, cloneTask(task))
	return nil
}

func (r *TaskRepo) GetByID(id string) (*entity.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, t := range r.s.tasks {
		if t.ID == id {
			return cloneTask(t), nil
		}
	}
	return nil, nil
}

func (r *TaskRepo) Update(task *entity.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	next := make([]*entity.Task, len(r.s.tasks))
	for i, t := range r.s.tasks {
		if t.ID == task.ID {
			next[i] = cloneTask(task)
		} else {
			next[i] = t
		}
	}
	r.s.tasks = next
	return nil
}

func (r *TaskRepo) List() ([]*entity.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Task, 0, len(r.s.tasks))
	for _, t := range r.s.tasks {
		out = append(out, cloneTask(t))
	}
	return out, nil
}

// ── Llamadas ──────────────────────────────────────────────────────────────────

// CallRepo implementación en memoria del puerto CallRepository.
type CallRepo struct {
	s *Store
}

// NewCallRepository construye el adaptador.
func NewCallRepository(s *Store) *CallRepo {
	return &CallRepo{s: s}
}

func (r *CallRepo) Create(call *entity.Call) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.calls = appended(r.s.calls, cloneCall(call))
	return nil
}

func (r *CallRepo) GetByID(id string) (*entity.Call, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.calls {
		if c.ID == id {
			return cloneCall(c), nil
		}
	}
	return nil, nil
}

func (r *CallRepo) Update(call *entity.Call) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	next := make([]*entity.Call, len(r.s.calls))
	for i, c := range r.s.calls {
		if c.ID == call.ID {
			next[i] = cloneCall(call)
		} else {
			next[i] = c
		}
	}
	r.s.calls = next
	return nil
}

func (r *CallRepo) List() ([]*entity.Call, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Call, 0, len(r.s.calls))
	for _, c := range r.s.calls {
		out = append(out, cloneCall(c))
	}
	return out, nil
}

// ── Reuniones ─────────────────────────────────────────────────────────────────

// MeetingRepo implementación en memoria del puerto MeetingRepository.
type MeetingRepo struct {
	s *Store
}

// NewMeetingRepository construye el adaptador.
func NewMeetingRepository(s *Store) *MeetingRepo {
	return &MeetingRepo{s: s}
}

func (r *MeetingRepo) Create(meeting *entity.Meeting) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.meetings = appended(r.s.meetings, cloneMeeting(meeting))
	return nil
}

func (r *MeetingRepo) GetByID(id string) (*entity.Meeting, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.meetings {
		if m.ID == id {
			return cloneMeeting(m), nil
		}
	}
	return nil, nil
}

func (r *MeetingRepo) Update(meeting *entity.Meeting) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	next := make([]*entity.Meeting, len(r.s.meetings))
	for i, m := range r.s.meetings {
		if m.ID == meeting.ID {
			next[i] = cloneMeeting(meeting)
		} else {
			next[i] = m
		}
	}
	r.s.meetings = next
	return nil
}

func (r *MeetingRepo) List() ([]*entity.Meeting, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Meeting, 0, len(r.s.meetings))
	for _, m := range r.s.meetings {
		out = append(out, cloneMeeting(m))
	}
	return out, nil
}
