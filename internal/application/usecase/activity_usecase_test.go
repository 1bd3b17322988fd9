package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/memory"
)

func newActivityUC(t *testing.T) *usecase.ActivityUseCase {
	t.Helper()
	store := memory.NewStore()
	store.Seed()
	return usecase.NewActivityUseCase(
		memory.NewTaskRepository(store),
		memory.NewCallRepository(store),
		memory.NewMeetingRepository(store),
	)
}

func TestCreateTask_StatusPorDefectoEsPending(t *testing.T) {
	uc := newActivityUC(t)

	out, err := uc.CreateTask(dto.CreateTaskRequest{
		Title:              "Llamar al cliente",
		AssignedEmployeeID: "3",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.TaskStatusPending, out.Status)
}

func TestUpdateTask_IDInexistente_DevuelveNil(t *testing.T) {
	uc := newActivityUC(t)

	title := "Fantasma"
	out, err := uc.UpdateTask("no-existe", dto.UpdateTaskRequest{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestUpdateMeeting_ReemplazaParticipantesCompletos(t *testing.T) {
	uc := newActivityUC(t)

	participants := []string{"2", "3", "5"}
	out, err := uc.UpdateMeeting("1", dto.UpdateMeetingRequest{Participants: &participants})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, []string{"2", "3", "5"}, out.Participants,
		"la lista de participantes se reemplaza entera, no se fusiona")
}

// ──────────────────────────────────────────────────────────────────────────────
// Visibilidad por rol
// ──────────────────────────────────────────────────────────────────────────────

// Seed: task 1 y call 1 asignadas al empleado "3"; task 2 al empleado "5";
// meeting 1 con participantes ["2","3"].

func TestListVisible_AdminVeTodo(t *testing.T) {
	uc := newActivityUC(t)

	out, err := uc.ListVisible("1", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, out.Tasks, 2)
	assert.Len(t, out.Calls, 1)
	assert.Len(t, out.Meetings, 1)
}

func TestListVisible_ManagerVeTodo(t *testing.T) {
	uc := newActivityUC(t)

	// El manager "4" no participa en la reunión del seed y aun así la ve:
	// la restricción aplica únicamente al rol employee.
	out, err := uc.ListVisible("4", entity.RoleManager)
	require.NoError(t, err)
	assert.Len(t, out.Tasks, 2)
	assert.Len(t, out.Meetings, 1)
}

func TestListVisible_EmployeeSoloVeLoPropio(t *testing.T) {
	uc := newActivityUC(t)

	out, err := uc.ListVisible("3", entity.RoleEmployee)
	require.NoError(t, err)

	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "3", out.Tasks[0].AssignedEmployeeID)
	require.Len(t, out.Calls, 1)
	assert.Equal(t, "3", out.Calls[0].AssignedEmployeeID)
	require.Len(t, out.Meetings, 1, "participa en la reunión del seed")
}

func TestListVisible_EmployeeSinActividades(t *testing.T) {
	uc := newActivityUC(t)

	// El empleado "5" solo tiene la task 2; no participa en reuniones ni
	// tiene llamadas.
	out, err := uc.ListVisible("5", entity.RoleEmployee)
	require.NoError(t, err)
	assert.Len(t, out.Tasks, 1)
	assert.Empty(t, out.Calls)
	assert.Empty(t, out.Meetings)
}
