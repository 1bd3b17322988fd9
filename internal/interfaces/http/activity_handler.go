package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// ActivityHandler maneja tareas, llamadas y reuniones. El listado combinado
// se filtra por rol: employee solo ve lo propio, admin y manager ven todo.
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List godoc
// @Summary      Listar actividades visibles para el usuario actual
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ActivityListResponse
// @Router       /api/activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListVisible(GetUserID(c), GetRole(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ── Tareas ────────────────────────────────────────────────────────────────────

// CreateTask godoc
// @Summary      Crear tarea
// @Tags         activities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTaskRequest  true  "Datos de la tarea"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tasks [post]
func (h *ActivityHandler) CreateTask(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateTask(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateTask godoc
// @Summary      Actualizar tarea (parcial)
// @Tags         activities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la tarea"
// @Param        body  body  dto.UpdateTaskRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.TaskResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [put]
func (h *ActivityHandler) UpdateTask(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateTaskRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateTask(id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarea no encontrada"})
	}
	return c.JSON(out)
}

// ── Llamadas ──────────────────────────────────────────────────────────────────

// CreateCall godoc
// @Summary      Registrar llamada
// @Tags         activities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCallRequest  true  "Datos de la llamada"
// @Success      201   {object}  dto.CallResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calls [post]
func (h *ActivityHandler) CreateCall(c *fiber.Ctx) error {
	var in dto.CreateCallRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateCall(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateCall godoc
// @Summary      Actualizar llamada (parcial)
// @Tags         activities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la llamada"
// @Param        body  body  dto.UpdateCallRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.CallResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/calls/{id} [put]
func (h *ActivityHandler) UpdateCall(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateCallRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateCall(id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "llamada no encontrada"})
	}
	return c.JSON(out)
}

// ── Reuniones ─────────────────────────────────────────────────────────────────

// CreateMeeting godoc
// @Summary      Agendar reunión
// @Tags         activities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMeetingRequest  true  "Datos de la reunión"
// @Success      201   {object}  dto.MeetingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/meetings [post]
func (h *ActivityHandler) CreateMeeting(c *fiber.Ctx) error {
	var in dto.CreateMeetingRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateMeeting(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateMeeting godoc
// @Summary      Actualizar reunión (parcial)
// @Tags         activities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la reunión"
// @Param        body  body  dto.UpdateMeetingRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.MeetingResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/meetings/{id} [put]
func (h *ActivityHandler) UpdateMeeting(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateMeetingRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateMeeting(id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reunión no encontrada"})
	}
	return c.JSON(out)
}
