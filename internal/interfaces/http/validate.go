package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
)

// validate instancia compartida; los tags viven en los DTOs. El store no
// valida nada: los chequeos de campos requeridos son responsabilidad de esta
// capa, igual que en la UI original.
var validate = validator.New()

// parseBody decodifica el cuerpo JSON en out y aplica las reglas de
// validación del DTO. Si algo falla responde el error y devuelve false; el
// handler debe retornar de inmediato.
func parseBody(c *fiber.Ctx, out interface{}) (ok bool, err error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return true, nil
}
