package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserUUID: user autenticado desde Locals; uuid.Nil si es invitado.
func GetUserUUID(c *fiber.Ctx) uuid.UUID {
	if raw := c.Locals("user_id"); raw != nil {
		if s, ok := raw.(string); ok {
			if parsed, err := uuid.Parse(s); err == nil {
				return parsed
			}
		}
	}
	return uuid.Nil
}

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}
