package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalRequestID key del request id en c.Locals.
const LocalRequestID = "request_id"

// RequestID propaga o genera un X-Request-ID por petición para correlacionar
// los movimientos de stock con los logs del flujo de órdenes.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(fiber.HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalRequestID, rid)
		c.Set(fiber.HeaderXRequestID, rid)
		return c.Next()
	}
}

// GetRequestID devuelve el request id del contexto.
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(LocalRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
