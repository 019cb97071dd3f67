package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ChurchContext menaruh id gereja (tenant) dari header X-Church-ID ke locals.
// Verifikasi siapa yang boleh memakai tenant tersebut adalah urusan layer auth
// di luar layanan ini.
func ChurchContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get("X-Church-ID"))
		if raw == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Header X-Church-ID wajib diisi",
			})
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Header X-Church-ID bukan UUID yang valid",
			})
		}
		c.Locals("church_id", id)
		return c.Next()
	}
}
