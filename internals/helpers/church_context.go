// internals/helpers/church_context.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const LocChurchID = "church_id"

// GetChurchIDFromContext mengambil id gereja (tenant) dari request.
// Prioritas: locals yang sudah di-set middleware ChurchContext; fallback baca
// header X-Church-ID langsung. Autentikasi/otorisasi dilakukan di luar layanan
// ini — di sini hanya scoping tenant.
func GetChurchIDFromContext(c *fiber.Ctx) (uuid.UUID, error) {
	if v := c.Locals(LocChurchID); v != nil {
		if id, ok := v.(uuid.UUID); ok && id != uuid.Nil {
			return id, nil
		}
	}

	raw := strings.TrimSpace(c.Get("X-Church-ID"))
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Konteks gereja tidak ditemukan (header X-Church-ID kosong)")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Header X-Church-ID bukan UUID yang valid")
	}
	c.Locals(LocChurchID, id)
	return id, nil
}
