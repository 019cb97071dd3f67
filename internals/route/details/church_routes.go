package details

import (
	AttendanceRoutes "gerejaku_backend/internals/features/church/attendance/route"
	EntityRoutes "gerejaku_backend/internals/features/church/entities/route"
	MemberRoutes "gerejaku_backend/internals/features/church/members/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ChurchAdminRoutes(r fiber.Router, db *gorm.DB) {
	// Ini endpoint khusus admin gereja (per tenant)
	MemberRoutes.MemberAdminRoutes(r, db)
	EntityRoutes.EntityAdminRoutes(r, db)
	AttendanceRoutes.AttendanceAdminRoutes(r, db)
}
