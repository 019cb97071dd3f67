package route

import (
	"gerejaku_backend/internals/features/church/members/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func MemberAdminRoutes(api fiber.Router, db *gorm.DB) {
	memberCtrl := controller.NewMemberController(db)
	members := api.Group("/members")
	members.Post("/", memberCtrl.CreateMember)
	members.Get("/", memberCtrl.GetMembers)
	members.Put("/:id", memberCtrl.UpdateMember)
	members.Delete("/:id", memberCtrl.ArchiveMember)
	members.Post("/:id/restore", memberCtrl.RestoreMember)
}
