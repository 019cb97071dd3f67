package route

import (
	"gerejaku_backend/internals/features/church/entities/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EntityAdminRoutes(api fiber.Router, db *gorm.DB) {
	entityCtrl := controller.NewEntityController(db)

	tribes := api.Group("/tribes")
	tribes.Post("/", entityCtrl.CreateTribe)
	tribes.Get("/", entityCtrl.GetTribes)

	departments := api.Group("/departments")
	departments.Post("/", entityCtrl.CreateDepartment)
	departments.Get("/", entityCtrl.GetDepartments)

	honorFamilies := api.Group("/honor-families")
	honorFamilies.Post("/", entityCtrl.CreateHonorFamily)
	honorFamilies.Get("/", entityCtrl.GetHonorFamilies)
}
