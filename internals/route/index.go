// file: internals/route/index.go
package routes

import (
	"log"

	routeDetails "gerejaku_backend/internals/route/details"
	middlewares "gerejaku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== ADMIN (per church) =====================
	// Autentikasi/otorisasi hidup di gateway terpisah; di sini hanya scoping
	// tenant lewat header X-Church-ID.
	log.Println("[INFO] Setting up ADMIN group (ChurchContext)...")
	admin := app.Group("/api/a", middlewares.ChurchContext())

	log.Println("[INFO] Setting up ChurchAdminRoutes...")
	routeDetails.ChurchAdminRoutes(admin, db)
}
