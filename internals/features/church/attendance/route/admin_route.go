package route

import (
	"gerejaku_backend/internals/features/church/attendance/controller"
	"gerejaku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AttendanceAdminRoutes(api fiber.Router, db *gorm.DB) {
	// 🔹 Laporan kehadiran (submit / edit / hapus)
	reportCtrl := controller.NewAttendanceReportController(db)
	reports := api.Group("/attendance-reports")
	reports.Post("/", middlewares.ReportSubmitRateLimiter(), reportCtrl.CreateAttendanceReport)
	reports.Get("/by-entity", reportCtrl.GetReportsByEntity)
	reports.Put("/:id", reportCtrl.UpdateAttendanceReport)
	reports.Delete("/:id", reportCtrl.DeleteAttendanceReport)

	// 🔹 Resume bulanan (dashboard)
	summaryCtrl := controller.NewAttendanceSummaryController(db)
	api.Get("/attendance-summary", summaryCtrl.GetMonthlySummary)

	// 🔹 Konflik (triase + rekalkulasi flag)
	conflictCtrl := controller.NewAttendanceConflictController(db)
	conflicts := api.Group("/attendance-conflicts")
	conflicts.Get("/", conflictCtrl.GetConflicts)
	conflicts.Post("/recompute", conflictCtrl.RecomputeConflicts)

	// 🔹 Window service (ibadah kedua tribe/department)
	serviceCtrl := controller.NewChurchServiceController(db)
	services := api.Group("/church-services")
	services.Post("/", serviceCtrl.CreateChurchService)
	services.Get("/by-entity", serviceCtrl.GetChurchServicesByEntity)
	services.Delete("/:id", serviceCtrl.DeleteChurchService)
}
