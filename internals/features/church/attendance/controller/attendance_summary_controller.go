// internals/features/church/attendance/controller/attendance_summary_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/church/attendance/repository"
	"gerejaku_backend/internals/features/church/attendance/service"
	helper "gerejaku_backend/internals/helpers"
)

// AttendanceSummaryController — pintu masuk dashboard ke mesin rekonsiliasi.
// Now di-inject supaya default bulan deterministik saat diuji; mesinnya
// sendiri tidak pernah membaca jam dinding.
type AttendanceSummaryController struct {
	DB   *gorm.DB
	Repo *repository.AttendanceRepository
	Now  func() time.Time
}

func NewAttendanceSummaryController(db *gorm.DB) *AttendanceSummaryController {
	return &AttendanceSummaryController{
		DB:   db,
		Repo: repository.NewAttendanceRepository(db),
		Now:  time.Now,
	}
}

// 🔵 GET /api/a/attendance-summary?entity_type=&entity_id=&month=YYYY-MM
//
// Alur: roster di-resolve → tiga fetch independen (laporan bulan berjalan,
// laporan bulan lalu, window service) jalan konkuren → mesin murni menghitung
// timeline, konflik, klasifikasi, dan resume per member.
//
// Kegagalan satu fetch menggagalkan seluruh agregasi (fail-fast): diam-diam
// menghilangkan kontribusi satu entitas akan membuat konflik tampak lebih
// sedikit dari kenyataan.
func (ctrl *AttendanceSummaryController) GetMonthlySummary(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}
	entity, err := parseEntityQuery(c)
	if err != nil {
		return err
	}
	anchor, err := parseMonthQuery(c, ctrl.Now)
	if err != nil {
		return err
	}
	includeArchived := c.QueryBool("include_archived", false)

	ctx := c.UserContext()

	members, err := ctrl.Repo.FetchMembersByEntity(ctx, churchID, entity, includeArchived)
	if err != nil {
		log.Printf("[ERROR] Gagal mengambil roster %s/%s: %v", entity.Type, entity.ID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil roster member")
	}

	curStart, curEnd := service.MonthRange(anchor)
	prevStart, prevEnd := service.MonthRange(curStart.AddDate(0, -1, 0))

	if len(members) == 0 {
		// roster kosong adalah keadaan valid, bukan input error
		return helper.JsonOK(c, "Roster entitas kosong", fiber.Map{
			"month":     curStart.Format("2006-01"),
			"summaries": []service.MemberAttendanceSummary{},
			"conflicts": service.ConflictSet{},
			"warnings":  []service.IntegrityWarning{},
		})
	}

	relevant := service.ResolveRosterEntities(members, entity)

	var (
		currentReports  []service.Report
		previousReports []service.Report
		windows         []service.ServiceWindow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		currentReports, err = ctrl.Repo.FetchReports(gctx, churchID, relevant, curStart, curEnd)
		return err
	})
	g.Go(func() error {
		var err error
		previousReports, err = ctrl.Repo.FetchReports(gctx, churchID, relevant, prevStart, prevEnd)
		return err
	})
	g.Go(func() error {
		var err error
		windows, err = ctrl.Repo.FetchServiceWindows(gctx, churchID, relevant)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[ERROR] Fetch laporan/window gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kehadiran dari storage")
	}

	result, err := service.BuildMonthlySummaries(service.MonthlyInput{
		Requesting:      entity,
		Anchor:          anchor,
		Members:         members,
		CurrentReports:  currentReports,
		PreviousReports: previousReports,
		Windows:         windows,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if len(result.Warnings) > 0 {
		for _, w := range result.Warnings {
			log.Printf("[WARN] Integritas data: %s", w.String())
		}
	}

	return helper.JsonOK(c, "Berhasil menghitung resume kehadiran", fiber.Map{
		"month":     curStart.Format("2006-01"),
		"summaries": result.Summaries,
		"conflicts": result.Conflicts,
		"warnings":  result.Warnings,
	})
}

// parseMonthQuery membaca ?month=YYYY-MM; kosong = bulan berjalan menurut
// clock yang di-inject.
func parseMonthQuery(c *fiber.Ctx, now func() time.Time) (time.Time, error) {
	raw := c.Query("month")
	if raw == "" {
		return service.NormalizeDay(now()), nil
	}
	t, err := time.ParseInLocation("2006-01", raw, time.UTC)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "month harus berformat YYYY-MM")
	}
	return t, nil
}
