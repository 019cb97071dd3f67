// internals/features/church/attendance/controller/attendance_conflict_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/church/attendance/repository"
	"gerejaku_backend/internals/features/church/attendance/service"
	helper "gerejaku_backend/internals/helpers"
)

// AttendanceConflictController — daftar konflik untuk triase reviewer dan
// pemicu rekalkulasi flag tersimpan. Konflik tidak pernah di-resolve otomatis
// dan tidak pernah disembunyikan; memilih nilai final adalah alur manual.
type AttendanceConflictController struct {
	DB   *gorm.DB
	Repo *repository.AttendanceRepository
	Now  func() time.Time
}

func NewAttendanceConflictController(db *gorm.DB) *AttendanceConflictController {
	return &AttendanceConflictController{
		DB:   db,
		Repo: repository.NewAttendanceRepository(db),
		Now:  time.Now,
	}
}

// 🔵 GET /api/a/attendance-conflicts?entity_type=&entity_id=&month=YYYY-MM
func (ctrl *AttendanceConflictController) GetConflicts(c *fiber.Ctx) error {
	conflicts, _, _, err := ctrl.detect(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Berhasil mengambil daftar konflik", fiber.Map{
		"total":  conflicts.Total(),
		"groups": conflicts,
	})
}

// 🟡 POST /api/a/attendance-conflicts/recompute?entity_type=&entity_id=&month=YYYY-MM
// Deteksi ulang lalu persist anotasi has_conflict lewat repository.
func (ctrl *AttendanceConflictController) RecomputeConflicts(c *fiber.Ctx) error {
	conflicts, memberIDs, monthStart, err := ctrl.detect(c)
	if err != nil {
		return err
	}

	_, monthEnd := service.MonthRange(monthStart)
	if err := ctrl.Repo.SyncConflictFlags(c.UserContext(), memberIDs, monthStart, monthEnd, conflicts.RecordIDs()); err != nil {
		log.Printf("[ERROR] Gagal mempersist flag konflik: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan flag konflik")
	}

	return helper.JsonUpdated(c, "Flag konflik berhasil dihitung ulang", fiber.Map{
		"total":          conflicts.Total(),
		"flagged_record": len(conflicts.RecordIDs()),
	})
}

func (ctrl *AttendanceConflictController) detect(c *fiber.Ctx) (service.ConflictSet, []uuid.UUID, time.Time, error) {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return nil, nil, time.Time{}, err
	}
	entity, err := parseEntityQuery(c)
	if err != nil {
		return nil, nil, time.Time{}, err
	}
	anchor, err := parseMonthQuery(c, ctrl.Now)
	if err != nil {
		return nil, nil, time.Time{}, err
	}

	ctx := c.UserContext()
	monthStart, monthEnd := service.MonthRange(anchor)

	// Konflik lintas entitas butuh set relevansi penuh member, bukan hanya
	// konteks entitas peminta.
	members, err := ctrl.Repo.FetchMembersByEntity(ctx, churchID, entity, true)
	if err != nil {
		log.Printf("[ERROR] Gagal mengambil roster %s/%s: %v", entity.Type, entity.ID, err)
		return nil, nil, time.Time{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil roster member")
	}
	if len(members) == 0 {
		return service.ConflictSet{}, nil, monthStart, nil
	}
	entities := service.ResolveRosterAllEntities(members)

	reports, err := ctrl.Repo.FetchReports(ctx, churchID, entities, monthStart, monthEnd)
	if err != nil {
		log.Printf("[ERROR] Gagal mengambil laporan: %v", err)
		return nil, nil, time.Time{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil laporan kehadiran")
	}

	tl, _, err := service.AggregateAcrossEntities(reports, members, monthStart, monthEnd)
	if err != nil {
		return nil, nil, time.Time{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	memberIDs := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.ID)
	}
	return service.DetectConflicts(tl), memberIDs, monthStart, nil
}
