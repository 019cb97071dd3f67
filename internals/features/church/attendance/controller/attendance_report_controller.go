// internals/features/church/attendance/controller/attendance_report_controller.go
package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	"gerejaku_backend/internals/features/church/attendance/dto"
	"gerejaku_backend/internals/features/church/attendance/model"
	"gerejaku_backend/internals/features/church/attendance/repository"
	"gerejaku_backend/internals/features/church/attendance/service"
	helper "gerejaku_backend/internals/helpers"
)

type AttendanceReportController struct {
	DB   *gorm.DB
	Repo *repository.AttendanceRepository
}

func NewAttendanceReportController(db *gorm.DB) *AttendanceReportController {
	return &AttendanceReportController{DB: db, Repo: repository.NewAttendanceRepository(db)}
}

// 🟢 POST /api/a/attendance-reports
func (ctrl *AttendanceReportController) CreateAttendanceReport(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateAttendanceReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	newReport, err := req.ToModel(churchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Create(newReport).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan laporan kehadiran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan laporan kehadiran")
	}

	// Laporan baru bisa menyentuh tanggal/member yang sudah pernah ditandai
	// entitas lain → flag konflik dihitung ulang untuk triple yang tersentuh.
	if err := ctrl.recomputeConflictFlags(c, churchID, newReport); err != nil {
		log.Printf("[ERROR] Gagal rekalkulasi flag konflik: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Laporan tersimpan, tetapi rekalkulasi konflik gagal")
	}

	return helper.JsonCreated(c, "Laporan kehadiran berhasil disimpan", dto.ToAttendanceReportResponse(newReport))
}

// 🟡 PUT /api/a/attendance-reports/:id
// Alur edit: seluruh record anak diganti dengan set baru, bukan patch per record.
func (ctrl *AttendanceReportController) UpdateAttendanceReport(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID laporan tidak valid")
	}

	var req dto.UpdateAttendanceReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.AttendanceReportModel
	if err := ctrl.DB.
		Where("attendance_report_id = ? AND attendance_report_church_id = ?", reportID, churchID).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
	}

	newRecords, err := dto.ToRecordModels(req.Records)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	for i := range newRecords {
		newRecords[i].AttendanceRecordReportID = existing.AttendanceReportID
	}

	// ===== TRANSACTION START =====
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("attendance_record_report_id = ?", existing.AttendanceReportID).
			Delete(&model.AttendanceRecordModel{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&newRecords).Error; err != nil {
			return err
		}
		return tx.Model(&existing).
			Update("attendance_report_comment", req.AttendanceReportComment).Error
	}); err != nil {
		log.Printf("[ERROR] Gagal memperbarui laporan %s: %v", reportID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui laporan kehadiran")
	}
	// ===== TRANSACTION END =====

	existing.Records = newRecords
	if err := ctrl.recomputeConflictFlags(c, churchID, &existing); err != nil {
		log.Printf("[ERROR] Gagal rekalkulasi flag konflik: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Laporan tersimpan, tetapi rekalkulasi konflik gagal")
	}

	return helper.JsonUpdated(c, "Laporan kehadiran berhasil diperbarui", dto.ToAttendanceReportResponse(&existing))
}

// 🔵 GET /api/a/attendance-reports/by-entity?entity_type=&entity_id=
func (ctrl *AttendanceReportController) GetReportsByEntity(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}
	entity, err := parseEntityQuery(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	base := ctrl.DB.Model(&model.AttendanceReportModel{}).
		Where("attendance_report_church_id = ?", churchID).
		Where("attendance_report_entity_type = ? AND attendance_report_entity_id = ?", entity.Type, entity.ID)
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung laporan")
	}

	var rows []model.AttendanceReportModel
	if err := base.
		Preload("Records").
		Order("attendance_report_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil laporan entitas %s/%s: %v", entity.Type, entity.ID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan kehadiran")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Berhasil mengambil laporan kehadiran", dto.ToAttendanceReportResponseList(rows), pagination)
}

// 🔴 DELETE /api/a/attendance-reports/:id
func (ctrl *AttendanceReportController) DeleteAttendanceReport(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID laporan tidak valid")
	}

	var existing model.AttendanceReportModel
	if err := ctrl.DB.Preload("Records").
		Where("attendance_report_id = ? AND attendance_report_church_id = ?", reportID, churchID).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("attendance_record_report_id = ?", existing.AttendanceReportID).
			Delete(&model.AttendanceRecordModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&existing).Error
	}); err != nil {
		log.Printf("[ERROR] Gagal menghapus laporan %s: %v", reportID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus laporan kehadiran")
	}

	// Record yang hilang bisa menghapus sumber konflik → hitung ulang juga.
	if err := ctrl.recomputeConflictFlags(c, churchID, &existing); err != nil {
		log.Printf("[ERROR] Gagal rekalkulasi flag konflik: %v", err)
	}

	return helper.JsonDeleted(c, "Laporan kehadiran berhasil dihapus", fiber.Map{"attendance_report_id": reportID})
}

// recomputeConflictFlags menghitung ulang anotasi has_conflict untuk seluruh
// (member, tanggal) yang disentuh laporan, lintas semua home entity member.
func (ctrl *AttendanceReportController) recomputeConflictFlags(c *fiber.Ctx, churchID uuid.UUID, report *model.AttendanceReportModel) error {
	if len(report.Records) == 0 {
		return nil
	}
	ctx := c.UserContext()

	seen := make(map[uuid.UUID]struct{})
	var memberIDs []uuid.UUID
	var from, to time.Time
	for _, rec := range report.Records {
		if _, ok := seen[rec.AttendanceRecordMemberID]; !ok {
			seen[rec.AttendanceRecordMemberID] = struct{}{}
			memberIDs = append(memberIDs, rec.AttendanceRecordMemberID)
		}
		d := service.NormalizeDay(time.Time(rec.AttendanceRecordDate))
		if from.IsZero() || d.Before(from) {
			from = d
		}
		if to.IsZero() || d.After(to) {
			to = d
		}
	}

	members, err := ctrl.Repo.FetchMembersByIDs(ctx, churchID, memberIDs)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return nil
	}
	entities := service.ResolveRosterAllEntities(members)
	reports, err := ctrl.Repo.FetchReports(ctx, churchID, entities, from, to)
	if err != nil {
		return err
	}

	tl, _, err := service.AggregateAcrossEntities(reports, members, from, to)
	if err != nil {
		return err
	}
	conflicts := service.DetectConflicts(tl)

	return ctrl.Repo.SyncConflictFlags(ctx, memberIDs, from, to, conflicts.RecordIDs())
}

// parseEntityQuery membaca pasangan ?entity_type=&entity_id= dari query.
func parseEntityQuery(c *fiber.Ctx) (service.EntityRef, error) {
	entityType := c.Query("entity_type")
	if !constants.IsValidEntityType(entityType) {
		return service.EntityRef{}, fiber.NewError(fiber.StatusBadRequest, "entity_type harus TRIBE, DEPARTMENT, atau HONOR_FAMILY")
	}
	entityID, err := uuid.Parse(c.Query("entity_id"))
	if err != nil {
		return service.EntityRef{}, fiber.NewError(fiber.StatusBadRequest, "entity_id bukan UUID yang valid")
	}
	return service.EntityRef{Type: entityType, ID: entityID}, nil
}
