// internals/features/church/attendance/repository/attendance_repository.go
package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	"gerejaku_backend/internals/features/church/attendance/model"
	"gerejaku_backend/internals/features/church/attendance/service"
	memberModel "gerejaku_backend/internals/features/church/members/model"
)

// AttendanceRepository — kolaborator persistence untuk mesin kehadiran.
// Mesin di package service tidak pernah menyentuh DB; semua fetch lewat sini
// dan hasilnya dioper sebagai data yang sudah resolve.
type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

// FetchReports menarik laporan kehadiran milik entitas-entitas relevan yang
// punya minimal satu record dalam [from, to]. Laporan yang SEMUA record-nya di
// luar window tersaring di level laporan (bukan fetch-lalu-buang); laporan
// yang overlap parsial tetap dimuat dengan record di-filter ke window.
func (r *AttendanceRepository) FetchReports(ctx context.Context, churchID uuid.UUID, entities []service.EntityRef, from, to time.Time) ([]service.Report, error) {
	if len(entities) == 0 {
		return nil, nil
	}

	fromD := datatypes.Date(service.NormalizeDay(from))
	toD := datatypes.Date(service.NormalizeDay(to))

	conds := make([]string, 0, len(entities))
	args := make([]interface{}, 0, len(entities)*2)
	for _, e := range entities {
		conds = append(conds, "(attendance_report_entity_type = ? AND attendance_report_entity_id = ?)")
		args = append(args, e.Type, e.ID)
	}

	var rows []model.AttendanceReportModel
	err := r.DB.WithContext(ctx).
		Where("attendance_report_church_id = ?", churchID).
		Where(strings.Join(conds, " OR "), args...).
		Where(`EXISTS (
			SELECT 1 FROM attendance_records ar
			WHERE ar.attendance_record_report_id = attendance_reports.attendance_report_id
			  AND ar.attendance_record_date BETWEEN ? AND ?)`, fromD, toD).
		Preload("Records", "attendance_record_date BETWEEN ? AND ?", fromD, toD).
		Order("attendance_report_created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]service.Report, 0, len(rows))
	for i := range rows {
		out = append(out, toReport(&rows[i]))
	}
	return out, nil
}

// FetchMembersByEntity mengambil roster satu entitas. Member terarsip
// (soft delete) dikecualikan dari agregasi aktif kecuali diminta eksplisit.
func (r *AttendanceRepository) FetchMembersByEntity(ctx context.Context, churchID uuid.UUID, entity service.EntityRef, includeArchived bool) ([]service.MemberInfo, error) {
	col, ok := memberEntityColumn(entity.Type)
	if !ok {
		return nil, service.ErrUnknownEntityType
	}

	q := r.DB.WithContext(ctx)
	if includeArchived {
		q = q.Unscoped()
	}

	var rows []memberModel.MemberModel
	err := q.
		Where("member_church_id = ?", churchID).
		Where(col+" = ?", entity.ID).
		Order("member_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]service.MemberInfo, 0, len(rows))
	for i := range rows {
		out = append(out, toMemberInfo(&rows[i]))
	}
	return out, nil
}

// FetchMembersByIDs mengambil member berdasarkan id, termasuk yang sudah
// diarsipkan — rekalkulasi konflik menyentuh record historis, dan pengarsipan
// tidak menghapus histori kehadiran.
func (r *AttendanceRepository) FetchMembersByIDs(ctx context.Context, churchID uuid.UUID, ids []uuid.UUID) ([]service.MemberInfo, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []memberModel.MemberModel
	err := r.DB.WithContext(ctx).Unscoped().
		Where("member_church_id = ?", churchID).
		Where("member_id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]service.MemberInfo, 0, len(rows))
	for i := range rows {
		out = append(out, toMemberInfo(&rows[i]))
	}
	return out, nil
}

// FetchServiceWindows mengambil window service milik entitas-entitas relevan.
func (r *AttendanceRepository) FetchServiceWindows(ctx context.Context, churchID uuid.UUID, entities []service.EntityRef) ([]service.ServiceWindow, error) {
	if len(entities) == 0 {
		return nil, nil
	}

	conds := make([]string, 0, len(entities))
	args := make([]interface{}, 0, len(entities)*2)
	for _, e := range entities {
		conds = append(conds, "(church_service_entity_type = ? AND church_service_entity_id = ?)")
		args = append(args, e.Type, e.ID)
	}

	var rows []model.ChurchServiceModel
	err := r.DB.WithContext(ctx).
		Where("church_service_church_id = ?", churchID).
		Where(strings.Join(conds, " OR "), args...).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]service.ServiceWindow, 0, len(rows))
	for _, w := range rows {
		out = append(out, service.ServiceWindow{
			Entity: service.EntityRef{Type: w.ChurchServiceEntityType, ID: w.ChurchServiceEntityID},
			From:   time.Time(w.ChurchServiceFrom),
			To:     time.Time(w.ChurchServiceTo),
		})
	}
	return out, nil
}

// SyncConflictFlags mempersist anotasi has_conflict hasil deteksi: flag lama
// di window dibersihkan dulu supaya konflik yang sudah tidak ada ikut hilang,
// lalu record yang terlibat konflik ditandai ulang. Dipicu caller setelah
// deteksi; detector sendiri tidak pernah menulis.
func (r *AttendanceRepository) SyncConflictFlags(ctx context.Context, memberIDs []uuid.UUID, from, to time.Time, conflictRecordIDs []uuid.UUID) error {
	if len(memberIDs) == 0 {
		return nil
	}
	fromD := datatypes.Date(service.NormalizeDay(from))
	toD := datatypes.Date(service.NormalizeDay(to))

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.AttendanceRecordModel{}).
			Where("attendance_record_member_id IN ?", memberIDs).
			Where("attendance_record_date BETWEEN ? AND ?", fromD, toD).
			Update("attendance_record_has_conflict", false).Error; err != nil {
			return err
		}
		if len(conflictRecordIDs) == 0 {
			return nil
		}
		return tx.Model(&model.AttendanceRecordModel{}).
			Where("attendance_record_id IN ?", conflictRecordIDs).
			Update("attendance_record_has_conflict", true).Error
	})
}

/* ===================== KONVERSI MODEL → DOMAIN ===================== */

func toReport(m *model.AttendanceReportModel) service.Report {
	rep := service.Report{
		ID:          m.AttendanceReportID,
		Entity:      service.EntityRef{Type: m.AttendanceReportEntityType, ID: m.AttendanceReportEntityID},
		SubmitterID: m.AttendanceReportSubmitterID,
		SubmittedAt: m.AttendanceReportCreatedAt,
		Comment:     m.AttendanceReportComment,
		Records:     make([]service.Record, 0, len(m.Records)),
	}
	for _, rec := range m.Records {
		rep.Records = append(rep.Records, service.Record{
			ID:       rec.AttendanceRecordID,
			MemberID: rec.AttendanceRecordMemberID,
			Date:     time.Time(rec.AttendanceRecordDate),
			Presence: map[service.Scope]*bool{
				service.ScopeChurch:  rec.AttendanceRecordInChurch,
				service.ScopeService: rec.AttendanceRecordInService,
				service.ScopeMeeting: rec.AttendanceRecordInMeeting,
			},
		})
	}
	return rep
}

func toMemberInfo(m *memberModel.MemberModel) service.MemberInfo {
	info := service.MemberInfo{
		ID:            m.MemberID,
		Name:          m.MemberName,
		Phone:         m.MemberPhone,
		TribeID:       m.MemberTribeID,
		DepartmentID:  m.MemberDepartmentID,
		HonorFamilyID: m.MemberHonorFamilyID,
		CreatedAt:     m.MemberCreatedAt,
	}
	if m.MemberDeletedAt.Valid {
		t := m.MemberDeletedAt.Time
		info.DeletedAt = &t
	}
	return info
}

func memberEntityColumn(entityType string) (string, bool) {
	switch entityType {
	case constants.EntityTribe:
		return "member_tribe_id", true
	case constants.EntityDepartment:
		return "member_department_id", true
	case constants.EntityHonorFamily:
		return "member_honor_family_id", true
	}
	return "", false
}
