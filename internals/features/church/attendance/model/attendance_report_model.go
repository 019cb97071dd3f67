// internals/features/church/attendance/model/attendance_report_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceReportModel — satu event pengiriman kehadiran oleh satu entitas.
// Laporan dibuat sekali per submission; satu-satunya mutasi adalah alur "edit
// laporan" yang mengganti seluruh record anaknya.
type AttendanceReportModel struct {
	// PK
	AttendanceReportID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_report_id" json:"attendance_report_id"`

	// Tenant
	AttendanceReportChurchID uuid.UUID `gorm:"type:uuid;not null;column:attendance_report_church_id;index:idx_attendance_report_church" json:"attendance_report_church_id"`

	// Entitas pengirim (TRIBE | DEPARTMENT | HONOR_FAMILY + id pemiliknya)
	AttendanceReportEntityType string    `gorm:"type:varchar(16);not null;column:attendance_report_entity_type;index:idx_attendance_report_entity,priority:1" json:"attendance_report_entity_type"`
	AttendanceReportEntityID   uuid.UUID `gorm:"type:uuid;not null;column:attendance_report_entity_id;index:idx_attendance_report_entity,priority:2" json:"attendance_report_entity_id"`

	AttendanceReportSubmitterID uuid.UUID `gorm:"type:uuid;not null;column:attendance_report_submitter_id" json:"attendance_report_submitter_id"`
	AttendanceReportComment     *string   `gorm:"type:text;column:attendance_report_comment" json:"attendance_report_comment,omitempty"`

	// Timestamps
	AttendanceReportCreatedAt time.Time `gorm:"column:attendance_report_created_at;autoCreateTime" json:"attendance_report_created_at"`
	AttendanceReportUpdatedAt time.Time `gorm:"column:attendance_report_updated_at;autoUpdateTime" json:"attendance_report_updated_at"`

	// Relasi
	Records []AttendanceRecordModel `gorm:"foreignKey:AttendanceRecordReportID;references:AttendanceReportID" json:"records,omitempty"`
}

func (AttendanceReportModel) TableName() string {
	return "attendance_reports"
}
