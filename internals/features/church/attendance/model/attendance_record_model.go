// internals/features/church/attendance/model/attendance_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AttendanceRecordModel — fakta atomik: satu member, satu tanggal kalender.
// Tiga flag kehadiran nullable dan saling independen; NULL artinya tidak
// ditandai (unknown), beda makna dengan false (ditandai absen).
//
// has_conflict adalah anotasi turunan yang di-set Conflict Detector setelah
// deteksi — submitter tidak pernah mengisinya langsung.
type AttendanceRecordModel struct {
	// PK
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	// FKs
	AttendanceRecordReportID uuid.UUID `gorm:"type:uuid;not null;column:attendance_record_report_id;index:idx_attendance_record_report" json:"attendance_record_report_id"`
	AttendanceRecordMemberID uuid.UUID `gorm:"type:uuid;not null;column:attendance_record_member_id;index:idx_attendance_record_member" json:"attendance_record_member_id"`

	// Tanggal kalender (bukan timestamp); perbandingan selalu granularitas hari
	AttendanceRecordDate datatypes.Date `gorm:"type:date;not null;column:attendance_record_date;index:idx_attendance_record_date" json:"attendance_record_date"`

	// Flag kehadiran tri-state. in_service hanya bermakna saat ada window
	// service aktif; in_meeting hanya untuk laporan honor family.
	AttendanceRecordInChurch  *bool `gorm:"column:attendance_record_in_church" json:"attendance_record_in_church"`
	AttendanceRecordInService *bool `gorm:"column:attendance_record_in_service" json:"attendance_record_in_service"`
	AttendanceRecordInMeeting *bool `gorm:"column:attendance_record_in_meeting" json:"attendance_record_in_meeting"`

	// Anotasi turunan (Conflict Detector)
	AttendanceRecordHasConflict bool `gorm:"not null;default:false;column:attendance_record_has_conflict" json:"attendance_record_has_conflict"`

	// Timestamps
	AttendanceRecordCreatedAt time.Time `gorm:"column:attendance_record_created_at;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt time.Time `gorm:"column:attendance_record_updated_at;autoUpdateTime" json:"attendance_record_updated_at"`
}

func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}
