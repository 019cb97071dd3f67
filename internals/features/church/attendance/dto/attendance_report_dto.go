// internals/features/church/attendance/dto/attendance_report_dto.go
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"gerejaku_backend/internals/features/church/attendance/model"
)

const DateLayout = "2006-01-02"

// Request record anak; tiga flag kehadiran boleh nil (tidak ditandai).
type AttendanceRecordRequest struct {
	AttendanceRecordMemberID  uuid.UUID `json:"attendance_record_member_id" validate:"required"`
	AttendanceRecordDate      string    `json:"attendance_record_date" validate:"required,datetime=2006-01-02"`
	AttendanceRecordInChurch  *bool     `json:"attendance_record_in_church"`
	AttendanceRecordInService *bool     `json:"attendance_record_in_service"`
	AttendanceRecordInMeeting *bool     `json:"attendance_record_in_meeting"`
}

type CreateAttendanceReportRequest struct {
	AttendanceReportEntityType  string                    `json:"attendance_report_entity_type" validate:"required,oneof=TRIBE DEPARTMENT HONOR_FAMILY"`
	AttendanceReportEntityID    uuid.UUID                 `json:"attendance_report_entity_id" validate:"required"`
	AttendanceReportSubmitterID uuid.UUID                 `json:"attendance_report_submitter_id" validate:"required"`
	AttendanceReportComment     *string                   `json:"attendance_report_comment"`
	Records                     []AttendanceRecordRequest `json:"records" validate:"required,min=1,dive"`
}

// Alur edit: mengganti SELURUH set record anak laporan, bukan patch per record.
type UpdateAttendanceReportRequest struct {
	AttendanceReportComment *string                   `json:"attendance_report_comment"`
	Records                 []AttendanceRecordRequest `json:"records" validate:"required,min=1,dive"`
}

// Convert request → model (+ anak). has_conflict tidak pernah diisi dari
// request — itu anotasi turunan milik Conflict Detector.
func (r *CreateAttendanceReportRequest) ToModel(churchID uuid.UUID) (*model.AttendanceReportModel, error) {
	records, err := ToRecordModels(r.Records)
	if err != nil {
		return nil, err
	}
	return &model.AttendanceReportModel{
		AttendanceReportChurchID:    churchID,
		AttendanceReportEntityType:  r.AttendanceReportEntityType,
		AttendanceReportEntityID:    r.AttendanceReportEntityID,
		AttendanceReportSubmitterID: r.AttendanceReportSubmitterID,
		AttendanceReportComment:     r.AttendanceReportComment,
		Records:                     records,
	}, nil
}

func ToRecordModels(reqs []AttendanceRecordRequest) ([]model.AttendanceRecordModel, error) {
	out := make([]model.AttendanceRecordModel, 0, len(reqs))
	for _, rec := range reqs {
		d, err := time.ParseInLocation(DateLayout, rec.AttendanceRecordDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("tanggal record tidak valid: %s", rec.AttendanceRecordDate)
		}
		out = append(out, model.AttendanceRecordModel{
			AttendanceRecordMemberID:  rec.AttendanceRecordMemberID,
			AttendanceRecordDate:      datatypes.Date(d),
			AttendanceRecordInChurch:  rec.AttendanceRecordInChurch,
			AttendanceRecordInService: rec.AttendanceRecordInService,
			AttendanceRecordInMeeting: rec.AttendanceRecordInMeeting,
		})
	}
	return out, nil
}

/* ===================== RESPONSE ===================== */

type AttendanceRecordResponse struct {
	AttendanceRecordID          uuid.UUID `json:"attendance_record_id"`
	AttendanceRecordMemberID    uuid.UUID `json:"attendance_record_member_id"`
	AttendanceRecordDate        string    `json:"attendance_record_date"`
	AttendanceRecordInChurch    *bool     `json:"attendance_record_in_church"`
	AttendanceRecordInService   *bool     `json:"attendance_record_in_service"`
	AttendanceRecordInMeeting   *bool     `json:"attendance_record_in_meeting"`
	AttendanceRecordHasConflict bool      `json:"attendance_record_has_conflict"`
}

type AttendanceReportResponse struct {
	AttendanceReportID          uuid.UUID                  `json:"attendance_report_id"`
	AttendanceReportEntityType  string                     `json:"attendance_report_entity_type"`
	AttendanceReportEntityID    uuid.UUID                  `json:"attendance_report_entity_id"`
	AttendanceReportSubmitterID uuid.UUID                  `json:"attendance_report_submitter_id"`
	AttendanceReportComment     *string                    `json:"attendance_report_comment,omitempty"`
	AttendanceReportCreatedAt   string                     `json:"attendance_report_created_at"`
	Records                     []AttendanceRecordResponse `json:"records"`
}

func ToAttendanceReportResponse(m *model.AttendanceReportModel) *AttendanceReportResponse {
	resp := &AttendanceReportResponse{
		AttendanceReportID:          m.AttendanceReportID,
		AttendanceReportEntityType:  m.AttendanceReportEntityType,
		AttendanceReportEntityID:    m.AttendanceReportEntityID,
		AttendanceReportSubmitterID: m.AttendanceReportSubmitterID,
		AttendanceReportComment:     m.AttendanceReportComment,
		AttendanceReportCreatedAt:   m.AttendanceReportCreatedAt.Format("2006-01-02 15:04:05"),
		Records:                     make([]AttendanceRecordResponse, 0, len(m.Records)),
	}
	for _, rec := range m.Records {
		resp.Records = append(resp.Records, AttendanceRecordResponse{
			AttendanceRecordID:          rec.AttendanceRecordID,
			AttendanceRecordMemberID:    rec.AttendanceRecordMemberID,
			AttendanceRecordDate:        time.Time(rec.AttendanceRecordDate).Format(DateLayout),
			AttendanceRecordInChurch:    rec.AttendanceRecordInChurch,
			AttendanceRecordInService:   rec.AttendanceRecordInService,
			AttendanceRecordInMeeting:   rec.AttendanceRecordInMeeting,
			AttendanceRecordHasConflict: rec.AttendanceRecordHasConflict,
		})
	}
	return resp
}

func ToAttendanceReportResponseList(models []model.AttendanceReportModel) []AttendanceReportResponse {
	var result []AttendanceReportResponse
	for i := range models {
		result = append(result, *ToAttendanceReportResponse(&models[i]))
	}
	return result
}
