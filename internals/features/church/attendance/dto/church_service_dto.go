// internals/features/church/attendance/dto/church_service_dto.go
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"gerejaku_backend/internals/features/church/attendance/model"
)

// Window service hanya untuk tribe/department; honor family tidak punya
// ibadah kedua.
type CreateChurchServiceRequest struct {
	ChurchServiceEntityType string    `json:"church_service_entity_type" validate:"required,oneof=TRIBE DEPARTMENT"`
	ChurchServiceEntityID   uuid.UUID `json:"church_service_entity_id" validate:"required"`
	ChurchServiceFrom       string    `json:"church_service_from" validate:"required,datetime=2006-01-02"`
	ChurchServiceTo         string    `json:"church_service_to" validate:"required,datetime=2006-01-02"`
}

func (r *CreateChurchServiceRequest) ToModel(churchID uuid.UUID) (*model.ChurchServiceModel, error) {
	from, err := time.ParseInLocation(DateLayout, r.ChurchServiceFrom, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("tanggal mulai tidak valid: %s", r.ChurchServiceFrom)
	}
	to, err := time.ParseInLocation(DateLayout, r.ChurchServiceTo, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("tanggal akhir tidak valid: %s", r.ChurchServiceTo)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("rentang window tidak valid: from melebihi to")
	}
	return &model.ChurchServiceModel{
		ChurchServiceChurchID:   churchID,
		ChurchServiceEntityType: r.ChurchServiceEntityType,
		ChurchServiceEntityID:   r.ChurchServiceEntityID,
		ChurchServiceFrom:       datatypes.Date(from),
		ChurchServiceTo:         datatypes.Date(to),
	}, nil
}

type ChurchServiceResponse struct {
	ChurchServiceID         uuid.UUID `json:"church_service_id"`
	ChurchServiceEntityType string    `json:"church_service_entity_type"`
	ChurchServiceEntityID   uuid.UUID `json:"church_service_entity_id"`
	ChurchServiceFrom       string    `json:"church_service_from"`
	ChurchServiceTo         string    `json:"church_service_to"`
}

func ToChurchServiceResponse(m *model.ChurchServiceModel) *ChurchServiceResponse {
	return &ChurchServiceResponse{
		ChurchServiceID:         m.ChurchServiceID,
		ChurchServiceEntityType: m.ChurchServiceEntityType,
		ChurchServiceEntityID:   m.ChurchServiceEntityID,
		ChurchServiceFrom:       time.Time(m.ChurchServiceFrom).Format(DateLayout),
		ChurchServiceTo:         time.Time(m.ChurchServiceTo).Format(DateLayout),
	}
}

func ToChurchServiceResponseList(models []model.ChurchServiceModel) []ChurchServiceResponse {
	var result []ChurchServiceResponse
	for i := range models {
		result = append(result, *ToChurchServiceResponse(&models[i]))
	}
	return result
}
