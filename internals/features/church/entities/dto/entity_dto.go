// internals/features/church/entities/dto/entity_dto.go
package dto

import (
	"github.com/google/uuid"

	"gerejaku_backend/internals/features/church/entities/model"
)

// Request/response generik untuk ketiga tipe entitas; bentuk kolomnya sama.
type CreateEntityRequest struct {
	Name     string     `json:"name" validate:"required,max=120"`
	LeaderID *uuid.UUID `json:"leader_id"`
}

type EntityResponse struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Name      string     `json:"name"`
	LeaderID  *uuid.UUID `json:"leader_id,omitempty"`
	CreatedAt string     `json:"created_at"`
}

func ToTribeResponse(m *model.TribeModel) *EntityResponse {
	return &EntityResponse{
		ID:        m.TribeID,
		Type:      "TRIBE",
		Name:      m.TribeName,
		LeaderID:  m.TribeLeaderID,
		CreatedAt: m.TribeCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToDepartmentResponse(m *model.DepartmentModel) *EntityResponse {
	return &EntityResponse{
		ID:        m.DepartmentID,
		Type:      "DEPARTMENT",
		Name:      m.DepartmentName,
		LeaderID:  m.DepartmentLeaderID,
		CreatedAt: m.DepartmentCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToHonorFamilyResponse(m *model.HonorFamilyModel) *EntityResponse {
	return &EntityResponse{
		ID:        m.HonorFamilyID,
		Type:      "HONOR_FAMILY",
		Name:      m.HonorFamilyName,
		LeaderID:  m.HonorFamilyLeaderID,
		CreatedAt: m.HonorFamilyCreatedAt.Format("2006-01-02 15:04:05"),
	}
}
