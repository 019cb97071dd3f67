// internals/features/church/members/dto/member_dto.go
package dto

import (
	"github.com/google/uuid"

	"gerejaku_backend/internals/features/church/members/model"
)

type CreateMemberRequest struct {
	MemberName          string     `json:"member_name" validate:"required,max=120"`
	MemberPhone         *string    `json:"member_phone" validate:"omitempty,max=30"`
	MemberTribeID       *uuid.UUID `json:"member_tribe_id"`
	MemberDepartmentID  *uuid.UUID `json:"member_department_id"`
	MemberHonorFamilyID *uuid.UUID `json:"member_honor_family_id"`
}

type UpdateMemberRequest struct {
	MemberName          *string    `json:"member_name" validate:"omitempty,max=120"`
	MemberPhone         *string    `json:"member_phone" validate:"omitempty,max=30"`
	MemberTribeID       *uuid.UUID `json:"member_tribe_id"`
	MemberDepartmentID  *uuid.UUID `json:"member_department_id"`
	MemberHonorFamilyID *uuid.UUID `json:"member_honor_family_id"`
}

func (r *CreateMemberRequest) ToModel(churchID uuid.UUID) *model.MemberModel {
	return &model.MemberModel{
		MemberChurchID:      churchID,
		MemberName:          r.MemberName,
		MemberPhone:         r.MemberPhone,
		MemberTribeID:       r.MemberTribeID,
		MemberDepartmentID:  r.MemberDepartmentID,
		MemberHonorFamilyID: r.MemberHonorFamilyID,
	}
}

type MemberResponse struct {
	MemberID            uuid.UUID  `json:"member_id"`
	MemberName          string     `json:"member_name"`
	MemberPhone         *string    `json:"member_phone,omitempty"`
	MemberTribeID       *uuid.UUID `json:"member_tribe_id,omitempty"`
	MemberDepartmentID  *uuid.UUID `json:"member_department_id,omitempty"`
	MemberHonorFamilyID *uuid.UUID `json:"member_honor_family_id,omitempty"`
	MemberCreatedAt     string     `json:"member_created_at"`
	MemberIsArchived    bool       `json:"member_is_archived"`
}

func ToMemberResponse(m *model.MemberModel) *MemberResponse {
	return &MemberResponse{
		MemberID:            m.MemberID,
		MemberName:          m.MemberName,
		MemberPhone:         m.MemberPhone,
		MemberTribeID:       m.MemberTribeID,
		MemberDepartmentID:  m.MemberDepartmentID,
		MemberHonorFamilyID: m.MemberHonorFamilyID,
		MemberCreatedAt:     m.MemberCreatedAt.Format("2006-01-02 15:04:05"),
		MemberIsArchived:    m.MemberDeletedAt.Valid,
	}
}

func ToMemberResponseList(models []model.MemberModel) []MemberResponse {
	var result []MemberResponse
	for i := range models {
		result = append(result, *ToMemberResponse(&models[i]))
	}
	return result
}
