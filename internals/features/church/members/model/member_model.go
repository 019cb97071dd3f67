// internals/features/church/members/model/member_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberModel — anggota jemaat. Maksimal satu home entity per tipe
// (tribe/department/honor family) lewat FK nullable; member yang sama bisa
// muncul implisit di roster entitas lain (lihat resolver di fitur attendance).
//
// member_deleted_at terisi = member diarsipkan: hilang dari roster ke depan,
// histori kehadirannya TIDAK ikut dihapus.
type MemberModel struct {
	// PK
	MemberID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:member_id" json:"member_id"`

	// Tenant
	MemberChurchID uuid.UUID `gorm:"type:uuid;not null;column:member_church_id;index:idx_member_church" json:"member_church_id"`

	// Identitas
	MemberName  string  `gorm:"type:varchar(120);not null;column:member_name" json:"member_name"`
	MemberPhone *string `gorm:"type:varchar(30);column:member_phone" json:"member_phone,omitempty"`

	// Home entity per tipe (nullable)
	MemberTribeID       *uuid.UUID `gorm:"type:uuid;column:member_tribe_id;index:idx_member_tribe" json:"member_tribe_id,omitempty"`
	MemberDepartmentID  *uuid.UUID `gorm:"type:uuid;column:member_department_id;index:idx_member_department" json:"member_department_id,omitempty"`
	MemberHonorFamilyID *uuid.UUID `gorm:"type:uuid;column:member_honor_family_id;index:idx_member_honor_family" json:"member_honor_family_id,omitempty"`

	// Timestamps; created_at menentukan status NEW vs OLD relatif window laporan
	MemberCreatedAt time.Time      `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt time.Time      `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at"`
	MemberDeletedAt gorm.DeletedAt `gorm:"column:member_deleted_at;index" json:"member_deleted_at,omitempty"`
}

func (MemberModel) TableName() string {
	return "members"
}
