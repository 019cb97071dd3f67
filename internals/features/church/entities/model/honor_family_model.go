// internals/features/church/entities/model/honor_family_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HonorFamilyModel — keluarga kehormatan: melacak kehadiran pertemuan keluarga
// (scope meeting) dan, lewat resolver, ikut melihat catatan ibadah raya yang
// dikirim tribe/department member yang sama.
type HonorFamilyModel struct {
	HonorFamilyID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:honor_family_id" json:"honor_family_id"`
	HonorFamilyChurchID  uuid.UUID      `gorm:"type:uuid;not null;column:honor_family_church_id;index:idx_honor_family_church" json:"honor_family_church_id"`
	HonorFamilyName      string         `gorm:"type:varchar(120);not null;column:honor_family_name" json:"honor_family_name"`
	HonorFamilyLeaderID  *uuid.UUID     `gorm:"type:uuid;column:honor_family_leader_id" json:"honor_family_leader_id,omitempty"`
	HonorFamilyCreatedAt time.Time      `gorm:"column:honor_family_created_at;autoCreateTime" json:"honor_family_created_at"`
	HonorFamilyUpdatedAt time.Time      `gorm:"column:honor_family_updated_at;autoUpdateTime" json:"honor_family_updated_at"`
	HonorFamilyDeletedAt gorm.DeletedAt `gorm:"column:honor_family_deleted_at;index" json:"honor_family_deleted_at,omitempty"`
}

func (HonorFamilyModel) TableName() string {
	return "honor_families"
}
