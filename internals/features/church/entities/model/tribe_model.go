// internals/features/church/entities/model/tribe_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TribeModel — suku: unit organisasi pemilik roster yang mengirim laporan
// kehadiran level ibadah raya (dan service bila ada window aktif).
type TribeModel struct {
	TribeID       uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:tribe_id" json:"tribe_id"`
	TribeChurchID uuid.UUID      `gorm:"type:uuid;not null;column:tribe_church_id;index:idx_tribe_church" json:"tribe_church_id"`
	TribeName     string         `gorm:"type:varchar(120);not null;column:tribe_name" json:"tribe_name"`
	TribeLeaderID *uuid.UUID     `gorm:"type:uuid;column:tribe_leader_id" json:"tribe_leader_id,omitempty"`
	TribeCreatedAt time.Time     `gorm:"column:tribe_created_at;autoCreateTime" json:"tribe_created_at"`
	TribeUpdatedAt time.Time     `gorm:"column:tribe_updated_at;autoUpdateTime" json:"tribe_updated_at"`
	TribeDeletedAt gorm.DeletedAt `gorm:"column:tribe_deleted_at;index" json:"tribe_deleted_at,omitempty"`
}

func (TribeModel) TableName() string {
	return "tribes"
}
