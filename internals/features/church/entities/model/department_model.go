// internals/features/church/entities/model/department_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentModel — departemen pelayanan; pengirim laporan kehadiran seperti
// tribe, termasuk scope service bila punya window aktif.
type DepartmentModel struct {
	DepartmentID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:department_id" json:"department_id"`
	DepartmentChurchID  uuid.UUID      `gorm:"type:uuid;not null;column:department_church_id;index:idx_department_church" json:"department_church_id"`
	DepartmentName      string         `gorm:"type:varchar(120);not null;column:department_name" json:"department_name"`
	DepartmentLeaderID  *uuid.UUID     `gorm:"type:uuid;column:department_leader_id" json:"department_leader_id,omitempty"`
	DepartmentCreatedAt time.Time      `gorm:"column:department_created_at;autoCreateTime" json:"department_created_at"`
	DepartmentUpdatedAt time.Time      `gorm:"column:department_updated_at;autoUpdateTime" json:"department_updated_at"`
	DepartmentDeletedAt gorm.DeletedAt `gorm:"column:department_deleted_at;index" json:"department_deleted_at,omitempty"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}
