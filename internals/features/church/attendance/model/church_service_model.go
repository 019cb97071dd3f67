// internals/features/church/attendance/model/church_service_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChurchServiceModel — rentang tanggal saat "service" (ibadah kedua, terpisah
// dari ibadah raya) aktif untuk sebuah tribe/department. Satu entitas boleh
// punya banyak window; sebuah tanggal "service-aktif" kalau jatuh di dalam
// minimal satu window (inklusif).
type ChurchServiceModel struct {
	// PK
	ChurchServiceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:church_service_id" json:"church_service_id"`

	// Tenant
	ChurchServiceChurchID uuid.UUID `gorm:"type:uuid;not null;column:church_service_church_id;index:idx_church_service_church" json:"church_service_church_id"`

	// Pemilik window (hanya TRIBE / DEPARTMENT)
	ChurchServiceEntityType string    `gorm:"type:varchar(16);not null;column:church_service_entity_type;index:idx_church_service_entity,priority:1" json:"church_service_entity_type"`
	ChurchServiceEntityID   uuid.UUID `gorm:"type:uuid;not null;column:church_service_entity_id;index:idx_church_service_entity,priority:2" json:"church_service_entity_id"`

	// Rentang inklusif
	ChurchServiceFrom datatypes.Date `gorm:"type:date;not null;column:church_service_from" json:"church_service_from"`
	ChurchServiceTo   datatypes.Date `gorm:"type:date;not null;column:church_service_to" json:"church_service_to"`

	// Timestamps
	ChurchServiceCreatedAt time.Time `gorm:"column:church_service_created_at;autoCreateTime" json:"church_service_created_at"`
	ChurchServiceUpdatedAt time.Time `gorm:"column:church_service_updated_at;autoUpdateTime" json:"church_service_updated_at"`
}

func (ChurchServiceModel) TableName() string {
	return "church_services"
}
