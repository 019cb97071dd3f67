// internals/features/church/attendance/service/errors.go
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InputError — ditolak sinkron sebelum komputasi apa pun dimulai.
var (
	ErrInvalidDateRange  = fmt.Errorf("rentang tanggal tidak valid: from melebihi to")
	ErrEmptyMemberSet    = fmt.Errorf("set member kosong")
	ErrUnknownEntityType = fmt.Errorf("tipe entitas tidak dikenal")
)

// Alasan IntegrityWarning yang dipakai Aggregator.
const (
	WarnDuplicateClaim    = "duplicate_same_entity_claim"
	WarnOutsideMembership = "record_outside_membership_window"
)

// IntegrityWarning — anomali data yang TIDAK menggagalkan komputasi.
// Satu record buruk tidak boleh memblokir resume seluruh roster; anomali
// dilaporkan berdampingan dengan hasil.
type IntegrityWarning struct {
	MemberID uuid.UUID `json:"member_id"`
	Date     time.Time `json:"date"`
	Scope    Scope     `json:"scope,omitempty"`
	Entity   EntityRef `json:"entity"`
	Reason   string    `json:"reason"`
}

func (w IntegrityWarning) String() string {
	return fmt.Sprintf("%s member=%s date=%s entity=%s/%s scope=%s",
		w.Reason, w.MemberID, w.Date.Format("2006-01-02"), w.Entity.Type, w.Entity.ID, w.Scope)
}
