// internals/features/church/attendance/service/types.go
//
// Tipe domain untuk mesin rekonsiliasi kehadiran. Semua fungsi di package ini
// murni: tidak menyentuh DB, tidak membaca jam dinding. Data diambil dulu oleh
// repository lalu dioper ke sini.
package service

import (
	"time"

	"github.com/google/uuid"
)

// Scope — dimensi kehadiran yang saling independen.
type Scope string

const (
	ScopeChurch  Scope = "church"
	ScopeService Scope = "service"
	ScopeMeeting Scope = "meeting"
)

var AllScopes = []Scope{ScopeChurch, ScopeService, ScopeMeeting}

// EntityRef — identitas entitas pengirim laporan (tribe/department/honor family).
type EntityRef struct {
	Type string    `json:"type"` // constants.Entity*
	ID   uuid.UUID `json:"id"`
}

// Record — fakta atomik dari satu laporan: satu member, satu tanggal.
// Presence[scope] == nil artinya tidak ditandai (unknown), BUKAN false.
type Record struct {
	ID       uuid.UUID
	MemberID uuid.UUID
	Date     time.Time
	Presence map[Scope]*bool
}

// Report — satu event pengiriman kehadiran oleh satu entitas.
type Report struct {
	ID          uuid.UUID
	Entity      EntityRef
	SubmitterID uuid.UUID
	SubmittedAt time.Time
	Comment     *string
	Records     []Record
}

// MemberInfo — potret member seperlunya untuk agregasi & klasifikasi.
// DeletedAt terisi = member diarsipkan (histori kehadirannya tetap ada).
type MemberInfo struct {
	ID            uuid.UUID
	Name          string
	Phone         *string
	TribeID       *uuid.UUID
	DepartmentID  *uuid.UUID
	HonorFamilyID *uuid.UUID
	CreatedAt     time.Time
	DeletedAt     *time.Time
}

// ServiceWindow — rentang tanggal (inklusif) saat "service" aktif untuk entitas.
type ServiceWindow struct {
	Entity EntityRef
	From   time.Time
	To     time.Time
}

// Claim — satu klaim kehadiran dari satu entitas untuk (member, tanggal, scope).
type Claim struct {
	Entity      EntityRef
	ReportID    uuid.UUID
	RecordID    uuid.UUID
	SubmittedAt time.Time
	Value       bool
}

// ScopeState — hasil merge semua klaim pada satu scope.
// Saat konflik, Value nil dan kedua klaim dipertahankan; tidak ada pemenang.
type ScopeState struct {
	Value    *bool
	Claims   []Claim
	Conflict bool
}

// TimelineEntry — satu tanggal dalam timeline seorang member.
// Tanggal tanpa entry sama sekali artinya unknown (tidak ada klaim apa pun).
type TimelineEntry struct {
	Date   time.Time
	Scopes map[Scope]ScopeState
}

// Timeline — per member, entri terurut naik berdasarkan tanggal.
type Timeline map[uuid.UUID][]TimelineEntry

// Entry mengembalikan entri untuk tanggal tertentu (dibandingkan per hari).
func (t Timeline) Entry(memberID uuid.UUID, date time.Time) (TimelineEntry, bool) {
	d := NormalizeDay(date)
	for _, e := range t[memberID] {
		if e.Date.Equal(d) {
			return e, true
		}
	}
	return TimelineEntry{}, false
}

func boolPtr(v bool) *bool { return &v }
