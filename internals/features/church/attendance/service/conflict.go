// internals/features/church/attendance/service/conflict.go
package service

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Conflict — dua entitas berbeda menyatakan nilai kehadiran yang bertentangan
// untuk (member, tanggal, scope) yang sama. Detector hanya menandai; memilih
// nilai final adalah alur manual yang terpisah.
type Conflict struct {
	MemberID  uuid.UUID   `json:"member_id"`
	Date      time.Time   `json:"date"`
	Scope     Scope       `json:"scope"`
	EntityA   EntityRef   `json:"entity_a"`
	ValueA    bool        `json:"value_a"`
	EntityB   EntityRef   `json:"entity_b"`
	ValueB    bool        `json:"value_b"`
	RecordIDs []uuid.UUID `json:"record_ids"`
}

// ConflictGroup — konflik satu tanggal, untuk triase reviewer.
type ConflictGroup struct {
	Date      time.Time  `json:"date"`
	Conflicts []Conflict `json:"conflicts"`
}

// ConflictSet — dikelompokkan per tanggal, tanggal terbaru duluan.
type ConflictSet []ConflictGroup

// DetectConflicts memindai timeline hasil Aggregate. Fungsi murni; tidak pernah
// menyentuh storage — penandaan has_conflict di DB adalah urusan caller lewat
// repository setelah deteksi.
//
// Konflik ada untuk (member, tanggal, scope) iff minimal dua klaim dari entitas
// BERBEDA menyatakan nilai boolean non-nil yang berbeda. Simetris terhadap
// urutan laporan: siapa pun yang diproses duluan, hasilnya sama.
func DetectConflicts(tl Timeline) ConflictSet {
	byDate := make(map[time.Time][]Conflict)

	for memberID, entries := range tl {
		for _, entry := range entries {
			for _, sc := range AllScopes {
				state, ok := entry.Scopes[sc]
				if !ok || !state.Conflict {
					continue
				}
				c := buildConflict(memberID, entry.Date, sc, state.Claims)
				byDate[entry.Date] = append(byDate[entry.Date], c)
			}
		}
	}

	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	set := make(ConflictSet, 0, len(dates))
	for _, d := range dates {
		cs := byDate[d]
		sort.Slice(cs, func(i, j int) bool {
			if cs[i].MemberID != cs[j].MemberID {
				return strings.Compare(cs[i].MemberID.String(), cs[j].MemberID.String()) < 0
			}
			return cs[i].Scope < cs[j].Scope
		})
		set = append(set, ConflictGroup{Date: d, Conflicts: cs})
	}
	return set
}

// RecordIDs meratakan seluruh record yang terlibat konflik (untuk dipersist
// sebagai anotasi has_conflict oleh caller).
func (s ConflictSet) RecordIDs() []uuid.UUID {
	var out []uuid.UUID
	seen := make(map[uuid.UUID]struct{})
	for _, g := range s {
		for _, c := range g.Conflicts {
			for _, id := range c.RecordIDs {
				if _, ok := seen[id]; ok {
					continue
				}
				seen[id] = struct{}{}
				out = append(out, id)
			}
		}
	}
	return out
}

// Total menghitung jumlah konflik di seluruh grup.
func (s ConflictSet) Total() int {
	n := 0
	for _, g := range s {
		n += len(g.Conflicts)
	}
	return n
}

// buildConflict mengambil dua klaim pertama yang saling bertentangan sebagai
// pasangan A/B; seluruh record id kontributor tetap dibawa untuk resolusi.
func buildConflict(memberID uuid.UUID, date time.Time, sc Scope, claims []Claim) Conflict {
	a := claims[0]
	b := claims[0]
	for _, c := range claims[1:] {
		if c.Value != a.Value {
			b = c
			break
		}
	}
	ids := make([]uuid.UUID, 0, len(claims))
	for _, c := range claims {
		ids = append(ids, c.RecordID)
	}
	return Conflict{
		MemberID:  memberID,
		Date:      date,
		Scope:     sc,
		EntityA:   a.Entity,
		ValueA:    a.Value,
		EntityB:   b.Entity,
		ValueB:    b.Value,
		RecordIDs: ids,
	}
}
