// internals/features/church/attendance/service/aggregator.go
package service

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"gerejaku_backend/internals/constants"
)

type claimKey struct {
	MemberID uuid.UUID
	Date     time.Time // sudah dinormalisasi ke awal hari UTC
	Scope    Scope
}

// Aggregate menggabungkan laporan dari banyak entitas menjadi satu timeline
// kehadiran per member untuk rentang [from, to] inklusif.
//
// Aturan merge per (member, tanggal, scope):
//   - satu klaim                         → itulah nilainya
//   - banyak klaim, nilai sama           → di-collapse jadi satu nilai
//   - banyak klaim beda entitas, beda nilai → KEDUANYA dipertahankan,
//     scope ditandai konflik; Aggregate tidak pernah memilih pemenang
//
// Tidak ada klaim sama sekali → tidak ada entry → unknown (nil), yang beda
// makna dengan false (ditandai absen secara eksplisit).
//
// Fungsi ini murni dan idempoten; urutan laporan pada input tidak mempengaruhi
// hasil (laporan diurutkan berdasarkan waktu submit sebelum diproses).
func Aggregate(reports []Report, members []MemberInfo, requesting EntityRef, from, to time.Time) (Timeline, []IntegrityWarning, error) {
	if !constants.IsValidEntityType(requesting.Type) {
		return nil, nil, ErrUnknownEntityType
	}
	return aggregate(reports, members, from, to, func(m MemberInfo) []EntityRef {
		return ResolveRelevantEntities(m, requesting).Related
	})
}

// AggregateAcrossEntities seperti Aggregate tetapi tanpa konteks entitas
// peminta: klaim dari SEMUA home entity member digabung. Dipakai rekalkulasi
// flag konflik saat sebuah laporan baru menyentuh tanggal/member yang sudah
// pernah ditandai.
func AggregateAcrossEntities(reports []Report, members []MemberInfo, from, to time.Time) (Timeline, []IntegrityWarning, error) {
	return aggregate(reports, members, from, to, ResolveMemberEntities)
}

func aggregate(reports []Report, members []MemberInfo, from, to time.Time, relevance func(MemberInfo) []EntityRef) (Timeline, []IntegrityWarning, error) {
	fromDay, toDay := NormalizeDay(from), NormalizeDay(to)
	if fromDay.After(toDay) {
		return nil, nil, ErrInvalidDateRange
	}
	if len(members) == 0 {
		return nil, nil, ErrEmptyMemberSet
	}

	memberByID := make(map[uuid.UUID]MemberInfo, len(members))
	relevantFor := make(map[uuid.UUID]map[EntityRef]struct{}, len(members))
	for _, m := range members {
		memberByID[m.ID] = m
		set := make(map[EntityRef]struct{})
		for _, e := range relevance(m) {
			set[e] = struct{}{}
		}
		relevantFor[m.ID] = set
	}

	// Urutkan salinan laporan berdasarkan waktu submit (tie-break id) supaya
	// aturan "klaim duplikat: yang paling awal menang" tidak tergantung urutan input.
	sorted := make([]Report, len(reports))
	copy(sorted, reports)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].SubmittedAt.Equal(sorted[j].SubmittedAt) {
			return sorted[i].SubmittedAt.Before(sorted[j].SubmittedAt)
		}
		return strings.Compare(sorted[i].ID.String(), sorted[j].ID.String()) < 0
	})

	claims := make(map[claimKey][]Claim)
	var warnings []IntegrityWarning

	for _, rep := range sorted {
		for _, rec := range rep.Records {
			m, ok := memberByID[rec.MemberID]
			if !ok {
				continue
			}
			if _, ok := relevantFor[rec.MemberID][rep.Entity]; !ok {
				continue
			}
			day := NormalizeDay(rec.Date)
			if day.Before(fromDay) || day.After(toDay) {
				continue
			}
			if outsideMembership(m, day) {
				warnings = append(warnings, IntegrityWarning{
					MemberID: rec.MemberID,
					Date:     day,
					Entity:   rep.Entity,
					Reason:   WarnOutsideMembership,
				})
				// tetap diikutkan; anomali dilaporkan, bukan dibuang diam-diam
			}
			for _, sc := range AllScopes {
				val := rec.Presence[sc]
				if val == nil {
					continue
				}
				key := claimKey{MemberID: rec.MemberID, Date: day, Scope: sc}
				if dup := hasClaimFrom(claims[key], rep.Entity); dup {
					// duplikat dari entitas yang SAMA bukan konflik — itu error
					// kualitas data saat ingest; klaim paling awal yang dipakai
					warnings = append(warnings, IntegrityWarning{
						MemberID: rec.MemberID,
						Date:     day,
						Scope:    sc,
						Entity:   rep.Entity,
						Reason:   WarnDuplicateClaim,
					})
					continue
				}
				claims[key] = append(claims[key], Claim{
					Entity:      rep.Entity,
					ReportID:    rep.ID,
					RecordID:    rec.ID,
					SubmittedAt: rep.SubmittedAt,
					Value:       *val,
				})
			}
		}
	}

	return buildTimeline(claims), warnings, nil
}

func buildTimeline(claims map[claimKey][]Claim) Timeline {
	entries := make(map[uuid.UUID]map[time.Time]TimelineEntry)

	for key, cs := range claims {
		byDate, ok := entries[key.MemberID]
		if !ok {
			byDate = make(map[time.Time]TimelineEntry)
			entries[key.MemberID] = byDate
		}
		entry, ok := byDate[key.Date]
		if !ok {
			entry = TimelineEntry{Date: key.Date, Scopes: make(map[Scope]ScopeState)}
		}

		sortClaims(cs)
		state := ScopeState{Claims: cs}
		if agreed, conflict := mergeClaims(cs); conflict {
			state.Conflict = true
		} else {
			state.Value = boolPtr(agreed)
		}
		entry.Scopes[key.Scope] = state
		byDate[key.Date] = entry
	}

	tl := make(Timeline, len(entries))
	for memberID, byDate := range entries {
		list := make([]TimelineEntry, 0, len(byDate))
		for _, e := range byDate {
			list = append(list, e)
		}
		sort.Slice(list, func(i, j int) bool { return list[i].Date.Before(list[j].Date) })
		tl[memberID] = list
	}
	return tl
}

// mergeClaims meng-collapse klaim yang sepakat; klaim yang tidak sepakat
// dilaporkan sebagai konflik tanpa nilai otoritatif.
func mergeClaims(cs []Claim) (agreed bool, conflict bool) {
	agreed = cs[0].Value
	for _, c := range cs[1:] {
		if c.Value != agreed {
			return false, true
		}
	}
	return agreed, false
}

func hasClaimFrom(cs []Claim, e EntityRef) bool {
	for _, c := range cs {
		if c.Entity == e {
			return true
		}
	}
	return false
}

func sortClaims(cs []Claim) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Entity.Type != cs[j].Entity.Type {
			return cs[i].Entity.Type < cs[j].Entity.Type
		}
		return strings.Compare(cs[i].Entity.ID.String(), cs[j].Entity.ID.String()) < 0
	})
}

// outsideMembership true kalau tanggal record jatuh di luar masa keanggotaan
// member (sebelum dibuat, atau pada/ setelah diarsipkan).
func outsideMembership(m MemberInfo, day time.Time) bool {
	if day.Before(NormalizeDay(m.CreatedAt)) {
		return true
	}
	if m.DeletedAt != nil && !day.Before(*m.DeletedAt) {
		return true
	}
	return false
}
