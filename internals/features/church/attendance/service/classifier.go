// internals/features/church/attendance/service/classifier.go
package service

import "time"

// Label tier keteraturan — string stabil yang dipakai API/dashboard apa adanya.
const (
	TierVeryRegular   = "Very Regular"
	TierRegular       = "Regular"
	TierMediumRegular = "Medium Regular"
	TierLittleRegular = "Little Regular"
	TierAbsent        = "Absent"
)

// Classification — rasio kehadiran dan tier-nya. Dihitung saat baca, tidak
// pernah dipersist.
type Classification struct {
	Ratio float64 `json:"ratio"`
	Tier  string  `json:"tier"`
}

// EligibleDates — hari Minggu yang member-nya memang bisa ditandai: pada atau
// setelah createdAt, dan sebelum deletedAt kalau diarsipkan.
func EligibleDates(sundays []time.Time, m MemberInfo) []time.Time {
	joined := NormalizeDay(m.CreatedAt)
	var out []time.Time
	for _, s := range sundays {
		d := NormalizeDay(s)
		if d.Before(joined) {
			continue
		}
		if m.DeletedAt != nil && !d.Before(*m.DeletedAt) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Classify menghitung rasio kehadiran gereja atas tanggal eligible dan memberi
// tier. Mengembalikan nil saat tidak ada tanggal eligible: member tanpa
// eligibility adalah kasus berbeda dari member dengan nol kehadiran dan tidak
// boleh dicampuradukkan (bukan tier default, bukan 0%).
//
// Tanggal unknown (nil) tidak menambah pembilang tetapi TETAP dihitung di
// penyebut: "belum terkonfirmasi hadir" beda dengan "tidak eligible".
func Classify(entries []TimelineEntry, eligible []time.Time) *Classification {
	if len(eligible) == 0 {
		return nil
	}

	byDate := make(map[time.Time]TimelineEntry, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e
	}

	present := 0
	for _, d := range eligible {
		e, ok := byDate[NormalizeDay(d)]
		if !ok {
			continue
		}
		st, ok := e.Scopes[ScopeChurch]
		if ok && st.Value != nil && *st.Value {
			present++
		}
	}

	ratio := float64(present) / float64(len(eligible))
	return &Classification{Ratio: ratio, Tier: TierForRatio(ratio)}
}

// TierForRatio — lima bucket; batas bawah tiap bucket inklusif kecuali puncak.
func TierForRatio(r float64) string {
	switch {
	case r >= 0.9:
		return TierVeryRegular
	case r >= 0.6:
		return TierRegular
	case r >= 0.3:
		return TierMediumRegular
	case r > 0:
		return TierLittleRegular
	default:
		return TierAbsent
	}
}
