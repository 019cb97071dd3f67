// internals/features/church/attendance/service/calendar.go
package service

import "time"

// NormalizeDay memotong komponen jam ke awal hari (UTC). Semua perbandingan
// tanggal di mesin ini wajib lewat sini; membandingkan timestamp mentah adalah
// bug (record jam 19:00 vs jam 08:00 di hari yang sama harus dianggap sama).
func NormalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay membandingkan dua waktu pada granularitas hari.
func SameDay(a, b time.Time) bool {
	return NormalizeDay(a).Equal(NormalizeDay(b))
}

// MonthRange mengembalikan hari pertama dan terakhir bulan anchor.
func MonthRange(anchor time.Time) (first, last time.Time) {
	first = time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last
}

// SundaysInMonth mengembalikan semua hari Minggu pada bulan anchor, terurut
// naik, termasuk Minggu pertama/terakhir meski jatuh di pekan ISO berbeda.
func SundaysInMonth(anchor time.Time) []time.Time {
	first, _ := MonthRange(anchor)
	var out []time.Time
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			out = append(out, d)
		}
	}
	return out
}

// IsServiceActive true iff date jatuh dalam [From, To] (inklusif) minimal satu
// window. Window yang tumpang tindih diperlakukan sebagai union, tidak divalidasi.
func IsServiceActive(date time.Time, windows []ServiceWindow) bool {
	d := NormalizeDay(date)
	for _, w := range windows {
		if !d.Before(NormalizeDay(w.From)) && !d.After(NormalizeDay(w.To)) {
			return true
		}
	}
	return false
}
