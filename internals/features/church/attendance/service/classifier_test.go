package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTierForRatio(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{1.0, TierVeryRegular},
		{0.9, TierVeryRegular}, // batas bawah inklusif
		{9.0 / 10.0, TierVeryRegular},
		{0.89, TierRegular},
		{0.6, TierRegular},
		{0.59, TierMediumRegular},
		{0.3, TierMediumRegular},
		{0.29, TierLittleRegular},
		{0.01, TierLittleRegular},
		{0, TierAbsent},
	}
	for _, tt := range tests {
		if got := TierForRatio(tt.ratio); got != tt.want {
			t.Errorf("TierForRatio(%v) = %q, want %q", tt.ratio, got, tt.want)
		}
	}
}

func TestEligibleDates_PartialMonth(t *testing.T) {
	// Juni 2026: Minggu jatuh pada 7, 14, 21, 28
	sundays := SundaysInMonth(day(2026, 6, 1))
	m := MemberInfo{ID: uuid.New(), CreatedAt: day(2026, 6, 15)}

	got := EligibleDates(sundays, m)
	if len(got) != 2 {
		t.Fatalf("member masuk tanggal 15 eligible %d dari 4 Minggu, want 2 (%v)", len(got), got)
	}
	if got[0].Day() != 21 || got[1].Day() != 28 {
		t.Errorf("eligible = %v, want 21 dan 28", got)
	}
}

func TestEligibleDates_ArchivedMemberStopsAtDeletion(t *testing.T) {
	sundays := SundaysInMonth(day(2026, 6, 1))
	deleted := day(2026, 6, 21)
	m := MemberInfo{ID: uuid.New(), CreatedAt: day(2025, 1, 1), DeletedAt: &deleted}

	got := EligibleDates(sundays, m)
	// tanggal arsip itu sendiri sudah tidak eligible
	if len(got) != 2 || got[0].Day() != 7 || got[1].Day() != 14 {
		t.Errorf("eligible = %v, want 7 dan 14", got)
	}
}

func TestEligibleDates_JoinDateItselfCounts(t *testing.T) {
	sundays := SundaysInMonth(day(2026, 6, 1))
	m := MemberInfo{ID: uuid.New(), CreatedAt: day(2026, 6, 14)}

	got := EligibleDates(sundays, m)
	if len(got) != 3 || got[0].Day() != 14 {
		t.Errorf("Minggu yang tepat hari bergabung ikut eligible, got %v", got)
	}
}

func TestClassify_NilWhenNoEligibleDates(t *testing.T) {
	if c := Classify(nil, nil); c != nil {
		t.Errorf("tanpa tanggal eligible klasifikasi harus nil, got %+v", c)
	}
}

func classifyEntries(dates []time.Time, values []*bool) []TimelineEntry {
	var out []TimelineEntry
	for i, d := range dates {
		if values[i] == nil {
			continue // unknown: tidak ada entry sama sekali
		}
		out = append(out, TimelineEntry{
			Date:   d,
			Scopes: map[Scope]ScopeState{ScopeChurch: {Value: values[i]}},
		})
	}
	return out
}

func TestClassify_RatioAndTier(t *testing.T) {
	sundays := SundaysInMonth(day(2026, 2, 1)) // 1, 8, 15, 22

	tests := []struct {
		name      string
		values    []*bool // per Minggu, nil = unknown
		wantRatio float64
		wantTier  string
	}{
		{"hadir penuh", []*bool{boolPtr(true), boolPtr(true), boolPtr(true), boolPtr(true)}, 1.0, TierVeryRegular},
		{"tiga dari empat", []*bool{boolPtr(true), boolPtr(true), boolPtr(true), boolPtr(false)}, 0.75, TierRegular},
		{"unknown tetap dihitung penyebut", []*bool{boolPtr(true), nil, nil, nil}, 0.25, TierLittleRegular},
		{"absen eksplisit semua", []*bool{boolPtr(false), boolPtr(false), boolPtr(false), boolPtr(false)}, 0, TierAbsent},
		{"tidak pernah ditandai", []*bool{nil, nil, nil, nil}, 0, TierAbsent},
	}

	m := MemberInfo{ID: uuid.New(), CreatedAt: day(2025, 1, 1)}
	eligible := EligibleDates(sundays, m)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(classifyEntries(eligible, tt.values), eligible)
			if c == nil {
				t.Fatalf("Classify = nil, want klasifikasi")
			}
			if c.Ratio != tt.wantRatio {
				t.Errorf("Ratio = %v, want %v", c.Ratio, tt.wantRatio)
			}
			if c.Tier != tt.wantTier {
				t.Errorf("Tier = %q, want %q", c.Tier, tt.wantTier)
			}
		})
	}
}

func TestClassify_ConflictedDateDoesNotCountAsPresent(t *testing.T) {
	sundays := SundaysInMonth(day(2026, 2, 1))
	m := MemberInfo{ID: uuid.New(), CreatedAt: day(2025, 1, 1)}
	eligible := EligibleDates(sundays, m)

	entries := []TimelineEntry{
		{Date: eligible[0], Scopes: map[Scope]ScopeState{ScopeChurch: {Conflict: true}}},
	}
	c := Classify(entries, eligible)
	if c == nil || c.Ratio != 0 {
		t.Errorf("tanggal konflik tanpa nilai otoritatif tidak menambah pembilang, got %+v", c)
	}
}
