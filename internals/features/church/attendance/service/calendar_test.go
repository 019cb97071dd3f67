package service

import (
	"testing"
	"time"
)

func TestNormalizeDay_DropsClockComponent(t *testing.T) {
	evening := time.Date(2026, 2, 8, 19, 30, 45, 123, time.UTC)
	morning := time.Date(2026, 2, 8, 8, 0, 0, 0, time.UTC)

	if !NormalizeDay(evening).Equal(NormalizeDay(morning)) {
		t.Fatalf("record jam 19:30 dan 08:00 di hari sama harus dinormalisasi ke hari yang sama")
	}
	got := NormalizeDay(evening)
	want := time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("NormalizeDay = %v, want %v", got, want)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 2, 8, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, 2, 8, 0, 1, 0, 0, time.UTC)
	c := time.Date(2026, 2, 9, 0, 1, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Errorf("SameDay(%v, %v) = false, want true", a, b)
	}
	if SameDay(a, c) {
		t.Errorf("SameDay(%v, %v) = true, want false", a, c)
	}
}

func TestMonthRange(t *testing.T) {
	anchor := time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)
	first, last := MonthRange(anchor)

	if !first.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first = %v", first)
	}
	if !last.Equal(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("last = %v", last)
	}
}

func TestSundaysInMonth(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
		days   []int
	}{
		{"empat minggu", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), []int{1, 8, 15, 22}},
		{"lima minggu", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), []int{1, 8, 15, 22, 29}},
		{"minggu pertama bukan tanggal 1", time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC), []int{7, 14, 21, 28}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SundaysInMonth(tt.anchor)
			if len(got) != len(tt.days) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.days), got)
			}
			for i, d := range tt.days {
				if got[i].Day() != d {
					t.Errorf("sunday[%d] = %v, want day %d", i, got[i], d)
				}
				if got[i].Weekday() != time.Sunday {
					t.Errorf("sunday[%d] weekday = %v", i, got[i].Weekday())
				}
			}
		})
	}
}

func TestIsServiceActive_InclusiveBounds(t *testing.T) {
	windows := []ServiceWindow{
		{From: time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC), To: time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)},
	}

	tests := []struct {
		date time.Time
		want bool
	}{
		{time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC), true},  // batas bawah inklusif
		{time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), true}, // batas atas inklusif
		{time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		if got := IsServiceActive(tt.date, windows); got != tt.want {
			t.Errorf("IsServiceActive(%v) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestIsServiceActive_OverlappingWindowsAreUnion(t *testing.T) {
	windows := []ServiceWindow{
		{From: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)},
		{From: time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC), To: time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)},
	}
	if !IsServiceActive(time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), windows) {
		t.Errorf("tanggal di irisan dua window harus aktif")
	}
	if IsServiceActive(time.Date(2026, 2, 21, 0, 0, 0, 0, time.UTC), windows) {
		t.Errorf("tanggal di luar union tidak boleh aktif")
	}
}
