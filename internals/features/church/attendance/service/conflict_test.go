package service

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func conflictFixture(t *testing.T) ([]Report, []MemberInfo) {
	t.Helper()
	m, tribe, dept, _ := testRoster()

	// dua tanggal konflik + satu tanggal sepakat
	reports := []Report{
		newReport(tribe, day(2026, 2, 20),
			Record{ID: uuid.New(), MemberID: m.ID, Date: day(2026, 2, 8), Presence: presence(boolPtr(true), nil, nil)},
			Record{ID: uuid.New(), MemberID: m.ID, Date: day(2026, 2, 15), Presence: presence(boolPtr(false), nil, nil)},
			Record{ID: uuid.New(), MemberID: m.ID, Date: day(2026, 2, 22), Presence: presence(boolPtr(true), nil, nil)},
		),
		newReport(dept, day(2026, 2, 21),
			Record{ID: uuid.New(), MemberID: m.ID, Date: day(2026, 2, 8), Presence: presence(boolPtr(false), nil, nil)},
			Record{ID: uuid.New(), MemberID: m.ID, Date: day(2026, 2, 15), Presence: presence(boolPtr(true), nil, nil)},
			Record{ID: uuid.New(), MemberID: m.ID, Date: day(2026, 2, 22), Presence: presence(boolPtr(true), nil, nil)},
		),
	}
	return reports, []MemberInfo{m}
}

func TestDetectConflicts_GroupsByDateNewestFirst(t *testing.T) {
	reports, members := conflictFixture(t)

	tl, _, err := AggregateAcrossEntities(reports, members, day(2026, 2, 1), day(2026, 2, 28))
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	set := DetectConflicts(tl)

	if len(set) != 2 {
		t.Fatalf("grup konflik = %d, want 2 (tanggal sepakat tidak ikut)", len(set))
	}
	if !set[0].Date.Equal(day(2026, 2, 15)) || !set[1].Date.Equal(day(2026, 2, 8)) {
		t.Errorf("urutan grup harus tanggal terbaru duluan: %v lalu %v", set[0].Date, set[1].Date)
	}
	if set.Total() != 2 {
		t.Errorf("Total() = %d, want 2", set.Total())
	}
}

func TestDetectConflicts_PairCarriesBothValuesAndRecords(t *testing.T) {
	reports, members := conflictFixture(t)

	tl, _, _ := AggregateAcrossEntities(reports, members, day(2026, 2, 1), day(2026, 2, 28))
	set := DetectConflicts(tl)
	if len(set) == 0 || len(set[0].Conflicts) == 0 {
		t.Fatalf("konflik tidak terdeteksi")
	}

	c := set[0].Conflicts[0]
	if c.ValueA == c.ValueB {
		t.Errorf("pasangan konflik harus memuat dua nilai berbeda, got %v/%v", c.ValueA, c.ValueB)
	}
	if c.EntityA == c.EntityB {
		t.Errorf("pasangan konflik harus dari dua entitas berbeda")
	}
	if len(c.RecordIDs) != 2 {
		t.Errorf("record kontributor = %d, want 2", len(c.RecordIDs))
	}
}

func TestDetectConflicts_SymmetricOverReportOrder(t *testing.T) {
	reports, members := conflictFixture(t)
	from, to := day(2026, 2, 1), day(2026, 2, 28)

	tl1, _, _ := AggregateAcrossEntities(reports, members, from, to)
	tl2, _, _ := AggregateAcrossEntities([]Report{reports[1], reports[0]}, members, from, to)

	if !reflect.DeepEqual(DetectConflicts(tl1), DetectConflicts(tl2)) {
		t.Errorf("hasil deteksi berubah karena urutan laporan")
	}
}

func TestConflictSet_RecordIDsDeduplicated(t *testing.T) {
	reports, members := conflictFixture(t)

	tl, _, _ := AggregateAcrossEntities(reports, members, day(2026, 2, 1), day(2026, 2, 28))
	set := DetectConflicts(tl)

	ids := set.RecordIDs()
	if len(ids) != 4 {
		t.Fatalf("record id konflik = %d, want 4 (dua tanggal x dua record)", len(ids))
	}
	seen := make(map[uuid.UUID]struct{})
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			t.Fatalf("record id duplikat: %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestDetectConflicts_NoConflictOnAgreement(t *testing.T) {
	m, tribe, dept, _ := testRoster()
	reports := []Report{
		newReport(tribe, day(2026, 2, 9),
			Record{ID: uuid.New(), MemberID: m.ID, Date: day(2026, 2, 8), Presence: presence(boolPtr(true), nil, nil)}),
		newReport(dept, day(2026, 2, 10),
			Record{ID: uuid.New(), MemberID: m.ID, Date: day(2026, 2, 8), Presence: presence(boolPtr(true), nil, nil)}),
	}

	tl, _, _ := AggregateAcrossEntities(reports, []MemberInfo{m}, day(2026, 2, 1), day(2026, 2, 28))
	if set := DetectConflicts(tl); len(set) != 0 {
		t.Errorf("klaim sepakat menghasilkan konflik: %+v", set)
	}
}

func TestDetectConflicts_IndependentScopes(t *testing.T) {
	m, tribe, dept, _ := testRoster()
	// sepakat soal gereja, bertentangan soal service
	reports := []Report{
		newReport(tribe, day(2026, 2, 9),
			Record{ID: uuid.New(), MemberID: m.ID, Date: day(2026, 2, 8), Presence: presence(boolPtr(true), boolPtr(true), nil)}),
		newReport(dept, day(2026, 2, 10),
			Record{ID: uuid.New(), MemberID: m.ID, Date: day(2026, 2, 8), Presence: presence(boolPtr(true), boolPtr(false), nil)}),
	}

	tl, _, _ := AggregateAcrossEntities(reports, []MemberInfo{m}, day(2026, 2, 1), day(2026, 2, 28))
	set := DetectConflicts(tl)
	if set.Total() != 1 {
		t.Fatalf("Total() = %d, want hanya scope service yang konflik", set.Total())
	}
	if set[0].Conflicts[0].Scope != ScopeService {
		t.Errorf("scope konflik = %s, want %s", set[0].Conflicts[0].Scope, ScopeService)
	}
}
