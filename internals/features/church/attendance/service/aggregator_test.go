package service

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"gerejaku_backend/internals/constants"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func presence(church, svc, meeting *bool) map[Scope]*bool {
	return map[Scope]*bool{
		ScopeChurch:  church,
		ScopeService: svc,
		ScopeMeeting: meeting,
	}
}

func newReport(entity EntityRef, submittedAt time.Time, recs ...Record) Report {
	return Report{
		ID:          uuid.New(),
		Entity:      entity,
		SubmitterID: uuid.New(),
		SubmittedAt: submittedAt,
		Records:     recs,
	}
}

// testRoster: satu member dengan ketiga home entity terisi plus ref entitasnya.
func testRoster() (MemberInfo, EntityRef, EntityRef, EntityRef) {
	tribeID, deptID, hfID := uuid.New(), uuid.New(), uuid.New()
	m := MemberInfo{
		ID:            uuid.New(),
		Name:          "Andreas",
		TribeID:       &tribeID,
		DepartmentID:  &deptID,
		HonorFamilyID: &hfID,
		CreatedAt:     day(2025, 1, 1),
	}
	tribe := EntityRef{Type: constants.EntityTribe, ID: tribeID}
	dept := EntityRef{Type: constants.EntityDepartment, ID: deptID}
	hf := EntityRef{Type: constants.EntityHonorFamily, ID: hfID}
	return m, tribe, dept, hf
}

func TestAggregate_SingleClaim(t *testing.T) {
	m, tribe, _, _ := testRoster()
	sun := day(2026, 2, 8)

	rep := newReport(tribe, day(2026, 2, 9),
		Record{ID: uuid.New(), MemberID: m.ID, Date: sun, Presence: presence(boolPtr(true), nil, nil)})

	tl, warns, err := Aggregate([]Report{rep}, []MemberInfo{m}, tribe, day(2026, 2, 1), day(2026, 2, 28))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(warns) != 0 {
		t.Fatalf("warnings = %v, want none", warns)
	}

	entry, ok := tl.Entry(m.ID, sun)
	if !ok {
		t.Fatalf("entry untuk %v tidak ditemukan", sun)
	}
	st := entry.Scopes[ScopeChurch]
	if st.Value == nil || !*st.Value || st.Conflict {
		t.Errorf("church state = %+v, want value=true tanpa konflik", st)
	}
	if _, ok := entry.Scopes[ScopeService]; ok {
		t.Errorf("scope service tidak ditandai, tidak boleh punya state")
	}
}

func TestAggregate_NilPresenceIsNotFalse(t *testing.T) {
	m, tribe, _, _ := testRoster()
	sun := day(2026, 2, 8)

	rep := newReport(tribe, day(2026, 2, 9),
		Record{ID: uuid.New(), MemberID: m.ID, Date: sun, Presence: presence(boolPtr(false), nil, nil)})

	tl, _, err := Aggregate([]Report{rep}, []MemberInfo{m}, tribe, day(2026, 2, 1), day(2026, 2, 28))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	entry, _ := tl.Entry(m.ID, sun)
	church := entry.Scopes[ScopeChurch]
	if church.Value == nil || *church.Value {
		t.Errorf("church eksplisit false harus tersimpan sebagai false, got %+v", church)
	}
	// nil = tidak ditandai; bedanya dengan false harus terjaga lewat ketiadaan state
	if _, ok := entry.Scopes[ScopeService]; ok {
		t.Errorf("service nil tidak boleh berubah jadi state apa pun")
	}
}

func TestAggregate_AgreeingClaimsCollapse(t *testing.T) {
	m, tribe, _, hf := testRoster()
	sun := day(2026, 2, 8)

	reports := []Report{
		newReport(tribe, day(2026, 2, 9),
			Record{ID: uuid.New(), MemberID: m.ID, Date: sun, Presence: presence(boolPtr(true), nil, nil)}),
		newReport(hf, day(2026, 2, 10),
			Record{ID: uuid.New(), MemberID: m.ID, Date: sun, Presence: presence(boolPtr(true), nil, nil)}),
	}

	tl, warns, err := Aggregate(reports, []MemberInfo{m}, hf, day(2026, 2, 1), day(2026, 2, 28))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(warns) != 0 {
		t.Fatalf("klaim sepakat bukan anomali, warnings = %v", warns)
	}

	entry, _ := tl.Entry(m.ID, sun)
	st := entry.Scopes[ScopeChurch]
	if st.Conflict {
		t.Errorf("klaim sepakat tidak boleh konflik")
	}
	if st.Value == nil || !*st.Value {
		t.Errorf("nilai hasil collapse = %+v, want true", st.Value)
	}
	if len(st.Claims) != 2 {
		t.Errorf("kedua klaim tetap tercatat, len = %d", len(st.Claims))
	}
}

func TestAggregate_DisagreementKeepsBothClaims(t *testing.T) {
	m, tribe, dept, hf := testRoster()
	sun := day(2026, 2, 8)

	reports := []Report{
		newReport(tribe, day(2026, 2, 9),
			Record{ID: uuid.New(), MemberID: m.ID, Date: sun, Presence: presence(boolPtr(true), nil, nil)}),
		newReport(dept, day(2026, 2, 10),
			Record{ID: uuid.New(), MemberID: m.ID, Date: sun, Presence: presence(boolPtr(false), nil, nil)}),
	}

	tl, _, err := Aggregate(reports, []MemberInfo{m}, hf, day(2026, 2, 1), day(2026, 2, 28))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	entry, _ := tl.Entry(m.ID, sun)
	st := entry.Scopes[ScopeChurch]
	if !st.Conflict {
		t.Fatalf("tribe=hadir vs department=absen harus konflik")
	}
	if st.Value != nil {
		t.Errorf("konflik tidak boleh punya nilai otoritatif, got %v", *st.Value)
	}
	if len(st.Claims) != 2 {
		t.Errorf("kedua klaim harus dipertahankan, len = %d", len(st.Claims))
	}
}

func TestAggregate_OrderIndependence(t *testing.T) {
	m, tribe, dept, hf := testRoster()
	sun := day(2026, 2, 8)

	a := newReport(tribe, day(2026, 2, 9),
		Record{ID: uuid.New(), MemberID: m.ID, Date: sun, Presence: presence(boolPtr(true), boolPtr(true), nil)})
	b := newReport(dept, day(2026, 2, 10),
		Record{ID: uuid.New(), MemberID: m.ID, Date: sun, Presence: presence(boolPtr(false), nil, nil)})

	from, to := day(2026, 2, 1), day(2026, 2, 28)
	tl1, w1, err := Aggregate([]Report{a, b}, []MemberInfo{m}, hf, from, to)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	tl2, w2, err := Aggregate([]Report{b, a}, []MemberInfo{m}, hf, from, to)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	if !reflect.DeepEqual(tl1, tl2) {
		t.Errorf("timeline berubah karena urutan input:\n%+v\nvs\n%+v", tl1, tl2)
	}
	if !reflect.DeepEqual(w1, w2) {
		t.Errorf("warnings berubah karena urutan input: %v vs %v", w1, w2)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	m, tribe, _, _ := testRoster()
	rep := newReport(tribe, day(2026, 2, 9),
		Record{ID: uuid.New(), MemberID: m.ID, Date: day(2026, 2, 8), Presence: presence(boolPtr(true), nil, nil)})

	from, to := day(2026, 2, 1), day(2026, 2, 28)
	tl1, _, _ := Aggregate([]Report{rep}, []MemberInfo{m}, tribe, from, to)
	tl2, _, _ := Aggregate([]Report{rep}, []MemberInfo{m}, tribe, from, to)
	if !reflect.DeepEqual(tl1, tl2) {
		t.Errorf("dua kali agregasi input sama menghasilkan timeline berbeda")
	}
}

func TestAggregate_DuplicateSameEntityWarnsEarliestWins(t *testing.T) {
	m, tribe, _, _ := testRoster()
	sun := day(2026, 2, 8)

	earlier := newReport(tribe, day(2026, 2, 9),
		Record{ID: uuid.New(), MemberID: m.ID, Date: sun, Presence: presence(boolPtr(true), nil, nil)})
	later := newReport(tribe, day(2026, 2, 11),
		Record{ID: uuid.New(), MemberID: m.ID, Date: sun, Presence: presence(boolPtr(false), nil, nil)})

	// input sengaja dibalik; pemenang ditentukan waktu submit, bukan urutan slice
	tl, warns, err := Aggregate([]Report{later, earlier}, []MemberInfo{m}, tribe, day(2026, 2, 1), day(2026, 2, 28))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	entry, _ := tl.Entry(m.ID, sun)
	st := entry.Scopes[ScopeChurch]
	if st.Conflict {
		t.Errorf("duplikat entitas sama bukan konflik")
	}
	if st.Value == nil || !*st.Value {
		t.Errorf("klaim submit paling awal yang menang, got %+v", st.Value)
	}

	if len(warns) != 1 || warns[0].Reason != WarnDuplicateClaim {
		t.Fatalf("warnings = %v, want satu %s", warns, WarnDuplicateClaim)
	}
}

func TestAggregate_OutsideMembershipWarnsButKeepsRecord(t *testing.T) {
	m, tribe, _, _ := testRoster()
	m.CreatedAt = day(2026, 2, 10)
	sun := day(2026, 2, 8) // sebelum member dibuat

	rep := newReport(tribe, day(2026, 2, 9),
		Record{ID: uuid.New(), MemberID: m.ID, Date: sun, Presence: presence(boolPtr(true), nil, nil)})

	tl, warns, err := Aggregate([]Report{rep}, []MemberInfo{m}, tribe, day(2026, 2, 1), day(2026, 2, 28))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	if len(warns) != 1 || warns[0].Reason != WarnOutsideMembership {
		t.Fatalf("warnings = %v, want satu %s", warns, WarnOutsideMembership)
	}
	if _, ok := tl.Entry(m.ID, sun); !ok {
		t.Errorf("record anomali tetap masuk timeline, bukan dibuang diam-diam")
	}
}

func TestAggregate_IrrelevantEntityIgnored(t *testing.T) {
	m, tribe, _, _ := testRoster()
	otherTribe := EntityRef{Type: constants.EntityTribe, ID: uuid.New()}

	rep := newReport(otherTribe, day(2026, 2, 9),
		Record{ID: uuid.New(), MemberID: m.ID, Date: day(2026, 2, 8), Presence: presence(boolPtr(true), nil, nil)})

	tl, _, err := Aggregate([]Report{rep}, []MemberInfo{m}, tribe, day(2026, 2, 1), day(2026, 2, 28))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if _, ok := tl.Entry(m.ID, day(2026, 2, 8)); ok {
		t.Errorf("laporan dari tribe yang bukan home member tidak boleh diklaim")
	}
}

func TestAggregate_InvalidDateRange(t *testing.T) {
	m, tribe, _, _ := testRoster()
	_, _, err := Aggregate(nil, []MemberInfo{m}, tribe, day(2026, 2, 28), day(2026, 2, 1))
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("err = %v, want ErrInvalidDateRange", err)
	}
}

func TestAggregate_EmptyMemberSet(t *testing.T) {
	_, tribe, _, _ := testRoster()
	_, _, err := Aggregate(nil, nil, tribe, day(2026, 2, 1), day(2026, 2, 28))
	if !errors.Is(err, ErrEmptyMemberSet) {
		t.Fatalf("err = %v, want ErrEmptyMemberSet", err)
	}
}

func TestAggregate_UnknownEntityType(t *testing.T) {
	m, _, _, _ := testRoster()
	bad := EntityRef{Type: "CELL_GROUP", ID: uuid.New()}
	_, _, err := Aggregate(nil, []MemberInfo{m}, bad, day(2026, 2, 1), day(2026, 2, 28))
	if !errors.Is(err, ErrUnknownEntityType) {
		t.Fatalf("err = %v, want ErrUnknownEntityType", err)
	}
}

func TestAggregateAcrossEntities_DetectsCrossEntityConflict(t *testing.T) {
	m, tribe, dept, _ := testRoster()
	sun := day(2026, 2, 8)

	reports := []Report{
		newReport(tribe, day(2026, 2, 9),
			Record{ID: uuid.New(), MemberID: m.ID, Date: sun, Presence: presence(boolPtr(true), nil, nil)}),
		newReport(dept, day(2026, 2, 10),
			Record{ID: uuid.New(), MemberID: m.ID, Date: sun, Presence: presence(boolPtr(false), nil, nil)}),
	}

	tl, _, err := AggregateAcrossEntities(reports, []MemberInfo{m}, day(2026, 2, 1), day(2026, 2, 28))
	if err != nil {
		t.Fatalf("AggregateAcrossEntities: %v", err)
	}
	entry, _ := tl.Entry(m.ID, sun)
	if !entry.Scopes[ScopeChurch].Conflict {
		t.Errorf("konflik tribe vs department harus terlihat tanpa konteks entitas peminta")
	}
}
