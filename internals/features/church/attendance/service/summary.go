// internals/features/church/attendance/service/summary.go
package service

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"gerejaku_backend/internals/constants"
)

// GridCell — satu tanggal pada grid bulan berjalan seorang member.
// Church/Service/Meeting tri-state: nil = unknown, bukan absen.
type GridCell struct {
	Date          time.Time `json:"date"`
	Church        *bool     `json:"church"`
	Service       *bool     `json:"service"`
	Meeting       *bool     `json:"meeting"`
	HasConflict   bool      `json:"has_conflict"`
	ServiceActive bool      `json:"service_active"`
}

// ScopeResume — hitungan dan persentase satu scope untuk satu bulan.
// Percentage dihitung atas jumlah tanggal eligible bulan itu sendiri — bulan
// parsial (member masuk pertengahan bulan) tidak boleh dihukum penyebut 4
// kalau tanggal eligible-nya cuma 2.
type ScopeResume struct {
	Present    int      `json:"present"`
	Absent     int      `json:"absent"`
	Unknown    int      `json:"unknown"`
	Eligible   int      `json:"eligible"`
	Percentage *float64 `json:"percentage"`
}

// MonthResume — resume satu bulan per scope. Meeting hanya terisi untuk
// konteks honor family.
type MonthResume struct {
	Church  ScopeResume  `json:"church"`
	Service ScopeResume  `json:"service"`
	Meeting *ScopeResume `json:"meeting,omitempty"`
}

// MemberAttendanceSummary — struktur final per member yang dikonsumsi
// dashboard/ekspor.
type MemberAttendanceSummary struct {
	MemberID            uuid.UUID       `json:"member_id"`
	Name                string          `json:"name"`
	IsNew               bool            `json:"is_new"`
	IsArchived          bool            `json:"is_archived"`
	CurrentMonthGrid    []GridCell      `json:"current_month_grid"`
	CurrentMonthResume  *MonthResume    `json:"current_month_resume"`
	PreviousMonthResume *MonthResume    `json:"previous_month_resume"`
	Regularity          *Classification `json:"regularity"`
}

// SummaryInput — bahan BuildSummary untuk satu member; semuanya sudah di-fetch
// dan diagregasi oleh caller.
type SummaryInput struct {
	Member           MemberInfo
	Requesting       EntityRef
	MonthStart       time.Time
	CurrentEntries   []TimelineEntry
	PreviousEntries  []TimelineEntry
	CurrentEligible  []time.Time
	PreviousEligible []time.Time
	Windows          []ServiceWindow
	Classification   *Classification
}

// BuildSummary merakit output per member: grid per tanggal bulan berjalan,
// resume bulan berjalan + bulan lalu, dan tier keteraturan.
//
// Bulan lalu tanpa tanggal eligible (mis. member baru bergabung bulan ini)
// menghasilkan resume nil, bukan nol — nol akan berbohong "eligible tapi absen
// sebulan penuh".
func BuildSummary(in SummaryInput) MemberAttendanceSummary {
	meeting := in.Requesting.Type == constants.EntityHonorFamily
	_, monthEnd := MonthRange(in.MonthStart)

	return MemberAttendanceSummary{
		MemberID:            in.Member.ID,
		Name:                in.Member.Name,
		IsNew:               isNewMember(in.Member, in.MonthStart, monthEnd),
		IsArchived:          in.Member.DeletedAt != nil,
		CurrentMonthGrid:    buildGrid(in.CurrentEntries, in.CurrentEligible, in.Windows),
		CurrentMonthResume:  buildMonthResume(in.CurrentEntries, in.CurrentEligible, in.Windows, meeting),
		PreviousMonthResume: buildMonthResume(in.PreviousEntries, in.PreviousEligible, in.Windows, meeting),
		Regularity:          in.Classification,
	}
}

func isNewMember(m MemberInfo, monthStart, monthEnd time.Time) bool {
	joined := NormalizeDay(m.CreatedAt)
	return !joined.Before(monthStart) && !joined.After(monthEnd)
}

func buildGrid(entries []TimelineEntry, eligible []time.Time, windows []ServiceWindow) []GridCell {
	byDate := make(map[time.Time]TimelineEntry, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e
	}

	grid := make([]GridCell, 0, len(eligible))
	for _, d0 := range eligible {
		d := NormalizeDay(d0)
		cell := GridCell{Date: d, ServiceActive: IsServiceActive(d, windows)}
		if e, ok := byDate[d]; ok {
			cell.Church = scopeValue(e, ScopeChurch)
			cell.Service = scopeValue(e, ScopeService)
			cell.Meeting = scopeValue(e, ScopeMeeting)
			cell.HasConflict = entryHasConflict(e)
		}
		grid = append(grid, cell)
	}
	return grid
}

func buildMonthResume(entries []TimelineEntry, eligible []time.Time, windows []ServiceWindow, includeMeeting bool) *MonthResume {
	if len(eligible) == 0 {
		return nil
	}

	byDate := make(map[time.Time]TimelineEntry, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e
	}

	// Penyebut service hanya tanggal eligible yang service-nya memang aktif;
	// record yang mengklaim inService pada tanggal tanpa window aktif tidak
	// ikut dihitung sama sekali.
	var serviceDates []time.Time
	for _, d := range eligible {
		if IsServiceActive(d, windows) {
			serviceDates = append(serviceDates, NormalizeDay(d))
		}
	}

	out := &MonthResume{
		Church:  scopeResume(byDate, eligible, ScopeChurch),
		Service: scopeResume(byDate, serviceDates, ScopeService),
	}
	if includeMeeting {
		meeting := scopeResume(byDate, eligible, ScopeMeeting)
		out.Meeting = &meeting
	}
	return out
}

func scopeResume(byDate map[time.Time]TimelineEntry, dates []time.Time, sc Scope) ScopeResume {
	r := ScopeResume{Eligible: len(dates)}
	for _, d0 := range dates {
		d := NormalizeDay(d0)
		e, ok := byDate[d]
		if !ok {
			r.Unknown++
			continue
		}
		v := scopeValue(e, sc)
		switch {
		case v == nil:
			r.Unknown++
		case *v:
			r.Present++
		default:
			r.Absent++
		}
	}
	if r.Eligible > 0 {
		pct := float64(r.Present) / float64(r.Eligible) * 100
		r.Percentage = &pct
	}
	return r
}

func scopeValue(e TimelineEntry, sc Scope) *bool {
	st, ok := e.Scopes[sc]
	if !ok {
		return nil
	}
	return st.Value
}

func entryHasConflict(e TimelineEntry) bool {
	for _, st := range e.Scopes {
		if st.Conflict {
			return true
		}
	}
	return false
}

/* ===================== ORKESTRASI BULANAN ===================== */

// MonthlyInput — seluruh bahan satu permintaan resume bulanan. Fetch-nya
// dilakukan caller (fan-out konkuren); di sini tinggal komputasi murni.
type MonthlyInput struct {
	Requesting      EntityRef
	Anchor          time.Time // tanggal apa pun di bulan yang diminta
	Members         []MemberInfo
	CurrentReports  []Report
	PreviousReports []Report
	Windows         []ServiceWindow
}

// MonthlyResult — resume seluruh roster + konflik bulan berjalan + peringatan
// integritas data.
type MonthlyResult struct {
	Summaries []MemberAttendanceSummary `json:"summaries"`
	Conflicts ConflictSet               `json:"conflicts"`
	Warnings  []IntegrityWarning        `json:"warnings,omitempty"`
}

// BuildMonthlySummaries menjalankan seluruh pipeline: agregasi bulan berjalan
// dan bulan lalu, deteksi konflik, klasifikasi keteraturan, lalu perakitan
// resume per member. Menjalankan dua kali dengan input sama menghasilkan
// output sama persis.
func BuildMonthlySummaries(in MonthlyInput) (MonthlyResult, error) {
	curStart, curEnd := MonthRange(in.Anchor)
	prevStart, prevEnd := MonthRange(curStart.AddDate(0, -1, 0))

	currentTL, curWarns, err := Aggregate(in.CurrentReports, in.Members, in.Requesting, curStart, curEnd)
	if err != nil {
		return MonthlyResult{}, err
	}
	previousTL, prevWarns, err := Aggregate(in.PreviousReports, in.Members, in.Requesting, prevStart, prevEnd)
	if err != nil {
		return MonthlyResult{}, err
	}

	curSundays := SundaysInMonth(curStart)
	prevSundays := SundaysInMonth(prevStart)

	summaries := make([]MemberAttendanceSummary, 0, len(in.Members))
	for _, m := range in.Members {
		curEligible := EligibleDates(curSundays, m)
		prevEligible := EligibleDates(prevSundays, m)
		curEntries := currentTL[m.ID]

		summaries = append(summaries, BuildSummary(SummaryInput{
			Member:           m,
			Requesting:       in.Requesting,
			MonthStart:       curStart,
			CurrentEntries:   curEntries,
			PreviousEntries:  previousTL[m.ID],
			CurrentEligible:  curEligible,
			PreviousEligible: prevEligible,
			Windows:          in.Windows,
			Classification:   Classify(curEntries, curEligible),
		}))
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Name != summaries[j].Name {
			return summaries[i].Name < summaries[j].Name
		}
		return strings.Compare(summaries[i].MemberID.String(), summaries[j].MemberID.String()) < 0
	})

	return MonthlyResult{
		Summaries: summaries,
		Conflicts: DetectConflicts(currentTL),
		Warnings:  append(curWarns, prevWarns...),
	}, nil
}
