// internals/features/church/attendance/service/resolver.go
package service

import (
	"github.com/google/uuid"

	"gerejaku_backend/internals/constants"
)

// RelevantEntities — hasil resolusi keanggotaan untuk satu member dalam satu
// konteks agregasi. Related selalu memuat Own; kosong kalau member tidak punya
// home entity untuk scope yang diminta (itu keadaan valid, bukan error).
type RelevantEntities struct {
	Own     *EntityRef
	Related []EntityRef
}

// ResolveRelevantEntities menentukan laporan entitas mana saja yang relevan
// untuk member ini dalam konteks requesting.
//
// Orang yang sama bisa dilacak oleh lebih dari satu entitas sekaligus: saat
// agregasi untuk honor family, kehadiran gereja member yang sama bisa dicatat
// oleh tribe atau department-nya, jadi laporan mereka ikut ditarik walaupun
// bukan milik entitas peminta.
func ResolveRelevantEntities(m MemberInfo, requesting EntityRef) RelevantEntities {
	home := homeEntityID(m, requesting.Type)
	if home == nil {
		return RelevantEntities{}
	}

	own := EntityRef{Type: requesting.Type, ID: *home}
	out := RelevantEntities{Own: &own, Related: []EntityRef{own}}

	if requesting.Type == constants.EntityHonorFamily {
		if m.TribeID != nil {
			out.Related = append(out.Related, EntityRef{Type: constants.EntityTribe, ID: *m.TribeID})
		}
		if m.DepartmentID != nil {
			out.Related = append(out.Related, EntityRef{Type: constants.EntityDepartment, ID: *m.DepartmentID})
		}
	}
	return out
}

// ResolveRosterEntities menggabungkan set relevansi seluruh roster (dipakai
// caller untuk menentukan entitas mana saja yang laporannya perlu di-fetch).
func ResolveRosterEntities(members []MemberInfo, requesting EntityRef) []EntityRef {
	seen := make(map[EntityRef]struct{})
	var out []EntityRef
	for _, m := range members {
		for _, e := range ResolveRelevantEntities(m, requesting).Related {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

// ResolveMemberEntities — seluruh home entity member (ketiga tipe sekaligus).
// Dipakai rekalkulasi konflik saat ingest: pertentangan tribe vs department
// harus tetap terdeteksi walau laporan pemicunya datang dari honor family.
func ResolveMemberEntities(m MemberInfo) []EntityRef {
	var out []EntityRef
	if m.TribeID != nil {
		out = append(out, EntityRef{Type: constants.EntityTribe, ID: *m.TribeID})
	}
	if m.DepartmentID != nil {
		out = append(out, EntityRef{Type: constants.EntityDepartment, ID: *m.DepartmentID})
	}
	if m.HonorFamilyID != nil {
		out = append(out, EntityRef{Type: constants.EntityHonorFamily, ID: *m.HonorFamilyID})
	}
	return out
}

// ResolveRosterAllEntities menggabungkan seluruh home entity semua member.
func ResolveRosterAllEntities(members []MemberInfo) []EntityRef {
	seen := make(map[EntityRef]struct{})
	var out []EntityRef
	for _, m := range members {
		for _, e := range ResolveMemberEntities(m) {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

func homeEntityID(m MemberInfo, entityType string) *uuid.UUID {
	switch entityType {
	case constants.EntityTribe:
		return m.TribeID
	case constants.EntityDepartment:
		return m.DepartmentID
	case constants.EntityHonorFamily:
		return m.HonorFamilyID
	}
	return nil
}
