package constants

// Tag entitas yang boleh mengirim laporan kehadiran.
// Nilai string ini tersimpan di DB (kolom *_entity_type), jangan diubah sembarangan.
const (
	EntityTribe       = "TRIBE"
	EntityDepartment  = "DEPARTMENT"
	EntityHonorFamily = "HONOR_FAMILY"
)

// ==========================
// ✅ Grouped Entity Slices
// ==========================
var (
	AllEntityTypes = []string{
		EntityTribe,
		EntityDepartment,
		EntityHonorFamily,
	}

	// Entitas yang bisa punya jadwal service (ibadah kedua)
	ServiceCapableEntities = []string{
		EntityTribe,
		EntityDepartment,
	}
)

// IsValidEntityType cek apakah tag entitas dikenal.
func IsValidEntityType(t string) bool {
	for _, v := range AllEntityTypes {
		if v == t {
			return true
		}
	}
	return false
}

// CanHaveService cek apakah entitas boleh punya jadwal service.
func CanHaveService(t string) bool {
	for _, v := range ServiceCapableEntities {
		if v == t {
			return true
		}
	}
	return false
}
