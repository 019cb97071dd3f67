// internals/features/church/members/controller/member_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/church/members/dto"
	"gerejaku_backend/internals/features/church/members/model"
	helper "gerejaku_backend/internals/helpers"
)

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

// 🟢 POST /api/a/members
func (ctrl *MemberController) CreateMember(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	newMember := req.ToModel(churchID)
	if err := ctrl.DB.Create(newMember).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan member: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan member")
	}

	return helper.JsonCreated(c, "Member berhasil ditambahkan", dto.ToMemberResponse(newMember))
}

// 🔵 GET /api/a/members?include_archived=
func (ctrl *MemberController) GetMembers(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}
	includeArchived := c.QueryBool("include_archived", false)
	params := helper.ParseFiber(c, "name", "asc", helper.DefaultOpts)

	orderClause, err := params.SafeOrderClause(map[string]string{
		"name":       "member_name",
		"created_at": "member_created_at",
	}, "name")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter sort tidak valid")
	}

	q := ctrl.DB.Model(&model.MemberModel{})
	if includeArchived {
		q = q.Unscoped()
	}
	q = q.Where("member_church_id = ?", churchID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung member")
	}

	var rows []model.MemberModel
	if err := q.
		Order(strings.TrimPrefix(orderClause, "ORDER BY ")).
		Limit(params.Limit()).Offset(params.Offset()).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil daftar member: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar member")
	}

	meta := helper.BuildMeta(total, params)
	return helper.JsonList(c, "Berhasil mengambil daftar member", dto.ToMemberResponseList(rows), meta)
}

// 🟡 PUT /api/a/members/:id
func (ctrl *MemberController) UpdateMember(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID member tidak valid")
	}

	var req dto.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.MemberModel
	if err := ctrl.DB.
		Where("member_id = ? AND member_church_id = ?", memberID, churchID).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Member tidak ditemukan")
	}

	updates := map[string]interface{}{}
	if req.MemberName != nil {
		updates["member_name"] = *req.MemberName
	}
	if req.MemberPhone != nil {
		updates["member_phone"] = *req.MemberPhone
	}
	if req.MemberTribeID != nil {
		updates["member_tribe_id"] = *req.MemberTribeID
	}
	if req.MemberDepartmentID != nil {
		updates["member_department_id"] = *req.MemberDepartmentID
	}
	if req.MemberHonorFamilyID != nil {
		updates["member_honor_family_id"] = *req.MemberHonorFamilyID
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&existing).Updates(updates).Error; err != nil {
			log.Printf("[ERROR] Gagal memperbarui member %s: %v", memberID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui member")
		}
	}

	return helper.JsonUpdated(c, "Member berhasil diperbarui", dto.ToMemberResponse(&existing))
}

// 🔴 DELETE /api/a/members/:id
// Pengarsipan (soft delete): member hilang dari roster ke depan, record
// kehadiran historisnya TIDAK ikut terhapus.
func (ctrl *MemberController) ArchiveMember(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID member tidak valid")
	}

	res := ctrl.DB.
		Where("member_id = ? AND member_church_id = ?", memberID, churchID).
		Delete(&model.MemberModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Gagal mengarsipkan member %s: %v", memberID, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengarsipkan member")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Member tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Member berhasil diarsipkan", fiber.Map{"member_id": memberID})
}

// 🟢 POST /api/a/members/:id/restore
func (ctrl *MemberController) RestoreMember(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID member tidak valid")
	}

	res := ctrl.DB.Unscoped().Model(&model.MemberModel{}).
		Where("member_id = ? AND member_church_id = ?", memberID, churchID).
		Update("member_deleted_at", nil)
	if res.Error != nil {
		log.Printf("[ERROR] Gagal memulihkan member %s: %v", memberID, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulihkan member")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Member tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Member berhasil dipulihkan", fiber.Map{"member_id": memberID})
}
