// internals/features/church/entities/controller/entity_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/church/entities/dto"
	"gerejaku_backend/internals/features/church/entities/model"
	helper "gerejaku_backend/internals/helpers"
)

type EntityController struct {
	DB *gorm.DB
}

func NewEntityController(db *gorm.DB) *EntityController {
	return &EntityController{DB: db}
}

/* ===================== TRIBES ===================== */

// 🟢 POST /api/a/tribes
func (ctrl *EntityController) CreateTribe(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}
	req, err := parseEntityBody(c)
	if err != nil {
		return err
	}

	newTribe := &model.TribeModel{
		TribeChurchID: churchID,
		TribeName:     req.Name,
		TribeLeaderID: req.LeaderID,
	}
	if err := ctrl.DB.Create(newTribe).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan tribe: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tribe")
	}
	return helper.JsonCreated(c, "Tribe berhasil ditambahkan", dto.ToTribeResponse(newTribe))
}

// 🔵 GET /api/a/tribes
func (ctrl *EntityController) GetTribes(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}
	var rows []model.TribeModel
	if err := ctrl.DB.
		Where("tribe_church_id = ?", churchID).
		Order("tribe_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar tribe")
	}
	out := make([]dto.EntityResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *dto.ToTribeResponse(&rows[i]))
	}
	return helper.JsonOK(c, "Berhasil mengambil daftar tribe", out)
}

/* ===================== DEPARTMENTS ===================== */

// 🟢 POST /api/a/departments
func (ctrl *EntityController) CreateDepartment(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}
	req, err := parseEntityBody(c)
	if err != nil {
		return err
	}

	newDept := &model.DepartmentModel{
		DepartmentChurchID: churchID,
		DepartmentName:     req.Name,
		DepartmentLeaderID: req.LeaderID,
	}
	if err := ctrl.DB.Create(newDept).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan department: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan department")
	}
	return helper.JsonCreated(c, "Department berhasil ditambahkan", dto.ToDepartmentResponse(newDept))
}

// 🔵 GET /api/a/departments
func (ctrl *EntityController) GetDepartments(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}
	var rows []model.DepartmentModel
	if err := ctrl.DB.
		Where("department_church_id = ?", churchID).
		Order("department_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar department")
	}
	out := make([]dto.EntityResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *dto.ToDepartmentResponse(&rows[i]))
	}
	return helper.JsonOK(c, "Berhasil mengambil daftar department", out)
}

/* ===================== HONOR FAMILIES ===================== */

// 🟢 POST /api/a/honor-families
func (ctrl *EntityController) CreateHonorFamily(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}
	req, err := parseEntityBody(c)
	if err != nil {
		return err
	}

	newFamily := &model.HonorFamilyModel{
		HonorFamilyChurchID: churchID,
		HonorFamilyName:     req.Name,
		HonorFamilyLeaderID: req.LeaderID,
	}
	if err := ctrl.DB.Create(newFamily).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan honor family: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan honor family")
	}
	return helper.JsonCreated(c, "Honor family berhasil ditambahkan", dto.ToHonorFamilyResponse(newFamily))
}

// 🔵 GET /api/a/honor-families
func (ctrl *EntityController) GetHonorFamilies(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}
	var rows []model.HonorFamilyModel
	if err := ctrl.DB.
		Where("honor_family_church_id = ?", churchID).
		Order("honor_family_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar honor family")
	}
	out := make([]dto.EntityResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *dto.ToHonorFamilyResponse(&rows[i]))
	}
	return helper.JsonOK(c, "Berhasil mengambil daftar honor family", out)
}

func parseEntityBody(c *fiber.Ctx) (dto.CreateEntityRequest, error) {
	var req dto.CreateEntityRequest
	if err := c.BodyParser(&req); err != nil {
		return req, fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return req, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return req, nil
}
