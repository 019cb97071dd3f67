// internals/features/church/attendance/controller/church_service_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	"gerejaku_backend/internals/features/church/attendance/dto"
	"gerejaku_backend/internals/features/church/attendance/model"
	helper "gerejaku_backend/internals/helpers"
)

type ChurchServiceController struct {
	DB *gorm.DB
}

func NewChurchServiceController(db *gorm.DB) *ChurchServiceController {
	return &ChurchServiceController{DB: db}
}

// 🟢 POST /api/a/church-services
func (ctrl *ChurchServiceController) CreateChurchService(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateChurchServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.CanHaveService(req.ChurchServiceEntityType) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Entitas ini tidak bisa punya window service")
	}

	newWindow, err := req.ToModel(churchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Create(newWindow).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan window service: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan window service")
	}

	return helper.JsonCreated(c, "Window service berhasil ditambahkan", dto.ToChurchServiceResponse(newWindow))
}

// 🔵 GET /api/a/church-services/by-entity?entity_type=&entity_id=
func (ctrl *ChurchServiceController) GetChurchServicesByEntity(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}
	entity, err := parseEntityQuery(c)
	if err != nil {
		return err
	}

	var rows []model.ChurchServiceModel
	if err := ctrl.DB.
		Where("church_service_church_id = ?", churchID).
		Where("church_service_entity_type = ? AND church_service_entity_id = ?", entity.Type, entity.ID).
		Order("church_service_from ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil window service %s/%s: %v", entity.Type, entity.ID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil window service")
	}

	return helper.JsonOK(c, "Berhasil mengambil window service", dto.ToChurchServiceResponseList(rows))
}

// 🔴 DELETE /api/a/church-services/:id
func (ctrl *ChurchServiceController) DeleteChurchService(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromContext(c)
	if err != nil {
		return err
	}
	windowID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID window tidak valid")
	}

	res := ctrl.DB.
		Where("church_service_id = ? AND church_service_church_id = ?", windowID, churchID).
		Delete(&model.ChurchServiceModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Gagal menghapus window service %s: %v", windowID, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus window service")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Window service tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Window service berhasil dihapus", fiber.Map{"church_service_id": windowID})
}
