package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	campaignModel "donavida_backend/internals/features/campaigns/campaigns/model"
	"donavida_backend/internals/features/community/saved_campaigns/model"
	helper "donavida_backend/internals/helpers"
)

type SavedCampaignController struct {
	DB *gorm.DB
}

func NewSavedCampaignController(db *gorm.DB) *SavedCampaignController {
	return &SavedCampaignController{DB: db}
}

// Save: PUT /api/u/saved/:id — idempotente (guardar dos veces no duplica).
func (ctl *SavedCampaignController) Save(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	campaignID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Id de campaña inválido")
	}

	var exists int64
	ctl.DB.WithContext(c.Context()).Model(&campaignModel.CampaignModel{}).
		Where("campaign_id = ?", campaignID).Count(&exists)
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Campaña no encontrada")
	}

	row := model.SavedCampaignModel{
		SavedCampaignUserID:     userID,
		SavedCampaignCampaignID: campaignID,
	}
	err = ctl.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar la campaña")
	}
	return helper.JsonUpdated(c, "Campaña guardada", fiber.Map{"campaignId": campaignID})
}

// Unsave: DELETE /api/u/saved/:id
func (ctl *SavedCampaignController) Unsave(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	campaignID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Id de campaña inválido")
	}
	if err := ctl.DB.WithContext(c.Context()).
		Where("saved_campaign_user_id = ? AND saved_campaign_campaign_id = ?", userID, campaignID).
		Delete(&model.SavedCampaignModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo quitar la campaña")
	}
	return helper.JsonDeleted(c, "Campaña quitada de guardados", fiber.Map{"campaignId": campaignID})
}

// List: GET /api/u/saved — campañas guardadas, más recientes primero.
func (ctl *SavedCampaignController) List(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	p := helper.ParseFiber(c, "newest", "desc", helper.DefaultOpts)

	q := ctl.DB.WithContext(c.Context()).Model(&campaignModel.CampaignModel{}).
		Joins("JOIN saved_campaigns ON saved_campaign_campaign_id = campaign_id").
		Where("saved_campaign_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron cargar tus guardados")
	}
	var rows []campaignModel.CampaignModel
	if err := q.Order("saved_campaign_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron cargar tus guardados")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildMeta(total, p))
}
