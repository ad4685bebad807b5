package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campaignModel "donavida_backend/internals/features/campaigns/campaigns/model"
	"donavida_backend/internals/features/community/comments/model"
	notifService "donavida_backend/internals/features/community/notifications/service"
	helper "donavida_backend/internals/helpers"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

// List: GET /api/public/campaigns/:id/comments
func (ctl *CommentController) List(c *fiber.Ctx) error {
	campaignID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Id de campaña inválido")
	}
	p := helper.ParseFiber(c, "newest", "desc", helper.DefaultOpts)

	q := ctl.DB.WithContext(c.Context()).Model(&model.CommentModel{}).
		Where("comment_campaign_id = ?", campaignID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron cargar los comentarios")
	}
	var rows []model.CommentModel
	if err := q.Order("comment_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron cargar los comentarios")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildMeta(total, p))
}

type createCommentRequest struct {
	Body string `json:"body"`
}

// Create: POST /api/u/campaigns/:id/comments — solo sobre campañas visibles.
func (ctl *CommentController) Create(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	campaignID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Id de campaña inválido")
	}

	var body createCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	text := strings.TrimSpace(body.Body)
	if n := len([]rune(text)); n < 1 || n > 500 {
		return helper.JsonValidationError(c, map[string][]string{
			"body": {"El comentario debe tener entre 1 y 500 caracteres"},
		})
	}

	var camp campaignModel.CampaignModel
	err = ctl.DB.WithContext(c.Context()).
		Select("campaign_id", "campaign_user_id", "campaign_title").
		Where("campaign_id = ? AND campaign_status IN ?", campaignID,
			[]string{campaignModel.StatusActive, campaignModel.StatusCompleted}).
		First(&camp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Campaña no encontrada")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo publicar el comentario")
	}

	userName, _ := c.Locals("user_name").(string)
	row := model.CommentModel{
		CommentCampaignID: campaignID,
		CommentUserID:     userID,
		CommentUserName:   userName,
		CommentBody:       text,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		log.Printf("[ERROR] creando comentario campaña=%s: %v", campaignID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo publicar el comentario")
	}

	// el organizador no se notifica a sí mismo
	if camp.CampaignUserID != userID {
		notifService.Emit(ctl.DB.WithContext(c.Context()),
			notifService.NewCommentReceived(camp.CampaignUserID, campaignID, row.CommentID, userName, camp.CampaignTitle))
	}
	return helper.JsonCreated(c, "Comentario publicado", row)
}

// Delete: DELETE /api/u/comments/:id — solo el autor.
func (ctl *CommentController) Delete(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	commentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Id inválido")
	}
	res := ctl.DB.WithContext(c.Context()).
		Where("comment_id = ? AND comment_user_id = ?", commentID, userID).
		Delete(&model.CommentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar el comentario")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Comentario no encontrado")
	}
	return helper.JsonDeleted(c, "Comentario eliminado", fiber.Map{"commentId": commentID})
}
