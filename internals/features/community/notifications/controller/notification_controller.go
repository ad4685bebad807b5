package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"donavida_backend/internals/features/community/notifications/model"
	helper "donavida_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// List: GET /api/u/notifications — no leídas primero.
func (ctl *NotificationController) List(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	p := helper.ParseFiber(c, "newest", "desc", helper.DefaultOpts)

	q := ctl.DB.WithContext(c.Context()).Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron cargar tus notificaciones")
	}
	var rows []model.NotificationModel
	if err := q.Order("notification_read ASC, notification_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron cargar tus notificaciones")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildMeta(total, p))
}

// MarkRead: PATCH /api/u/notifications/:id/read
func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	notifID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Id inválido")
	}
	res := ctl.DB.WithContext(c.Context()).Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", notifID, userID).
		Update("notification_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo marcar como leída")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notificación no encontrada")
	}
	return helper.JsonUpdated(c, "Notificación leída", fiber.Map{"notificationId": notifID})
}

// MarkAllRead: POST /api/u/notifications/read-all
func (ctl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	if err := ctl.DB.WithContext(c.Context()).Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read = false", userID).
		Update("notification_read", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron marcar como leídas")
	}
	return helper.JsonUpdated(c, "Notificaciones leídas", nil)
}
