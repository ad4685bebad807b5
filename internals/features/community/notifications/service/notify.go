package service

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"donavida_backend/internals/features/community/notifications/model"
)

// NewCampaignPublished arma la notificación que recibe el organizador cuando
// su borrador pasa a activo (publicación directa o con verificación).
func NewCampaignPublished(organizerID, campaignID uuid.UUID, title string) model.NotificationModel {
	payload, _ := json.Marshal(map[string]interface{}{
		"campaignId": campaignID,
	})
	return model.NotificationModel{
		NotificationUserID: organizerID,
		NotificationType:   model.TypeCampaignPublished,
		NotificationTitle:  "¡Tu campaña está activa!",
		NotificationBody:   fmt.Sprintf("\"%s\" ya es visible para los donantes", title),
		NotificationData:   datatypes.JSON(payload),
	}
}

// NewCommentReceived arma la notificación para el organizador cuando alguien
// comenta su campaña.
func NewCommentReceived(organizerID, campaignID, commentID uuid.UUID, commenterName, campaignTitle string) model.NotificationModel {
	if commenterName == "" {
		commenterName = "Alguien"
	}
	payload, _ := json.Marshal(map[string]interface{}{
		"campaignId": campaignID,
		"commentId":  commentID,
	})
	return model.NotificationModel{
		NotificationUserID: organizerID,
		NotificationType:   model.TypeCommentReceived,
		NotificationTitle:  "Nuevo comentario",
		NotificationBody:   fmt.Sprintf("%s comentó en \"%s\"", commenterName, campaignTitle),
		NotificationData:   datatypes.JSON(payload),
	}
}

// Emit guarda la notificación sin tumbar la operación que la originó: un
// fallo aquí solo se registra.
func Emit(db *gorm.DB, n model.NotificationModel) {
	if err := db.Create(&n).Error; err != nil {
		log.Printf("[WARN] notificación %s usuario=%s: %v", n.NotificationType, n.NotificationUserID, err)
	}
}
