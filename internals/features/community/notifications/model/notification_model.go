package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Tipos de notificación emitidos por la plataforma.
const (
	TypeDonationReceived  = "donation_received"
	TypeCampaignPublished = "campaign_published"
	TypeCommentReceived   = "comment_received"
)

type NotificationModel struct {
	NotificationID     uuid.UUID      `gorm:"column:notification_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`
	NotificationUserID uuid.UUID      `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`
	NotificationType   string         `gorm:"column:notification_type;type:varchar(40);not null" json:"notification_type"`
	NotificationTitle  string         `gorm:"column:notification_title;type:varchar(160);not null" json:"notification_title"`
	NotificationBody   string         `gorm:"column:notification_body;type:text" json:"notification_body"`
	NotificationData   datatypes.JSON `gorm:"column:notification_data;type:jsonb" json:"notification_data,omitempty"`
	NotificationRead   bool           `gorm:"column:notification_read;not null;default:false" json:"notification_read"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
