package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentModel: mensaje de apoyo en la página de una campaña.
type CommentModel struct {
	CommentID         uuid.UUID `gorm:"column:comment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"comment_id"`
	CommentCampaignID uuid.UUID `gorm:"column:comment_campaign_id;type:uuid;not null;index" json:"comment_campaign_id"`
	CommentUserID     uuid.UUID `gorm:"column:comment_user_id;type:uuid;not null" json:"comment_user_id"`
	CommentUserName   string    `gorm:"column:comment_user_name;type:varchar(120);not null" json:"comment_user_name"`
	CommentBody       string    `gorm:"column:comment_body;type:varchar(500);not null" json:"comment_body"`

	CommentCreatedAt time.Time      `gorm:"column:comment_created_at;autoCreateTime" json:"comment_created_at"`
	CommentDeletedAt gorm.DeletedAt `gorm:"column:comment_deleted_at;index" json:"-"`
}

func (CommentModel) TableName() string {
	return "comments"
}
