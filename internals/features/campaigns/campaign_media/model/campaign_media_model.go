package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// CampaignMediaModel: una foto (o video) de campaña. Exactamente una fila
// por campaña lleva is_primary = true mientras la campaña tenga media.
type CampaignMediaModel struct {
	CampaignMediaID         uuid.UUID `gorm:"column:campaign_media_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"campaign_media_id"`
	CampaignMediaCampaignID uuid.UUID `gorm:"column:campaign_media_campaign_id;type:uuid;not null;index" json:"campaign_media_campaign_id"`

	CampaignMediaURL        string `gorm:"column:campaign_media_url;type:text;not null" json:"campaign_media_url"`
	CampaignMediaType       string `gorm:"column:campaign_media_type;type:varchar(10);not null;default:'image'" json:"campaign_media_type"`
	CampaignMediaIsPrimary  bool   `gorm:"column:campaign_media_is_primary;not null;default:false" json:"campaign_media_is_primary"`
	CampaignMediaOrderIndex int    `gorm:"column:campaign_media_order_index;not null;default:0" json:"campaign_media_order_index"`

	CampaignMediaCreatedAt time.Time `gorm:"column:campaign_media_created_at;autoCreateTime" json:"campaign_media_created_at"`
}

func (CampaignMediaModel) TableName() string {
	return "campaign_medias"
}
