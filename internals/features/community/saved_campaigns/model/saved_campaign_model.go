package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedCampaignModel: marcador "guardar para después". Un único par
// usuario-campaña (índice compuesto).
type SavedCampaignModel struct {
	SavedCampaignID         uuid.UUID `gorm:"column:saved_campaign_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"saved_campaign_id"`
	SavedCampaignUserID     uuid.UUID `gorm:"column:saved_campaign_user_id;type:uuid;not null;uniqueIndex:uq_saved_user_campaign" json:"saved_campaign_user_id"`
	SavedCampaignCampaignID uuid.UUID `gorm:"column:saved_campaign_campaign_id;type:uuid;not null;uniqueIndex:uq_saved_user_campaign" json:"saved_campaign_campaign_id"`

	SavedCampaignCreatedAt time.Time `gorm:"column:saved_campaign_created_at;autoCreateTime" json:"saved_campaign_created_at"`
}

func (SavedCampaignModel) TableName() string {
	return "saved_campaigns"
}
