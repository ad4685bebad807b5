package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Estados del ciclo de vida de una campaña.
const (
	StatusDraft     = "draft"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type CampaignModel struct {
	CampaignID     uuid.UUID `gorm:"column:campaign_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"campaign_id"`
	CampaignUserID uuid.UUID `gorm:"column:campaign_user_id;type:uuid;not null;index" json:"campaign_user_id"`

	CampaignTitle       string `gorm:"column:campaign_title;type:varchar(80);not null" json:"campaign_title"`
	CampaignSlug        string `gorm:"column:campaign_slug;type:varchar(120);uniqueIndex;not null" json:"campaign_slug"`
	CampaignDescription string `gorm:"column:campaign_description;type:varchar(150);not null" json:"campaign_description"`
	CampaignCategory    string `gorm:"column:campaign_category;type:varchar(30);not null;index" json:"campaign_category"`
	CampaignStory       string `gorm:"column:campaign_story;type:text" json:"campaign_story"`

	// Montos en bolivianos enteros, sin centavos.
	CampaignGoalAmount   int `gorm:"column:campaign_goal_amount;not null" json:"campaign_goal_amount"`
	CampaignRaisedAmount int `gorm:"column:campaign_raised_amount;not null;default:0" json:"campaign_raised_amount"`

	CampaignLocation string     `gorm:"column:campaign_location;type:varchar(30);index" json:"campaign_location"`
	CampaignProvince string     `gorm:"column:campaign_province;type:varchar(60)" json:"campaign_province"`
	CampaignEndDate  *time.Time `gorm:"column:campaign_end_date;type:date" json:"campaign_end_date,omitempty"`

	CampaignStatus                string `gorm:"column:campaign_status;type:varchar(20);not null;default:'draft';index" json:"campaign_status"`
	CampaignVerificationRequested bool   `gorm:"column:campaign_verification_requested;not null;default:false" json:"campaign_verification_requested"`
	CampaignVerified              bool   `gorm:"column:campaign_verified;not null;default:false" json:"campaign_verified"`

	CampaignRecipientType            string     `gorm:"column:campaign_recipient_type;type:varchar(30)" json:"campaign_recipient_type"`
	CampaignBeneficiariesDescription string     `gorm:"column:campaign_beneficiaries_description;type:text" json:"campaign_beneficiaries_description"`
	CampaignBeneficiaryName          string     `gorm:"column:campaign_beneficiary_name;type:varchar(120)" json:"campaign_beneficiary_name"`
	CampaignRelationship             string     `gorm:"column:campaign_relationship;type:varchar(60)" json:"campaign_relationship"`
	CampaignReason                   string     `gorm:"column:campaign_reason;type:text" json:"campaign_reason"`
	CampaignLegalEntityID            *uuid.UUID `gorm:"column:campaign_legal_entity_id;type:uuid" json:"campaign_legal_entity_id,omitempty"`

	CampaignYouTubeLinks pq.StringArray `gorm:"column:campaign_youtube_links;type:text[]" json:"campaign_youtube_links"`

	CampaignDonorCount int `gorm:"column:campaign_donor_count;not null;default:0" json:"campaign_donor_count"`

	CampaignCreatedAt time.Time      `gorm:"column:campaign_created_at;autoCreateTime" json:"campaign_created_at"`
	CampaignUpdatedAt time.Time      `gorm:"column:campaign_updated_at;autoUpdateTime" json:"campaign_updated_at"`
	CampaignDeletedAt gorm.DeletedAt `gorm:"column:campaign_deleted_at;index" json:"-"`
}

func (CampaignModel) TableName() string {
	return "campaigns"
}
