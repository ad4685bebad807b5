package dto

import (
	"time"

	"github.com/google/uuid"

	mediaModel "donavida_backend/internals/features/campaigns/campaign_media/model"
	"donavida_backend/internals/features/campaigns/campaigns/model"
	helper "donavida_backend/internals/helpers"
)

// CampaignListItem: tarjeta del listado público.
type CampaignListItem struct {
	CampaignID   uuid.UUID `json:"campaignId"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Location     string    `json:"location"`
	Verified     bool      `json:"verified"`
	GoalAmount   int       `json:"goalAmount"`
	RaisedAmount int       `json:"raisedAmount"`
	DonorCount   int       `json:"donorCount"`
	PrimaryImage string    `json:"primaryImage,omitempty"`
	EndDate      string    `json:"endDate,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CampaignDetail: vista completa de una campaña.
type CampaignDetail struct {
	CampaignListItem

	Story                    string   `json:"story"`
	Province                 string   `json:"province"`
	Status                   string   `json:"status"`
	RecipientType            string   `json:"recipientType"`
	BeneficiariesDescription string   `json:"beneficiariesDescription"`
	BeneficiaryName          string   `json:"beneficiaryName,omitempty"`
	GoalAmountFormatted      string   `json:"goalAmountFormatted"`
	RaisedAmountFormatted    string   `json:"raisedAmountFormatted"`
	Media                    []Media  `json:"media"`
	YouTubeLinks             []string `json:"youtubeLinks"`
	YouTubeURL               string   `json:"youtubeUrl"`
}

type Media struct {
	MediaURL   string `json:"mediaUrl"`
	Type       string `json:"type"`
	IsPrimary  bool   `json:"isPrimary"`
	OrderIndex int    `json:"orderIndex"`
}

func endDateString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func ToListItem(m *model.CampaignModel, primaryURL string) CampaignListItem {
	return CampaignListItem{
		CampaignID:   m.CampaignID,
		Slug:         m.CampaignSlug,
		Title:        m.CampaignTitle,
		Description:  m.CampaignDescription,
		Category:     m.CampaignCategory,
		Location:     m.CampaignLocation,
		Verified:     m.CampaignVerified,
		GoalAmount:   m.CampaignGoalAmount,
		RaisedAmount: m.CampaignRaisedAmount,
		DonorCount:   m.CampaignDonorCount,
		PrimaryImage: primaryURL,
		EndDate:      endDateString(m.CampaignEndDate),
		CreatedAt:    m.CampaignCreatedAt,
	}
}

func ToDetail(m *model.CampaignModel, media []mediaModel.CampaignMediaModel) CampaignDetail {
	items := make([]Media, 0, len(media))
	primary := ""
	for _, row := range media {
		if row.CampaignMediaIsPrimary {
			primary = row.CampaignMediaURL
		}
		items = append(items, Media{
			MediaURL:   row.CampaignMediaURL,
			Type:       row.CampaignMediaType,
			IsPrimary:  row.CampaignMediaIsPrimary,
			OrderIndex: row.CampaignMediaOrderIndex,
		})
	}
	links := []string(m.CampaignYouTubeLinks)
	if links == nil {
		links = []string{}
	}
	legacy := ""
	if len(links) > 0 {
		legacy = links[0]
	}
	return CampaignDetail{
		CampaignListItem: ToListItem(m, primary),

		Story:                    m.CampaignStory,
		Province:                 m.CampaignProvince,
		Status:                   m.CampaignStatus,
		RecipientType:            m.CampaignRecipientType,
		BeneficiariesDescription: m.CampaignBeneficiariesDescription,
		BeneficiaryName:          m.CampaignBeneficiaryName,
		GoalAmountFormatted:      helper.FormatAmount(m.CampaignGoalAmount),
		RaisedAmountFormatted:    helper.FormatAmount(m.CampaignRaisedAmount),
		Media:                    items,
		YouTubeLinks:             links,
		YouTubeURL:               legacy,
	}
}
