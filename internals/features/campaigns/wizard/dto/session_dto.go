package dto

import (
	"github.com/google/uuid"

	"donavida_backend/internals/features/campaigns/wizard"
)

type MediaItemResponse struct {
	MediaURL   string `json:"mediaUrl"`
	Type       string `json:"type"`
	IsPrimary  bool   `json:"isPrimary"`
	OrderIndex int    `json:"orderIndex"`
}

// SessionResponse: snapshot del asistente para el cliente. youtubeUrl es la
// vista singular heredada (primer link de la lista) que el frontend viejo
// todavía lee; la lista es la fuente de verdad.
type SessionResponse struct {
	SessionID  uuid.UUID  `json:"sessionId"`
	CampaignID *uuid.UUID `json:"campaignId,omitempty"`
	OuterStep  int        `json:"outerStep"`
	Substep    int        `json:"substep"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	GoalAmount  int    `json:"goalAmount"`
	Location    string `json:"location"`
	Province    string `json:"province"`
	EndDate     string `json:"endDate"`
	Story       string `json:"story"`

	BeneficiariesDescription string     `json:"beneficiariesDescription"`
	RecipientType            string     `json:"recipientType"`
	BeneficiaryName          string     `json:"beneficiaryName"`
	Relationship             string     `json:"relationship"`
	Reason                   string     `json:"reason"`
	LegalEntityID            *uuid.UUID `json:"legalEntityId,omitempty"`

	Media        []MediaItemResponse `json:"media"`
	YouTubeLinks []string            `json:"youtubeLinks"`
	YouTubeURL   string              `json:"youtubeUrl"`

	Errors map[string][]string `json:"errors"`
}

func FromSession(s *wizard.Session) SessionResponse {
	media := make([]MediaItemResponse, 0, len(s.Form.Media))
	for _, m := range s.Form.Media {
		media = append(media, MediaItemResponse{
			MediaURL:   m.MediaURL,
			Type:       m.Type,
			IsPrimary:  m.IsPrimary,
			OrderIndex: m.OrderIndex,
		})
	}
	errs := s.Form.Errors
	if errs == nil {
		errs = map[string][]string{}
	}
	links := s.Form.YouTubeLinks
	if links == nil {
		links = []string{}
	}
	return SessionResponse{
		SessionID:  s.ID,
		CampaignID: s.CampaignID,
		OuterStep:  s.OuterStep,
		Substep:    s.Substep,

		Title:       s.Form.Title,
		Description: s.Form.Description,
		Category:    s.Form.Category,
		GoalAmount:  s.Form.GoalAmount,
		Location:    s.Form.Location,
		Province:    s.Form.Province,
		EndDate:     s.Form.EndDate,
		Story:       s.Form.Story,

		BeneficiariesDescription: s.Form.BeneficiariesDescription,
		RecipientType:            s.Form.RecipientType,
		BeneficiaryName:          s.Form.BeneficiaryName,
		Relationship:             s.Form.Relationship,
		Reason:                   s.Form.Reason,
		LegalEntityID:            s.Form.LegalEntityID,

		Media:        media,
		YouTubeLinks: links,
		YouTubeURL:   s.Form.LegacyYouTubeURL(),

		Errors: errs,
	}
}
