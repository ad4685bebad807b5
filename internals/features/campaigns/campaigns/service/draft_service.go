package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	mediaModel "donavida_backend/internals/features/campaigns/campaign_media/model"
	"donavida_backend/internals/features/campaigns/campaigns/model"
	"donavida_backend/internals/features/campaigns/wizard"
	helper "donavida_backend/internals/helpers"
)

// DraftService implementa la persistencia de borradores del asistente.
// Primera llamada crea la campaña (status draft) y devuelve su id; con id
// conocido actualiza en sitio. Nunca duplica.
type DraftService struct {
	DB *gorm.DB
}

func NewDraftService(db *gorm.DB) *DraftService {
	return &DraftService{DB: db}
}

func (s *DraftService) SaveDraft(ctx context.Context, userID uuid.UUID, form *wizard.FormState, existing *uuid.UUID) (uuid.UUID, error) {
	var campaignID uuid.UUID

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if existing == nil {
			row, err := s.createDraft(tx, userID, form)
			if err != nil {
				return err
			}
			campaignID = row.CampaignID
			return syncMedia(tx, campaignID, form.Media)
		}

		campaignID = *existing
		if err := s.updateDraft(tx, userID, campaignID, form); err != nil {
			return err
		}
		return syncMedia(tx, campaignID, form.Media)
	})
	if err != nil {
		log.Printf("[ERROR] SaveDraft user=%s: %v", userID, err)
		return uuid.Nil, wizard.NewBridgeError(wizard.CodeDraftSaveFailed,
			"No se pudo guardar tu borrador, intenta de nuevo", err)
	}
	return campaignID, nil
}

func (s *DraftService) createDraft(tx *gorm.DB, userID uuid.UUID, form *wizard.FormState) (*model.CampaignModel, error) {
	slug, err := helper.EnsureUniqueSlug(tx, helper.GenerateSlug(form.Title), "campaigns", "campaign_slug")
	if err != nil {
		return nil, err
	}
	row := model.CampaignModel{
		CampaignUserID:       userID,
		CampaignTitle:        form.Title,
		CampaignSlug:         slug,
		CampaignDescription:  form.Description,
		CampaignCategory:     form.Category,
		CampaignStory:        form.Story,
		CampaignGoalAmount:   form.GoalAmount,
		CampaignLocation:     form.Location,
		CampaignProvince:     form.Province,
		CampaignEndDate:      parseEndDate(form.EndDate),
		CampaignStatus:       model.StatusDraft,
		CampaignYouTubeLinks: pq.StringArray(form.YouTubeLinks),
	}
	if err := tx.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *DraftService) updateDraft(tx *gorm.DB, userID, campaignID uuid.UUID, form *wizard.FormState) error {
	fields := map[string]interface{}{
		"campaign_title":         form.Title,
		"campaign_description":   form.Description,
		"campaign_category":      form.Category,
		"campaign_story":         form.Story,
		"campaign_goal_amount":   form.GoalAmount,
		"campaign_location":      form.Location,
		"campaign_province":      form.Province,
		"campaign_end_date":      parseEndDate(form.EndDate),
		"campaign_youtube_links": pq.StringArray(form.YouTubeLinks),
	}
	res := tx.Model(&model.CampaignModel{}).
		Where("campaign_id = ? AND campaign_user_id = ?", campaignID, userID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateCampaign aplica un update parcial (beneficiario, publicación). Las
// claves ya vienen con nombre de columna.
func (s *DraftService) UpdateCampaign(ctx context.Context, campaignID uuid.UUID, fields map[string]interface{}) error {
	res := s.DB.WithContext(ctx).Model(&model.CampaignModel{}).
		Where("campaign_id = ?", campaignID).
		Updates(fields)
	if res.Error != nil {
		log.Printf("[ERROR] UpdateCampaign id=%s: %v", campaignID, res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// syncMedia reemplaza las filas de media por el estado actual del formulario.
// El orden y el flag primario vienen del snapshot, no se recalculan acá.
func syncMedia(tx *gorm.DB, campaignID uuid.UUID, items []wizard.MediaItem) error {
	if err := tx.Where("campaign_media_campaign_id = ?", campaignID).
		Delete(&mediaModel.CampaignMediaModel{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	rows := make([]mediaModel.CampaignMediaModel, 0, len(items))
	for _, it := range items {
		rows = append(rows, mediaModel.CampaignMediaModel{
			CampaignMediaCampaignID: campaignID,
			CampaignMediaURL:        it.MediaURL,
			CampaignMediaType:       it.Type,
			CampaignMediaIsPrimary:  it.IsPrimary,
			CampaignMediaOrderIndex: it.OrderIndex,
		})
	}
	return tx.Create(&rows).Error
}

func parseEndDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}
