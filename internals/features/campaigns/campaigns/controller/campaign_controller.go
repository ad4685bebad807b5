package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	mediaModel "donavida_backend/internals/features/campaigns/campaign_media/model"
	"donavida_backend/internals/features/campaigns/campaigns/dto"
	"donavida_backend/internals/features/campaigns/campaigns/model"
	helper "donavida_backend/internals/helpers"
)

// Whitelist de orden para el listado público. "progress" usa el cociente
// recaudado/meta para que campañas chicas puedan competir con grandes.
var campaignSortColumns = map[string]string{
	"newest":   "campaign_created_at",
	"ending":   "campaign_end_date",
	"raised":   "campaign_raised_amount",
	"donors":   "campaign_donor_count",
	"progress": "(campaign_raised_amount::float / NULLIF(campaign_goal_amount, 0))",
}

type CampaignController struct {
	DB *gorm.DB
}

func NewCampaignController(db *gorm.DB) *CampaignController {
	return &CampaignController{DB: db}
}

/* ===================== Público ===================== */

// List: GET /api/public/campaigns — solo activas y completadas, con filtros
// por categoría, departamento y búsqueda de texto simple.
func (ctl *CampaignController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "newest", "desc", helper.DefaultOpts)
	order, err := p.SafeOrderClause(campaignSortColumns, "newest")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Orden inválido")
	}

	q := ctl.DB.WithContext(c.Context()).Model(&model.CampaignModel{}).
		Where("campaign_status IN ?", []string{model.StatusActive, model.StatusCompleted})

	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		q = q.Where("campaign_category = ?", strings.ToLower(cat))
	}
	if loc := strings.TrimSpace(c.Query("location")); loc != "" {
		q = q.Where("campaign_location = ?", strings.ToLower(loc))
	}
	if c.QueryBool("verified") {
		q = q.Where("campaign_verified = true")
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(campaign_title) LIKE ? OR LOWER(campaign_description) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] contando campañas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cargar el listado")
	}

	var rows []model.CampaignModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] listando campañas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cargar el listado")
	}

	primaries, err := ctl.primaryImages(c, rows)
	if err != nil {
		log.Printf("[WARN] fotos principales: %v", err)
	}

	items := make([]dto.CampaignListItem, 0, len(rows))
	for i := range rows {
		items = append(items, dto.ToListItem(&rows[i], primaries[rows[i].CampaignID]))
	}
	return helper.JsonList(c, "ok", items, helper.BuildMeta(total, p))
}

// Detail: GET /api/public/campaigns/:slug
func (ctl *CampaignController) Detail(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug inválido")
	}

	var row model.CampaignModel
	err := ctl.DB.WithContext(c.Context()).
		Where("campaign_slug = ? AND campaign_status IN ?", slug,
			[]string{model.StatusActive, model.StatusCompleted}).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Campaña no encontrada")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cargar la campaña")
	}

	media, err := ctl.mediaFor(c, row.CampaignID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cargar la campaña")
	}
	return helper.JsonOK(c, "ok", dto.ToDetail(&row, media))
}

/* ===================== Organizador ===================== */

// Mine: GET /api/u/campaigns/mine — incluye borradores.
func (ctl *CampaignController) Mine(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	p := helper.ParseFiber(c, "newest", "desc", helper.DefaultOpts)
	order, err := p.SafeOrderClause(campaignSortColumns, "newest")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Orden inválido")
	}

	q := ctl.DB.WithContext(c.Context()).Model(&model.CampaignModel{}).
		Where("campaign_user_id = ?", userID)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("campaign_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron cargar tus campañas")
	}
	var rows []model.CampaignModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron cargar tus campañas")
	}

	primaries, _ := ctl.primaryImages(c, rows)
	items := make([]dto.CampaignListItem, 0, len(rows))
	for i := range rows {
		items = append(items, dto.ToListItem(&rows[i], primaries[rows[i].CampaignID]))
	}
	return helper.JsonList(c, "ok", items, helper.BuildMeta(total, p))
}

type updateCampaignRequest struct {
	Story       *string `json:"story"`
	Description *string `json:"description"`
	EndDate     *string `json:"endDate"`
}

// Update: PATCH /api/u/campaigns/:id — ediciones post-publicación acotadas
// (historia, descripción, extender cierre). El resto es inmutable una vez
// activa la campaña.
func (ctl *CampaignController) Update(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	campaignID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Id inválido")
	}
	var body updateCampaignRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}

	fields := map[string]interface{}{}
	if body.Story != nil {
		fields["campaign_story"] = strings.TrimSpace(*body.Story)
	}
	if body.Description != nil {
		fields["campaign_description"] = strings.TrimSpace(*body.Description)
	}
	if body.EndDate != nil {
		t, err := time.Parse("2006-01-02", strings.TrimSpace(*body.EndDate))
		if err != nil {
			return helper.JsonValidationError(c, map[string][]string{
				"end_date": {"Fecha inválida (usa AAAA-MM-DD)"},
			})
		}
		fields["campaign_end_date"] = t
	}
	if len(fields) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nada que actualizar")
	}

	res := ctl.DB.WithContext(c.Context()).Model(&model.CampaignModel{}).
		Where("campaign_id = ? AND campaign_user_id = ?", campaignID, userID).
		Updates(fields)
	if res.Error != nil {
		log.Printf("[ERROR] actualizando campaña %s: %v", campaignID, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Campaña no encontrada")
	}
	return helper.JsonUpdated(c, "Campaña actualizada", fiber.Map{"campaignId": campaignID})
}

// Cancel: POST /api/u/campaigns/:id/cancel — solo el organizador, y nunca
// sobre una campaña completada.
func (ctl *CampaignController) Cancel(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	campaignID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Id inválido")
	}
	res := ctl.DB.WithContext(c.Context()).Model(&model.CampaignModel{}).
		Where("campaign_id = ? AND campaign_user_id = ? AND campaign_status <> ?",
			campaignID, userID, model.StatusCompleted).
		Update("campaign_status", model.StatusCancelled)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cancelar")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Campaña no encontrada")
	}
	return helper.JsonUpdated(c, "Campaña cancelada", fiber.Map{"campaignId": campaignID})
}

/* ===================== Internos ===================== */

func (ctl *CampaignController) mediaFor(c *fiber.Ctx, campaignID uuid.UUID) ([]mediaModel.CampaignMediaModel, error) {
	var rows []mediaModel.CampaignMediaModel
	err := ctl.DB.WithContext(c.Context()).
		Where("campaign_media_campaign_id = ?", campaignID).
		Order("campaign_media_order_index ASC").
		Find(&rows).Error
	return rows, err
}

func (ctl *CampaignController) primaryImages(c *fiber.Ctx, rows []model.CampaignModel) (map[uuid.UUID]string, error) {
	out := map[uuid.UUID]string{}
	if len(rows) == 0 {
		return out, nil
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].CampaignID)
	}
	var media []mediaModel.CampaignMediaModel
	err := ctl.DB.WithContext(c.Context()).
		Where("campaign_media_campaign_id IN ? AND campaign_media_is_primary = true", ids).
		Find(&media).Error
	if err != nil {
		return out, err
	}
	for _, m := range media {
		out[m.CampaignMediaCampaignID] = m.CampaignMediaURL
	}
	return out, nil
}
