package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"donavida_backend/internals/features/campaigns/legal_entities/model"
	helper "donavida_backend/internals/helpers"
)

type LegalEntityController struct {
	DB *gorm.DB
}

func NewLegalEntityController(db *gorm.DB) *LegalEntityController {
	return &LegalEntityController{DB: db}
}

// Search: GET /api/public/legal-entities?q= (alias ?search=) — autocomplete
// para el paso de beneficiario. Busca por nombre o NIT exacto.
func (ctl *LegalEntityController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q", c.Query("search")))
	if len([]rune(q)) < 2 {
		return helper.JsonOK(c, "ok", []model.LegalEntityModel{})
	}

	var rows []model.LegalEntityModel
	like := "%" + strings.ToLower(q) + "%"
	err := ctl.DB.WithContext(c.Context()).
		Where("LOWER(legal_entity_name) LIKE ? OR legal_entity_nit = ?", like, q).
		Order("legal_entity_name ASC").
		Limit(20).
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo buscar")
	}
	return helper.JsonOK(c, "ok", rows)
}

// Get: GET /api/public/legal-entities/:id
func (ctl *LegalEntityController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Id inválido")
	}
	var row model.LegalEntityModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("legal_entity_id = ?", id).
		First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Persona jurídica no encontrada")
	}
	return helper.JsonOK(c, "ok", row)
}
