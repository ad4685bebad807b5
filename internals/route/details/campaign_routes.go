package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campaignRoutes "donavida_backend/internals/features/campaigns/campaigns/routes"
	legalEntityRoutes "donavida_backend/internals/features/campaigns/legal_entities/routes"
	wizardRoutes "donavida_backend/internals/features/campaigns/wizard/routes"
)

// CampaignPublicRoutes: navegación de campañas y lookup de personas
// jurídicas, sin login.
func CampaignPublicRoutes(r fiber.Router, db *gorm.DB) {
	campaignRoutes.CampaignPublicRoutes(r, db)
	legalEntityRoutes.LegalEntityRoutes(r, db)
}

// CampaignUserRoutes: asistente de creación y panel del organizador.
func CampaignUserRoutes(r fiber.Router, db *gorm.DB) {
	wizardRoutes.WizardRoutes(r, db)
	campaignRoutes.CampaignUserRoutes(r, db)
}
