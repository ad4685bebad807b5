package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	legalEntityController "donavida_backend/internals/features/campaigns/legal_entities/controller"
)

func LegalEntityRoutes(r fiber.Router, db *gorm.DB) {
	ctl := legalEntityController.NewLegalEntityController(db)

	le := r.Group("/legal-entities")
	le.Get("/", ctl.Search)
	le.Get("/:id", ctl.Get)
}
