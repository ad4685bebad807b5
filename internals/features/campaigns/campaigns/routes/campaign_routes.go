package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campaignController "donavida_backend/internals/features/campaigns/campaigns/controller"
)

// CampaignPublicRoutes: navegación sin login.
func CampaignPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := campaignController.NewCampaignController(db)

	pub := r.Group("/campaigns")
	pub.Get("/", ctl.List)
	pub.Get("/:slug", ctl.Detail)
}

// CampaignUserRoutes: panel del organizador (el padre aplica auth).
func CampaignUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := campaignController.NewCampaignController(db)

	mine := r.Group("/campaigns")
	mine.Get("/mine", ctl.Mine)
	mine.Patch("/:id", ctl.Update)
	mine.Post("/:id/cancel", ctl.Cancel)
}
