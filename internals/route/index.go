package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "donavida_backend/internals/middlewares/auth"
	routeDetails "donavida_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → JWT opcional (donaciones logueadas quedan asociadas al user)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public", authMiddleware.AuthOptional())

	// WEBHOOK → server-to-server, sin auth de usuario
	api := app.Group("/api")

	// PRIVATE (USER) → JWT obligatorio
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthRequired())

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Campaign routes...")
	routeDetails.CampaignPublicRoutes(public, db)
	routeDetails.CampaignUserRoutes(private, db)

	log.Println("[INFO] Mounting Donation routes...")
	routeDetails.DonationPublicRoutes(public, db)
	routeDetails.DonationWebhookRoutes(api, db)
	routeDetails.DonationUserRoutes(private, db)

	log.Println("[INFO] Mounting Community routes...")
	routeDetails.CommunityPublicRoutes(public, db)
	routeDetails.CommunityUserRoutes(private, db)
}
