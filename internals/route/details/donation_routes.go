package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationRoutes "donavida_backend/internals/features/donations/donations/routes"
)

func DonationPublicRoutes(r fiber.Router, db *gorm.DB) {
	donationRoutes.DonationPublicRoutes(r, db)
}

func DonationWebhookRoutes(api fiber.Router, db *gorm.DB) {
	donationRoutes.DonationWebhookRoutes(api, db)
}

func DonationUserRoutes(r fiber.Router, db *gorm.DB) {
	donationRoutes.DonationUserRoutes(r, db)
}
