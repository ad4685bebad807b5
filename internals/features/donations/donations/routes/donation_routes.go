package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationController "donavida_backend/internals/features/donations/donations/controller"
)

// DonationPublicRoutes: crear donación (invitado o logueado) y muro de
// donantes. El webhook de Midtrans vive fuera de /public para conservar la
// URL registrada en el dashboard de la pasarela.
func DonationPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := donationController.NewDonationController(db)

	r.Post("/campaigns/:id/donations", ctl.Create)
	r.Get("/campaigns/:id/donations", ctl.Donors)
}

// DonationWebhookRoutes: notificaciones server-to-server de la pasarela.
func DonationWebhookRoutes(api fiber.Router, db *gorm.DB) {
	ctl := donationController.NewDonationController(db)

	api.Post("/donations/notification", ctl.MidtransWebhook)
}

// DonationUserRoutes: historial y confirmación manual (requiere login).
func DonationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := donationController.NewDonationController(db)

	r.Get("/donations/mine", ctl.Mine)
	r.Post("/donations/:id/confirm", ctl.ConfirmDirectTransfer)
}
