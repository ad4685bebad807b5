package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoutes "donavida_backend/internals/features/users/auth/routes"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authRoutes.AuthRoutes(app, db)
}
