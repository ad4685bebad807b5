package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "donavida_backend/internals/features/users/auth/controller"
	middlewares "donavida_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/google", middlewares.LoginRateLimiter(), ctrl.LoginWithGoogle)
}
