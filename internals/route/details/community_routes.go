package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	communityRoutes "donavida_backend/internals/features/community/routes"
)

func CommunityPublicRoutes(r fiber.Router, db *gorm.DB) {
	communityRoutes.CommunityPublicRoutes(r, db)
}

func CommunityUserRoutes(r fiber.Router, db *gorm.DB) {
	communityRoutes.CommunityUserRoutes(r, db)
}
