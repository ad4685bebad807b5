package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	commentController "donavida_backend/internals/features/community/comments/controller"
	notificationController "donavida_backend/internals/features/community/notifications/controller"
	savedController "donavida_backend/internals/features/community/saved_campaigns/controller"
)

// CommunityPublicRoutes: lectura sin login.
func CommunityPublicRoutes(r fiber.Router, db *gorm.DB) {
	comments := commentController.NewCommentController(db)

	r.Get("/campaigns/:id/comments", comments.List)
}

// CommunityUserRoutes: comentarios, guardados y notificaciones (el padre
// aplica auth).
func CommunityUserRoutes(r fiber.Router, db *gorm.DB) {
	comments := commentController.NewCommentController(db)
	saved := savedController.NewSavedCampaignController(db)
	notifs := notificationController.NewNotificationController(db)

	r.Post("/campaigns/:id/comments", comments.Create)
	r.Delete("/comments/:id", comments.Delete)

	sv := r.Group("/saved")
	sv.Get("/", saved.List)
	sv.Put("/:id", saved.Save)
	sv.Delete("/:id", saved.Unsave)

	nt := r.Group("/notifications")
	nt.Get("/", notifs.List)
	nt.Patch("/:id/read", notifs.MarkRead)
	nt.Post("/read-all", notifs.MarkAllRead)
}
