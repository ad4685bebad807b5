package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campaignService "donavida_backend/internals/features/campaigns/campaigns/service"
	"donavida_backend/internals/features/campaigns/wizard"
	wizardController "donavida_backend/internals/features/campaigns/wizard/controller"
	wizardService "donavida_backend/internals/features/campaigns/wizard/service"
	"donavida_backend/internals/middlewares"
)

// WizardRoutes: asistente de creación de campañas. Todo el grupo exige login
// (lo aplica el router padre /api/u).
func WizardRoutes(r fiber.Router, db *gorm.DB) {
	store := wizardService.NewSessionStore(db)
	bridge := campaignService.NewDraftService(db)

	uploader, err := wizardService.NewOSSUploaderFromEnv()
	if err != nil {
		log.Printf("[WARN] OSS no configurado, subida de fotos deshabilitada: %v", err)
	}

	ctl := wizardController.NewWizardController(db, store, bridge, uploaderOrNil(uploader))

	wz := r.Group("/wizard")
	wz.Post("/start", ctl.Start)
	wz.Get("/latest", ctl.Latest)
	wz.Get("/:id", ctl.Get)
	wz.Patch("/:id/fields", ctl.SetFields)
	wz.Post("/:id/recipient", ctl.SetFields)
	wz.Put("/:id/youtube", ctl.SetYouTubeLinks)
	wz.Post("/:id/next", ctl.Next)
	wz.Post("/:id/prev", ctl.Prev)

	wz.Post("/:id/media", middlewares.UploadRateLimiter(), ctl.UploadMedia)
	wz.Post("/:id/media/:idx/edit", middlewares.UploadRateLimiter(), ctl.EditMedia)
	wz.Delete("/:id/media/:idx", ctl.DeleteMedia)
	wz.Patch("/:id/media/:idx/primary", ctl.SetPrimaryMedia)

	wz.Post("/:id/publish", ctl.Publish)
	wz.Post("/:id/request-verification", ctl.RequestVerification)
}

// uploaderOrNil evita guardar una interfaz no-nil con puntero nil adentro.
func uploaderOrNil(u *wizardService.OSSUploader) wizard.Uploader {
	if u == nil {
		return nil
	}
	return u
}
