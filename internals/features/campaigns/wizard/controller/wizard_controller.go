package controller

import (
	"encoding/json"
	"io"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	verifModel "donavida_backend/internals/features/campaigns/verification/model"
	"donavida_backend/internals/features/campaigns/wizard"
	"donavida_backend/internals/features/campaigns/wizard/dto"
	wizardService "donavida_backend/internals/features/campaigns/wizard/service"
	notifService "donavida_backend/internals/features/community/notifications/service"
	helper "donavida_backend/internals/helpers"
	helperOSS "donavida_backend/internals/helpers/oss"
)

// WizardController expone el asistente de creación de campañas. El estado
// vive en el servidor: cada request carga el snapshot, muta y guarda.
type WizardController struct {
	DB       *gorm.DB
	Store    *wizardService.SessionStore
	Bridge   wizard.Bridge
	Uploader wizard.Uploader
}

func NewWizardController(db *gorm.DB, store *wizardService.SessionStore, bridge wizard.Bridge, uploader wizard.Uploader) *WizardController {
	return &WizardController{DB: db, Store: store, Bridge: bridge, Uploader: uploader}
}

func (ctl *WizardController) loadSession(c *fiber.Ctx) (*wizard.Session, error) {
	userID := helper.GetUserUUID(c)
	sessionID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "id de sesión inválido")
	}
	sess, err := ctl.Store.Load(c.Context(), sessionID, userID)
	if err == wizardService.ErrSessionNotFound {
		return nil, fiber.NewError(fiber.StatusNotFound, "Sesión no encontrada")
	}
	if err != nil {
		log.Printf("[ERROR] cargando sesión de asistente: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "No se pudo cargar tu sesión")
	}
	return sess, nil
}

/* ===================== Ciclo de vida de la sesión ===================== */

// Start: POST /api/u/wizard/start
func (ctl *WizardController) Start(c *fiber.Ctx) error {
	sess := wizard.NewSession(helper.GetUserUUID(c))
	if err := ctl.Store.Save(c.Context(), sess); err != nil {
		log.Printf("[ERROR] creando sesión de asistente: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo iniciar el asistente")
	}
	return helper.JsonCreated(c, "Asistente iniciado", dto.FromSession(sess))
}

// Latest: GET /api/u/wizard/latest — retoma la sesión abierta más reciente.
func (ctl *WizardController) Latest(c *fiber.Ctx) error {
	sess, err := ctl.Store.LoadLatest(c.Context(), helper.GetUserUUID(c))
	if err == wizardService.ErrSessionNotFound {
		return helper.JsonError(c, fiber.StatusNotFound, "No tienes un borrador abierto")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cargar tu sesión")
	}
	return helper.JsonOK(c, "ok", dto.FromSession(sess))
}

// Get: GET /api/u/wizard/:id
func (ctl *WizardController) Get(c *fiber.Ctx) error {
	sess, err := ctl.loadSession(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.FromSession(sess))
}

/* ===================== Campos del formulario ===================== */

// SetFields: PATCH /api/u/wizard/:id/fields — body { campo: valor, ... }.
// Un valor imparseable (monto con letras, UUID roto) devuelve 422 con el
// campo señalado; el resto de los campos del body sí se aplica.
func (ctl *WizardController) SetFields(c *fiber.Ctx) error {
	sess, err := ctl.loadSession(c)
	if err != nil {
		return err
	}

	var body map[string]string
	if err := c.BodyParser(&body); err != nil || len(body) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}

	fieldErrs := map[string][]string{}
	for field, value := range body {
		if err := sess.Form.Set(field, value); err != nil {
			fieldErrs[field] = append(fieldErrs[field], err.Error())
		}
	}

	if err := ctl.Store.Save(c.Context(), sess); err != nil {
		log.Printf("[ERROR] guardando sesión %s: %v", sess.ID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar tu sesión")
	}
	if len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, fieldErrs)
	}
	return helper.JsonUpdated(c, "Campos guardados", dto.FromSession(sess))
}

type youtubeLinksRequest struct {
	Links []string `json:"links"`
}

// SetYouTubeLinks: PUT /api/u/wizard/:id/youtube — reemplaza la lista.
func (ctl *WizardController) SetYouTubeLinks(c *fiber.Ctx) error {
	sess, err := ctl.loadSession(c)
	if err != nil {
		return err
	}
	var body youtubeLinksRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := sess.Form.SetYouTubeLinks(body.Links); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"youtube_links": {err.Error()}})
	}
	if err := ctl.Store.Save(c.Context(), sess); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar tu sesión")
	}
	return helper.JsonUpdated(c, "Links de YouTube guardados", dto.FromSession(sess))
}

/* ===================== Navegación ===================== */

// Next: POST /api/u/wizard/:id/next
func (ctl *WizardController) Next(c *fiber.Ctx) error {
	sess, err := ctl.loadSession(c)
	if err != nil {
		return err
	}

	fieldErrs, stepErr := sess.Next(c.Context(), ctl.Bridge)
	if len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if stepErr != nil {
		return ctl.bridgeErrorResponse(c, stepErr)
	}

	if err := ctl.Store.Save(c.Context(), sess); err != nil {
		log.Printf("[ERROR] guardando sesión %s tras next: %v", sess.ID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar tu sesión")
	}
	return helper.JsonUpdated(c, "Paso avanzado", dto.FromSession(sess))
}

// Prev: POST /api/u/wizard/:id/prev — nunca valida, nunca falla por estado.
func (ctl *WizardController) Prev(c *fiber.Ctx) error {
	sess, err := ctl.loadSession(c)
	if err != nil {
		return err
	}
	sess.Prev()
	if err := ctl.Store.Save(c.Context(), sess); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar tu sesión")
	}
	return helper.JsonUpdated(c, "Paso retrocedido", dto.FromSession(sess))
}

func (ctl *WizardController) bridgeErrorResponse(c *fiber.Ctx, err error) error {
	be, ok := wizard.AsBridgeError(err)
	if !ok {
		log.Printf("[ERROR] asistente: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Algo salió mal, intenta de nuevo")
	}
	switch be.Code {
	case wizard.CodeMissingRequiredField, wizard.CodeNoMedia:
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, be.Code, be.Message)
	case wizard.CodeMissingCampaignID:
		return helper.JsonErrorCode(c, fiber.StatusConflict, be.Code, be.Message)
	default:
		return helper.JsonErrorCode(c, fiber.StatusBadGateway, be.Code, be.Message)
	}
}

/* ===================== Media ===================== */

// UploadMedia: POST /api/u/wizard/:id/media (multipart, campo "photo").
// El archivo se valida en local (≤2MB, jpeg/png) antes de tocar el storage.
func (ctl *WizardController) UploadMedia(c *fiber.Ctx) error {
	if ctl.Uploader == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Almacenamiento de fotos no configurado")
	}
	sess, err := ctl.loadSession(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{"photo": {"Adjunta una foto"}})
	}
	src, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No se pudo leer el archivo")
	}
	defer src.Close()
	data, err := io.ReadAll(io.LimitReader(src, wizard.MaxPhotoSize+1))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No se pudo leer el archivo")
	}

	// el flag en vuelo se persiste antes de subir: un next concurrente del
	// mismo organizador carga el snapshot, lo ve encendido y no avanza
	sess.UploadInFlight = true
	if err := ctl.Store.Save(c.Context(), sess); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar tu sesión")
	}

	url, err := sess.AttachPhoto(c.Context(), ctl.Uploader, fh.Filename, fh.Size, data)
	sess.UploadInFlight = false
	if err != nil {
		if saveErr := ctl.Store.Save(c.Context(), sess); saveErr != nil {
			log.Printf("[WARN] limpiando flag de subida sesión %s: %v", sess.ID, saveErr)
		}
		if _, ok := wizard.AsBridgeError(err); ok {
			return ctl.bridgeErrorResponse(c, err)
		}
		return helper.JsonValidationError(c, map[string][]string{"photo": {err.Error()}})
	}

	if err := ctl.Store.Save(c.Context(), sess); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar tu sesión")
	}
	return helper.JsonCreated(c, "Foto subida", fiber.Map{
		"url":     url,
		"session": dto.FromSession(sess),
	})
}

// EditMedia: POST /api/u/wizard/:id/media/:idx/edit — recorte/ajustes. Recibe la
// foto original (campo "photo") y el spec JSON (campo "edit"); el resultado
// reemplaza la entrada idx sin mover su flag primario.
func (ctl *WizardController) EditMedia(c *fiber.Ctx) error {
	if ctl.Uploader == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Almacenamiento de fotos no configurado")
	}
	sess, err := ctl.loadSession(c)
	if err != nil {
		return err
	}
	idx, err := c.ParamsInt("idx")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Índice inválido")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{"photo": {"Adjunta la foto a editar"}})
	}
	src, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No se pudo leer el archivo")
	}
	defer src.Close()
	original, err := io.ReadAll(io.LimitReader(src, wizard.MaxPhotoSize+1))
	if err != nil || int64(len(original)) > wizard.MaxPhotoSize {
		return helper.JsonValidationError(c, map[string][]string{"photo": {"La imagen supera el límite de 2 MB"}})
	}

	var spec helperOSS.EditSpec
	if raw := c.FormValue("edit"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &spec); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Spec de edición inválido")
		}
	}

	edited, err := helperOSS.ApplyPhotoEdit(original, spec)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{"edit": {err.Error()}})
	}

	sess.UploadInFlight = true
	if err := ctl.Store.Save(c.Context(), sess); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar tu sesión")
	}

	url, err := sess.EditPhoto(c.Context(), ctl.Uploader, idx, edited)
	sess.UploadInFlight = false
	if err != nil {
		if saveErr := ctl.Store.Save(c.Context(), sess); saveErr != nil {
			log.Printf("[WARN] limpiando flag de subida sesión %s: %v", sess.ID, saveErr)
		}
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}

	if err := ctl.Store.Save(c.Context(), sess); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar tu sesión")
	}
	return helper.JsonUpdated(c, "Foto editada", fiber.Map{
		"url":     url,
		"session": dto.FromSession(sess),
	})
}

// DeleteMedia: DELETE /api/u/wizard/:id/media/:idx. El objeto en el storage
// se borra best-effort; la sesión nunca falla por un objeto huérfano.
func (ctl *WizardController) DeleteMedia(c *fiber.Ctx) error {
	sess, err := ctl.loadSession(c)
	if err != nil {
		return err
	}
	idx, err := c.ParamsInt("idx")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Índice inválido")
	}
	if idx < 0 || idx >= len(sess.Form.Media) {
		return helper.JsonError(c, fiber.StatusNotFound, "Foto no encontrada")
	}
	removedURL := sess.Form.Media[idx].MediaURL
	if err := sess.Form.RemoveMedia(idx); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Store.Save(c.Context(), sess); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar tu sesión")
	}

	go func(url string) {
		_ = helperOSS.DeleteByPublicURLENV(url, 15*time.Second)
	}(removedURL)

	return helper.JsonDeleted(c, "Foto eliminada", dto.FromSession(sess))
}

// SetPrimaryMedia: PATCH /api/u/wizard/:id/media/:idx/primary
func (ctl *WizardController) SetPrimaryMedia(c *fiber.Ctx) error {
	sess, err := ctl.loadSession(c)
	if err != nil {
		return err
	}
	idx, err := c.ParamsInt("idx")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Índice inválido")
	}
	if err := sess.Form.SetPrimaryMedia(idx); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Foto no encontrada")
	}
	if err := ctl.Store.Save(c.Context(), sess); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar tu sesión")
	}
	return helper.JsonUpdated(c, "Foto principal actualizada", dto.FromSession(sess))
}

/* ===================== Transiciones terminales ===================== */

// Publish: POST /api/u/wizard/:id/publish — borrador → activa.
func (ctl *WizardController) Publish(c *fiber.Ctx) error {
	sess, err := ctl.loadSession(c)
	if err != nil {
		return err
	}
	if errs := sess.Form.ValidateAll(); len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}
	if err := sess.Publish(c.Context(), ctl.Bridge); err != nil {
		return ctl.bridgeErrorResponse(c, err)
	}
	if err := ctl.Store.Delete(c.Context(), sess.ID, sess.UserID); err != nil {
		log.Printf("[WARN] no se pudo borrar la sesión %s tras publicar: %v", sess.ID, err)
	}
	if sess.CampaignID != nil {
		notifService.Emit(ctl.DB.WithContext(c.Context()),
			notifService.NewCampaignPublished(sess.UserID, *sess.CampaignID, sess.Form.Title))
	}
	log.Printf("[INFO] campaña %s publicada por %s", sess.CampaignID, sess.UserID)
	return helper.JsonUpdated(c, "¡Tu campaña está activa!", fiber.Map{
		"campaignId": sess.CampaignID,
		"status":     "active",
	})
}

// RequestVerification: POST /api/u/wizard/:id/request-verification — publica
// y deja una solicitud en la cola de verificación.
func (ctl *WizardController) RequestVerification(c *fiber.Ctx) error {
	sess, err := ctl.loadSession(c)
	if err != nil {
		return err
	}
	if errs := sess.Form.ValidateAll(); len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}
	campaignID, err := sess.RequestVerification(c.Context(), ctl.Bridge)
	if err != nil {
		return ctl.bridgeErrorResponse(c, err)
	}

	intake := verifModel.VerificationRequestModel{
		VerificationRequestCampaignID: campaignID,
		VerificationRequestUserID:     sess.UserID,
		VerificationRequestStatus:     verifModel.VerificationPending,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&intake).Error; err != nil {
		// la campaña ya está activa; la solicitud se puede volver a crear
		log.Printf("[ERROR] intake de verificación campaña=%s: %v", campaignID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError,
			"Tu campaña está activa pero no pudimos registrar la solicitud de verificación, intenta de nuevo")
	}
	if err := ctl.Store.Delete(c.Context(), sess.ID, sess.UserID); err != nil {
		log.Printf("[WARN] no se pudo borrar la sesión %s: %v", sess.ID, err)
	}
	notifService.Emit(ctl.DB.WithContext(c.Context()),
		notifService.NewCampaignPublished(sess.UserID, campaignID, sess.Form.Title))
	return helper.JsonCreated(c, "¡Tu campaña está activa! Revisaremos tu solicitud de verificación", fiber.Map{
		"campaignId":     campaignID,
		"status":         "active",
		"verificationId": intake.VerificationRequestID,
	})
}
