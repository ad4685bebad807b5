package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	campaignModel "donavida_backend/internals/features/campaigns/campaigns/model"
	"donavida_backend/internals/features/donations/donations/dto"
	"donavida_backend/internals/features/donations/donations/model"
	donationService "donavida_backend/internals/features/donations/donations/service"
	helper "donavida_backend/internals/helpers"
)

var validate = validator.New()

type DonationController struct {
	DB *gorm.DB
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{DB: db}
}

// Create: POST /api/public/campaigns/:id/donations — invitado o logueado.
// Con midtrans devuelve el snap token; con transferencia directa la donación
// queda pendiente hasta que operaciones la confirme.
func (ctl *DonationController) Create(c *fiber.Ctx) error {
	campaignID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Id de campaña inválido")
	}

	var body dto.CreateDonationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	amount, err := helper.StripAmount(body.Amount)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{"amount": {err.Error()}})
	}

	method := strings.TrimSpace(body.PaymentMethod)
	if method == "" {
		method = model.MethodMidtrans
	}
	if method != model.MethodMidtrans && method != model.MethodDirectTransfer {
		return helper.JsonValidationError(c, map[string][]string{
			"paymentMethod": {"Método de pago no soportado"},
		})
	}

	// solo campañas activas reciben donaciones
	var camp campaignModel.CampaignModel
	err = ctl.DB.WithContext(c.Context()).
		Select("campaign_id", "campaign_status").
		Where("campaign_id = ?", campaignID).
		First(&camp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Campaña no encontrada")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo procesar tu donación")
	}
	if camp.CampaignStatus != campaignModel.StatusActive {
		return helper.JsonError(c, fiber.StatusConflict, "Esta campaña no está recibiendo donaciones")
	}

	var userID *uuid.UUID
	if id := helper.GetUserUUID(c); id != uuid.Nil {
		userID = &id
	}

	donation := model.DonationModel{
		DonationCampaignID:    campaignID,
		DonationUserID:        userID,
		DonationName:          strings.TrimSpace(body.Name),
		DonationEmail:         strings.TrimSpace(body.Email),
		DonationAmount:        amount,
		DonationMessage:       strings.TrimSpace(body.Message),
		DonationIsAnonymous:   body.IsAnonymous,
		DonationStatus:        model.StatusPending,
		DonationOrderID:       fmt.Sprintf("DONAVIDA-%d", time.Now().UnixNano()),
		DonationPaymentMethod: method,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&donation).Error; err != nil {
		log.Printf("[ERROR] creando donación campaña=%s: %v", campaignID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo registrar tu donación")
	}

	resp := dto.CreateDonationResponse{
		DonationID:    donation.DonationID,
		OrderID:       donation.DonationOrderID,
		Status:        donation.DonationStatus,
		PaymentMethod: method,
	}

	if method == model.MethodMidtrans {
		token, err := donationService.GenerateSnapToken(&donation, body.Name, body.Email)
		if err != nil {
			log.Printf("[ERROR] snap token order=%s: %v", donation.DonationOrderID, err)
			return helper.JsonError(c, fiber.StatusBadGateway, "No se pudo iniciar el pago, intenta de nuevo")
		}
		if err := ctl.DB.WithContext(c.Context()).Model(&model.DonationModel{}).
			Where("donation_id = ?", donation.DonationID).
			Update("donation_payment_token", token).Error; err != nil {
			log.Printf("[WARN] guardando token order=%s: %v", donation.DonationOrderID, err)
		}
		resp.SnapToken = token
	}

	return helper.JsonCreated(c, "Donación registrada, continúa con el pago", resp)
}

// MidtransWebhook: POST /api/donations/notification. Midtrans reintenta ante
// cualquier respuesta != 200, así que el handler es idempotente.
func (ctl *DonationController) MidtransWebhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	orderID, _ := body["order_id"].(string)
	txStatus, _ := body["transaction_status"].(string)
	fraudStatus, _ := body["fraud_status"].(string)
	if orderID == "" || txStatus == "" {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	newStatus := donationService.MapMidtransStatus(txStatus, fraudStatus)
	log.Printf("[INFO] webhook midtrans order=%s tx=%s fraud=%s → %s",
		orderID, txStatus, fraudStatus, newStatus)

	err := donationService.ApplyPaymentStatus(c.Context(), ctl.DB, orderID, newStatus)
	if errors.Is(err, donationService.ErrDonationNotFound) {
		// order_id ajeno: 200 para que Midtrans no reintente eternamente
		log.Printf("[WARN] webhook para orden desconocida: %s", orderID)
		return c.SendStatus(fiber.StatusOK)
	}
	if err != nil {
		log.Printf("[ERROR] webhook order=%s: %v", orderID, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.SendStatus(fiber.StatusOK)
}

// ConfirmDirectTransfer: POST /api/u/donations/:id/confirm — confirmación
// manual del camino legado de transferencia, restringida al organizador de
// la campaña.
func (ctl *DonationController) ConfirmDirectTransfer(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	donationID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Id inválido")
	}

	var d model.DonationModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("donation_id = ?", donationID).
		First(&d).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Donación no encontrada")
	}
	if d.DonationPaymentMethod != model.MethodDirectTransfer {
		return helper.JsonError(c, fiber.StatusConflict, "Esta donación se confirma por la pasarela de pago")
	}

	var owner int64
	ctl.DB.WithContext(c.Context()).Model(&campaignModel.CampaignModel{}).
		Where("campaign_id = ? AND campaign_user_id = ?", d.DonationCampaignID, userID).
		Count(&owner)
	if owner == 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "Solo el organizador puede confirmar transferencias")
	}

	if err := donationService.ApplyPaymentStatus(c.Context(), ctl.DB, d.DonationOrderID, model.StatusPaid); err != nil {
		log.Printf("[ERROR] confirmando transferencia %s: %v", donationID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo confirmar la donación")
	}
	return helper.JsonUpdated(c, "Donación confirmada", fiber.Map{"donationId": donationID})
}

// Donors: GET /api/public/campaigns/:id/donations — muro público de
// donantes (solo pagadas).
func (ctl *DonationController) Donors(c *fiber.Ctx) error {
	campaignID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Id de campaña inválido")
	}
	p := helper.ParseFiber(c, "newest", "desc", helper.DefaultOpts)

	q := ctl.DB.WithContext(c.Context()).Model(&model.DonationModel{}).
		Where("donation_campaign_id = ? AND donation_status = ?", campaignID, model.StatusPaid)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cargar el listado")
	}
	var rows []model.DonationModel
	if err := q.Order("donation_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cargar el listado")
	}

	items := make([]dto.DonorItem, 0, len(rows))
	for i := range rows {
		items = append(items, dto.ToDonorItem(&rows[i]))
	}
	return helper.JsonList(c, "ok", items, helper.BuildMeta(total, p))
}

// Mine: GET /api/u/donations — historial del donante logueado.
func (ctl *DonationController) Mine(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	p := helper.ParseFiber(c, "newest", "desc", helper.DefaultOpts)

	q := ctl.DB.WithContext(c.Context()).Model(&model.DonationModel{}).
		Where("donation_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cargar tu historial")
	}
	var rows []model.DonationModel
	if err := q.Order("donation_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cargar tu historial")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildMeta(total, p))
}
