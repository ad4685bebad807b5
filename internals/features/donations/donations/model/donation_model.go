package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados de una donación.
const (
	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusFailed   = "failed"
	StatusExpired  = "expired"
	StatusRefunded = "refunded"
)

// Métodos de pago.
const (
	MethodMidtrans       = "midtrans"
	MethodDirectTransfer = "transferencia_directa"
)

type DonationModel struct {
	DonationID         uuid.UUID  `gorm:"column:donation_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"donation_id"`
	DonationCampaignID uuid.UUID  `gorm:"column:donation_campaign_id;type:uuid;not null;index" json:"donation_campaign_id"`
	DonationUserID     *uuid.UUID `gorm:"column:donation_user_id;type:uuid;index" json:"donation_user_id,omitempty"`

	// Nombre/email del donante; para invitados vienen del formulario.
	DonationName  string `gorm:"column:donation_name;type:varchar(120)" json:"donation_name"`
	DonationEmail string `gorm:"column:donation_email;type:varchar(120)" json:"donation_email"`

	DonationAmount      int    `gorm:"column:donation_amount;not null" json:"donation_amount"`
	DonationMessage     string `gorm:"column:donation_message;type:varchar(300)" json:"donation_message"`
	DonationIsAnonymous bool   `gorm:"column:donation_is_anonymous;not null;default:false" json:"donation_is_anonymous"`

	DonationStatus        string `gorm:"column:donation_status;type:varchar(20);not null;default:'pending';index" json:"donation_status"`
	DonationOrderID       string `gorm:"column:donation_order_id;type:varchar(64);uniqueIndex;not null" json:"donation_order_id"`
	DonationPaymentMethod string `gorm:"column:donation_payment_method;type:varchar(30);not null" json:"donation_payment_method"`
	DonationPaymentToken  string `gorm:"column:donation_payment_token;type:varchar(120)" json:"-"`

	DonationPaidAt *time.Time `gorm:"column:donation_paid_at" json:"donation_paid_at,omitempty"`

	DonationCreatedAt time.Time `gorm:"column:donation_created_at;autoCreateTime" json:"donation_created_at"`
	DonationUpdatedAt time.Time `gorm:"column:donation_updated_at;autoUpdateTime" json:"donation_updated_at"`
}

func (DonationModel) TableName() string {
	return "donations"
}
