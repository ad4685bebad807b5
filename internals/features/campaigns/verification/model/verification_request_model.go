package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados de una solicitud de verificación.
const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

// VerificationRequestModel: intake de la cola de verificación. La campaña ya
// está activa cuando se crea la fila; el resultado solo ajusta los flags de
// la campaña, nunca su estado.
type VerificationRequestModel struct {
	VerificationRequestID         uuid.UUID `gorm:"column:verification_request_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"verification_request_id"`
	VerificationRequestCampaignID uuid.UUID `gorm:"column:verification_request_campaign_id;type:uuid;not null;index" json:"verification_request_campaign_id"`
	VerificationRequestUserID     uuid.UUID `gorm:"column:verification_request_user_id;type:uuid;not null" json:"verification_request_user_id"`
	VerificationRequestStatus     string    `gorm:"column:verification_request_status;type:varchar(20);not null;default:'pending'" json:"verification_request_status"`
	VerificationRequestNote       string    `gorm:"column:verification_request_note;type:text" json:"verification_request_note"`

	VerificationRequestCreatedAt time.Time `gorm:"column:verification_request_created_at;autoCreateTime" json:"verification_request_created_at"`
	VerificationRequestUpdatedAt time.Time `gorm:"column:verification_request_updated_at;autoUpdateTime" json:"verification_request_updated_at"`
}

func (VerificationRequestModel) TableName() string {
	return "verification_requests"
}
