package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WizardSessionModel: snapshot persistido de una sesión del asistente. El
// formulario completo viaja como JSON; las columnas sueltas existen para
// consultas (retomar la sesión abierta de un usuario, limpiar viejas).
type WizardSessionModel struct {
	WizardSessionID         uuid.UUID      `gorm:"column:wizard_session_id;type:uuid;primaryKey" json:"wizard_session_id"`
	WizardSessionUserID     uuid.UUID      `gorm:"column:wizard_session_user_id;type:uuid;not null;index" json:"wizard_session_user_id"`
	WizardSessionCampaignID *uuid.UUID     `gorm:"column:wizard_session_campaign_id;type:uuid" json:"wizard_session_campaign_id,omitempty"`
	WizardSessionOuterStep  int            `gorm:"column:wizard_session_outer_step;not null;default:1" json:"wizard_session_outer_step"`
	WizardSessionSubstep    int            `gorm:"column:wizard_session_substep;not null;default:1" json:"wizard_session_substep"`
	WizardSessionForm       datatypes.JSON `gorm:"column:wizard_session_form;type:jsonb" json:"wizard_session_form"`

	// true mientras un upload de esta sesión está en vuelo; otro request
	// que cargue el snapshot ve el flag y rechaza avanzar.
	WizardSessionUploadInFlight bool `gorm:"column:wizard_session_upload_in_flight;not null;default:false" json:"wizard_session_upload_in_flight"`

	WizardSessionCreatedAt time.Time `gorm:"column:wizard_session_created_at;autoCreateTime" json:"wizard_session_created_at"`
	WizardSessionUpdatedAt time.Time `gorm:"column:wizard_session_updated_at;autoUpdateTime" json:"wizard_session_updated_at"`
}

func (WizardSessionModel) TableName() string {
	return "wizard_sessions"
}
