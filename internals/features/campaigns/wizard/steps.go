package wizard

import (
	"context"

	"github.com/google/uuid"
)

// Pasos externos del asistente.
const (
	StepCompose   = 1
	StepRecipient = 2
	StepReview    = 3
)

// Session: una pasada del asistente para un organizador. El puntero de
// subpaso es independiente del paso externo y vuelve a 1 cada vez que se
// reingresa al paso 1.
type Session struct {
	ID         uuid.UUID  `json:"session_id"`
	UserID     uuid.UUID  `json:"user_id"`
	CampaignID *uuid.UUID `json:"campaign_id,omitempty"`

	OuterStep int `json:"outer_step"`
	Substep   int `json:"substep"`

	// true mientras hay una subida en vuelo; bloquea next() (el único
	// mecanismo de exclusión es deshabilitar la acción disparadora).
	UploadInFlight bool `json:"upload_in_flight"`

	Form *FormState `json:"form"`
}

func NewSession(userID uuid.UUID) *Session {
	return &Session{
		ID:        uuid.New(),
		UserID:    userID,
		OuterStep: StepCompose,
		Substep:   1,
		Form:      NewFormState(),
	}
}

// Next avanza un subpaso (o un paso externo). Devuelve los campos violados
// cuando la validación rechaza el avance; error solo para fallos del bridge.
// En el cruce subpaso 7 → paso 2 se exige al menos una foto subida y un
// SaveDraft exitoso; es el único punto donde un fallo de red bloquea la
// navegación.
func (s *Session) Next(ctx context.Context, bridge Bridge) (map[string][]string, error) {
	switch s.OuterStep {
	case StepCompose:
		if s.UploadInFlight {
			return nil, NewBridgeError(CodeDraftSaveFailed,
				"Espera a que termine la subida de la foto", nil)
		}
		if errs := s.Form.ValidateStep(s.Substep); len(errs) > 0 {
			return errs, nil
		}
		if s.Substep < SubstepCount {
			s.Substep++
			return nil, nil
		}
		// frontera 7 → paso 2: precondiciones + persistir borrador
		if err := CheckDraftPreconditions(s.Form); err != nil {
			return nil, err
		}
		id, err := bridge.SaveDraft(ctx, s.UserID, s.Form, s.CampaignID)
		if err != nil {
			if _, ok := AsBridgeError(err); ok {
				return nil, err
			}
			return nil, NewBridgeError(CodeDraftSaveFailed,
				"No se pudo guardar tu borrador, intenta de nuevo", err)
		}
		s.CampaignID = &id
		s.OuterStep = StepRecipient
		return nil, nil

	case StepRecipient:
		if errs := s.Form.ValidateRecipient(); len(errs) > 0 {
			return errs, nil
		}
		if s.CampaignID == nil {
			return nil, NewBridgeError(CodeMissingCampaignID,
				"El borrador todavía no fue guardado", nil)
		}
		if err := bridge.UpdateCampaign(ctx, *s.CampaignID, s.recipientFields()); err != nil {
			return nil, NewBridgeError(CodeDraftSaveFailed,
				"No se pudo guardar el beneficiario, intenta de nuevo", err)
		}
		s.OuterStep = StepReview
		return nil, nil

	default:
		// paso 3: se sale con Publish o RequestVerification, no con next()
		return nil, nil
	}
}

// Prev nunca valida ni persiste: es un decremento puro con piso en el
// subpaso/paso 1 (no-op, no error). Reingresar al paso 1 resetea el subpaso.
func (s *Session) Prev() {
	switch {
	case s.OuterStep == StepCompose && s.Substep > 1:
		s.Substep--
	case s.OuterStep > StepCompose:
		s.OuterStep--
		if s.OuterStep == StepCompose {
			s.Substep = 1
		}
	}
}

func (s *Session) recipientFields() map[string]interface{} {
	fields := map[string]interface{}{
		"campaign_recipient_type":           s.Form.RecipientType,
		"campaign_beneficiaries_description": s.Form.BeneficiariesDescription,
		"campaign_beneficiary_name":         s.Form.BeneficiaryName,
		"campaign_relationship":             s.Form.Relationship,
		"campaign_reason":                   s.Form.Reason,
	}
	if s.Form.LegalEntityID != nil {
		fields["campaign_legal_entity_id"] = *s.Form.LegalEntityID
	} else {
		fields["campaign_legal_entity_id"] = nil
	}
	return fields
}

/* ===================== Transiciones terminales ===================== */

// Publish: borrador → activa sin verificación. Si falla, la campaña queda en
// borrador y la acción es reintentable.
func (s *Session) Publish(ctx context.Context, bridge Bridge) error {
	if s.CampaignID == nil {
		return NewBridgeError(CodeMissingCampaignID,
			"Guarda tu borrador antes de publicar", nil)
	}
	return bridge.UpdateCampaign(ctx, *s.CampaignID, map[string]interface{}{
		"campaign_status":                 "active",
		"campaign_verification_requested": false,
	})
}

// RequestVerification: borrador → activa, dejando el flag de verificación
// intacto (lo administra el flujo externo de verificación). Devuelve el id
// de campaña para el intake si el update tuvo éxito.
func (s *Session) RequestVerification(ctx context.Context, bridge Bridge) (uuid.UUID, error) {
	if s.CampaignID == nil {
		return uuid.Nil, NewBridgeError(CodeMissingCampaignID,
			"Guarda tu borrador antes de solicitar verificación", nil)
	}
	if err := bridge.UpdateCampaign(ctx, *s.CampaignID, map[string]interface{}{
		"campaign_status": "active",
	}); err != nil {
		return uuid.Nil, err
	}
	return *s.CampaignID, nil
}
