package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

/* ===================== Errores del bridge ===================== */

const (
	CodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	CodeNoMedia              = "NO_MEDIA"
	CodeDraftSaveFailed      = "DRAFT_SAVE_FAILED"
	CodeMissingCampaignID    = "MISSING_CAMPAIGN_ID"
)

// BridgeError: fallo con código estable para la UI. Las precondiciones
// locales cortan antes de cualquier llamada a red.
type BridgeError struct {
	Code    string
	Message string
	Err     error
}

func (e *BridgeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BridgeError) Unwrap() error { return e.Err }

func NewBridgeError(code, message string, err error) *BridgeError {
	return &BridgeError{Code: code, Message: message, Err: err}
}

// AsBridgeError extrae el código/mensaje si err es un BridgeError.
func AsBridgeError(err error) (*BridgeError, bool) {
	var be *BridgeError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

/* ===================== Puertos ===================== */

// Bridge persiste el borrador contra el almacenamiento externo.
//
// SaveDraft: con existing == nil crea la campaña y devuelve su id; con id
// conocido actualiza en sitio (nunca duplica). En fallo no se toca el estado
// local, así el usuario reintenta sin perder nada.
type Bridge interface {
	SaveDraft(ctx context.Context, userID uuid.UUID, form *FormState, existing *uuid.UUID) (uuid.UUID, error)
	UpdateCampaign(ctx context.Context, campaignID uuid.UUID, fields map[string]interface{}) error
}

// CheckDraftPreconditions: precondiciones locales de SaveDraft (título,
// descripción, categoría y al menos una foto). Se evalúan sin red.
func CheckDraftPreconditions(f *FormState) error {
	if f.Title == "" || f.Description == "" || f.Category == "" {
		return NewBridgeError(CodeMissingRequiredField,
			"Completa título, descripción y categoría antes de guardar", nil)
	}
	if len(f.Media) == 0 {
		return NewBridgeError(CodeNoMedia,
			"Tu campaña necesita al menos una foto subida", nil)
	}
	return nil
}

// Uploader sube bytes ya validados al storage externo y devuelve la URL
// durable. La validación local (tamaño/MIME) ocurre antes, en el
// coordinador, para que un archivo inválido nunca genere tráfico.
type Uploader interface {
	UploadPhoto(ctx context.Context, filename string, data []byte, sessionKey string) (string, error)
	UploadEdited(ctx context.Context, data []byte, sessionKey string) (string, error)
}
