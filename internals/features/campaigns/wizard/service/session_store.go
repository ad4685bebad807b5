package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"donavida_backend/internals/features/campaigns/wizard"
	"donavida_backend/internals/features/campaigns/wizard/model"
)

var ErrSessionNotFound = errors.New("sesión de asistente no encontrada")

// SessionStore persiste los snapshots de sesión en Postgres. Cada mutación
// del asistente se guarda completa; retomar es cargar el último snapshot.
type SessionStore struct {
	DB *gorm.DB
}

func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{DB: db}
}

// Save escribe el snapshot (insert o update según exista la fila).
func (s *SessionStore) Save(ctx context.Context, sess *wizard.Session) error {
	row, err := sessionToRow(sess)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Save(row).Error
}

// Load devuelve la sesión si pertenece al usuario; ErrSessionNotFound si no
// existe o es de otro organizador.
func (s *SessionStore) Load(ctx context.Context, sessionID, userID uuid.UUID) (*wizard.Session, error) {
	var row model.WizardSessionModel
	err := s.DB.WithContext(ctx).
		Where("wizard_session_id = ? AND wizard_session_user_id = ?", sessionID, userID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToSession(&row)
}

// LoadLatest retoma la sesión abierta más reciente del usuario.
func (s *SessionStore) LoadLatest(ctx context.Context, userID uuid.UUID) (*wizard.Session, error) {
	var row model.WizardSessionModel
	err := s.DB.WithContext(ctx).
		Where("wizard_session_user_id = ?", userID).
		Order("wizard_session_updated_at DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToSession(&row)
}

// Delete borra el snapshot (al publicar, la sesión deja de existir).
func (s *SessionStore) Delete(ctx context.Context, sessionID, userID uuid.UUID) error {
	return s.DB.WithContext(ctx).
		Where("wizard_session_id = ? AND wizard_session_user_id = ?", sessionID, userID).
		Delete(&model.WizardSessionModel{}).Error
}

func sessionToRow(sess *wizard.Session) (*model.WizardSessionModel, error) {
	raw, err := json.Marshal(sess.Form)
	if err != nil {
		return nil, fmt.Errorf("serializando formulario: %w", err)
	}
	return &model.WizardSessionModel{
		WizardSessionID:             sess.ID,
		WizardSessionUserID:         sess.UserID,
		WizardSessionCampaignID:     sess.CampaignID,
		WizardSessionOuterStep:      sess.OuterStep,
		WizardSessionSubstep:        sess.Substep,
		WizardSessionForm:           datatypes.JSON(raw),
		WizardSessionUploadInFlight: sess.UploadInFlight,
	}, nil
}

func rowToSession(row *model.WizardSessionModel) (*wizard.Session, error) {
	form := wizard.NewFormState()
	if len(row.WizardSessionForm) > 0 {
		if err := json.Unmarshal(row.WizardSessionForm, form); err != nil {
			return nil, fmt.Errorf("leyendo formulario guardado: %w", err)
		}
	}
	if form.Errors == nil {
		form.Errors = map[string][]string{}
	}
	return &wizard.Session{
		ID:             row.WizardSessionID,
		UserID:         row.WizardSessionUserID,
		CampaignID:     row.WizardSessionCampaignID,
		OuterStep:      row.WizardSessionOuterStep,
		Substep:        row.WizardSessionSubstep,
		UploadInFlight: row.WizardSessionUploadInFlight,
		Form:           form,
	}, nil
}
