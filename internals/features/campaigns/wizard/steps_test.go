package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeBridge struct {
	saveCalls    int
	lastExisting *uuid.UUID
	saveErr      error
	assignedID   uuid.UUID

	updateCalls []map[string]interface{}
	updateErr   error
}

func newFakeBridge() *fakeBridge {
	return &fakeBridge{assignedID: uuid.New()}
}

func (b *fakeBridge) SaveDraft(_ context.Context, _ uuid.UUID, _ *FormState, existing *uuid.UUID) (uuid.UUID, error) {
	b.saveCalls++
	b.lastExisting = existing
	if b.saveErr != nil {
		return uuid.Nil, b.saveErr
	}
	if existing != nil {
		return *existing, nil
	}
	return b.assignedID, nil
}

func (b *fakeBridge) UpdateCampaign(_ context.Context, _ uuid.UUID, fields map[string]interface{}) error {
	if b.updateErr != nil {
		return b.updateErr
	}
	b.updateCalls = append(b.updateCalls, fields)
	return nil
}

// advance empuja la sesión hasta el final del paso 1 (subpaso 7 validado).
func advanceToReview(t *testing.T, s *Session, b Bridge) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < SubstepCount; i++ {
		errs, err := s.Next(ctx, b)
		if err != nil {
			t.Fatalf("Next en subpaso %d: %v", s.Substep, err)
		}
		if len(errs) > 0 {
			t.Fatalf("Next en subpaso %d rechazó: %v", s.Substep, errs)
		}
	}
}

func TestWizardFullWalkthrough(t *testing.T) {
	b := newFakeBridge()
	s := NewSession(uuid.New())
	s.Form = validForm(t)

	// paso 1: siete next() válidos, el último cruza al paso 2
	advanceToReview(t, s, b)

	if s.OuterStep != StepRecipient {
		t.Fatalf("OuterStep = %d, quiero %d", s.OuterStep, StepRecipient)
	}
	if b.saveCalls != 1 {
		t.Fatalf("SaveDraft llamado %d veces, quiero 1", b.saveCalls)
	}
	if b.lastExisting != nil {
		t.Fatal("la primera llamada debe ir sin id existente")
	}
	if s.CampaignID == nil || *s.CampaignID != b.assignedID {
		t.Fatal("el id devuelto por el bridge no quedó en la sesión")
	}

	// paso 2: beneficiario
	s.Form.Set("recipient_type", "otra_persona")
	s.Form.Set("beneficiary_name", "María Quispe")
	s.Form.Set("relationship", "Mi hermana")
	s.Form.Set("reason", "Necesita cubrir su tratamiento médico")

	errs, err := s.Next(context.Background(), b)
	if err != nil || len(errs) > 0 {
		t.Fatalf("Next paso 2: errs=%v err=%v", errs, err)
	}
	if s.OuterStep != StepReview {
		t.Fatalf("OuterStep = %d, quiero %d", s.OuterStep, StepReview)
	}
	if len(b.updateCalls) != 1 {
		t.Fatalf("UpdateCampaign llamado %d veces, quiero 1", len(b.updateCalls))
	}
	if got := b.updateCalls[0]["campaign_recipient_type"]; got != "otra_persona" {
		t.Fatalf("campaign_recipient_type = %v", got)
	}

	// publicar
	if err := s.Publish(context.Background(), b); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	last := b.updateCalls[len(b.updateCalls)-1]
	if last["campaign_status"] != "active" {
		t.Fatalf("Publish debe activar la campaña: %v", last)
	}
	if last["campaign_verification_requested"] != false {
		t.Fatalf("Publish directo no solicita verificación: %v", last)
	}
}

func TestNextInvalidSubstepDoesNotAdvance(t *testing.T) {
	b := newFakeBridge()
	s := NewSession(uuid.New())
	// formulario vacío: el subpaso 1 falla

	errs, err := s.Next(context.Background(), b)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if len(errs) == 0 {
		t.Fatal("subpaso inválido debe devolver errores de campo")
	}
	if s.Substep != 1 || s.OuterStep != StepCompose {
		t.Fatalf("el puntero no debe moverse: paso=%d subpaso=%d", s.OuterStep, s.Substep)
	}
	if b.saveCalls != 0 {
		t.Fatal("la validación local no debe tocar el bridge")
	}
}

func TestSaveDraftReusesCampaignID(t *testing.T) {
	b := newFakeBridge()
	s := NewSession(uuid.New())
	s.Form = validForm(t)

	advanceToReview(t, s, b)
	first := *s.CampaignID

	// volver al paso 1 y repetir el cruce: update en sitio, no duplica
	s.Prev()
	if s.OuterStep != StepCompose || s.Substep != 1 {
		t.Fatalf("Prev debe volver al paso 1 subpaso 1: paso=%d subpaso=%d", s.OuterStep, s.Substep)
	}
	advanceToReview(t, s, b)

	if b.saveCalls != 2 {
		t.Fatalf("SaveDraft llamado %d veces, quiero 2", b.saveCalls)
	}
	if b.lastExisting == nil || *b.lastExisting != first {
		t.Fatal("la segunda llamada debe llevar el id existente")
	}
	if *s.CampaignID != first {
		t.Fatal("el id de campaña no debe cambiar")
	}
}

func TestSaveDraftFailureKeepsState(t *testing.T) {
	b := newFakeBridge()
	b.saveErr = errors.New("timeout")
	s := NewSession(uuid.New())
	s.Form = validForm(t)

	ctx := context.Background()
	for i := 0; i < SubstepCount-1; i++ {
		if errs, err := s.Next(ctx, b); err != nil || len(errs) > 0 {
			t.Fatalf("subpaso %d: errs=%v err=%v", s.Substep, errs, err)
		}
	}

	_, err := s.Next(ctx, b) // cruce 7 → 2 con bridge roto
	be, ok := AsBridgeError(err)
	if !ok || be.Code != CodeDraftSaveFailed {
		t.Fatalf("quiero DRAFT_SAVE_FAILED, tengo %v", err)
	}
	if s.OuterStep != StepCompose || s.Substep != SubstepCount {
		t.Fatal("en fallo del bridge el puntero se queda en el subpaso 7")
	}
	if s.CampaignID != nil {
		t.Fatal("sin SaveDraft exitoso no hay id de campaña")
	}
}

func TestDraftPreconditions(t *testing.T) {
	f := NewFormState()
	err := CheckDraftPreconditions(f)
	be, ok := AsBridgeError(err)
	if !ok || be.Code != CodeMissingRequiredField {
		t.Fatalf("quiero MISSING_REQUIRED_FIELD, tengo %v", err)
	}

	f.Set("title", "Escuela Rural")
	f.Set("description", "Refacción de aulas")
	f.Set("category", "educacion")
	err = CheckDraftPreconditions(f)
	be, ok = AsBridgeError(err)
	if !ok || be.Code != CodeNoMedia {
		t.Fatalf("sin fotos quiero NO_MEDIA, tengo %v", err)
	}

	f.AddMedia("https://cdn/foto.webp", MediaTypeImage)
	if err := CheckDraftPreconditions(f); err != nil {
		t.Fatalf("precondiciones completas: %v", err)
	}
}

func TestPrevIsPureAndFloors(t *testing.T) {
	b := newFakeBridge()
	s := NewSession(uuid.New())

	// piso: prev en 1/1 es no-op
	s.Prev()
	if s.OuterStep != StepCompose || s.Substep != 1 {
		t.Fatal("Prev en el inicio debe ser no-op")
	}

	s.Substep = 3
	s.Prev()
	if s.Substep != 2 {
		t.Fatalf("Substep = %d, quiero 2", s.Substep)
	}
	if b.saveCalls != 0 || len(b.updateCalls) != 0 {
		t.Fatal("Prev nunca toca el bridge")
	}
}

func TestUploadInFlightBlocksNext(t *testing.T) {
	b := newFakeBridge()
	s := NewSession(uuid.New())
	s.Form = validForm(t)
	s.UploadInFlight = true

	_, err := s.Next(context.Background(), b)
	if err == nil {
		t.Fatal("con subida en vuelo next() debe rechazarse")
	}
	if s.Substep != 1 {
		t.Fatal("el puntero no debe moverse")
	}
}

func TestPublishWithoutDraftFails(t *testing.T) {
	b := newFakeBridge()
	s := NewSession(uuid.New())

	err := s.Publish(context.Background(), b)
	be, ok := AsBridgeError(err)
	if !ok || be.Code != CodeMissingCampaignID {
		t.Fatalf("quiero MISSING_CAMPAIGN_ID, tengo %v", err)
	}
}

func TestRequestVerificationKeepsFlagUntouched(t *testing.T) {
	b := newFakeBridge()
	s := NewSession(uuid.New())
	s.Form = validForm(t)
	advanceToReview(t, s, b)

	id, err := s.RequestVerification(context.Background(), b)
	if err != nil {
		t.Fatalf("RequestVerification: %v", err)
	}
	if id != *s.CampaignID {
		t.Fatal("debe devolver el id de la campaña")
	}
	last := b.updateCalls[len(b.updateCalls)-1]
	if last["campaign_status"] != "active" {
		t.Fatalf("la campaña debe quedar activa: %v", last)
	}
	if _, touched := last["campaign_verification_requested"]; touched {
		t.Fatal("el flag de verificación lo administra el flujo externo")
	}
}
