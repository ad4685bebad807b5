package service

import (
	"testing"

	"github.com/google/uuid"

	"donavida_backend/internals/features/campaigns/wizard"
)

func TestSnapshotRoundTripPreservesUploadInFlight(t *testing.T) {
	sess := wizard.NewSession(uuid.New())
	sess.Form.Title = "Escuela Rural de Sopocachi"
	sess.Form.AddMedia("https://cdn/portada.webp", wizard.MediaTypeImage)
	sess.Substep = 4
	sess.UploadInFlight = true

	row, err := sessionToRow(sess)
	if err != nil {
		t.Fatalf("sessionToRow: %v", err)
	}
	if !row.WizardSessionUploadInFlight {
		t.Fatal("el flag en vuelo debe viajar en la fila")
	}

	back, err := rowToSession(row)
	if err != nil {
		t.Fatalf("rowToSession: %v", err)
	}
	if !back.UploadInFlight {
		t.Fatal("el flag en vuelo debe sobrevivir el round trip del snapshot")
	}
	if back.Substep != 4 || back.OuterStep != sess.OuterStep {
		t.Fatalf("punteros de paso perdidos: paso=%d subpaso=%d", back.OuterStep, back.Substep)
	}
	if back.Form.Title != sess.Form.Title || len(back.Form.Media) != 1 {
		t.Fatal("formulario perdido en el round trip")
	}

	// la sesión recargada con subida pendiente no avanza
	if _, err := back.Next(nil, nil); err == nil {
		t.Fatal("next con subida en vuelo debe rechazarse")
	}
}

func TestSnapshotRoundTripClearedFlag(t *testing.T) {
	sess := wizard.NewSession(uuid.New())
	row, err := sessionToRow(sess)
	if err != nil {
		t.Fatalf("sessionToRow: %v", err)
	}
	back, err := rowToSession(row)
	if err != nil {
		t.Fatalf("rowToSession: %v", err)
	}
	if back.UploadInFlight {
		t.Fatal("una sesión nueva no tiene subidas en vuelo")
	}
}
