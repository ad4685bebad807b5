package wizard

import (
	"testing"
	"time"
)

// validForm arma un formulario que pasa los 7 subpasos.
func validForm(t *testing.T) *FormState {
	t.Helper()
	f := NewFormState()
	mustSet := func(field, value string) {
		t.Helper()
		if err := f.Set(field, value); err != nil {
			t.Fatalf("Set(%s): %v", field, err)
		}
	}
	mustSet("title", "Escuela Rural de Sopocachi")
	mustSet("description", "Refacción de aulas para 120 estudiantes")
	mustSet("category", "educacion")
	mustSet("goal_amount", "45.000")
	mustSet("location", "la_paz")
	mustSet("province", "murillo")
	mustSet("end_date", time.Now().AddDate(0, 3, 0).Format("2006-01-02"))
	mustSet("story", "Las aulas se inundan cada época de lluvia y los estudiantes pierden semanas de clases. Queremos arreglar el techo y los pisos.")
	f.AddMedia("https://cdn/escuela.webp", MediaTypeImage)
	return f
}

func TestValidateStepOnlyChecksThatSubstep(t *testing.T) {
	f := NewFormState()
	f.Set("title", "Escuela Rural")
	f.Set("description", "Refacción de aulas en Sopocachi")

	// el subpaso 1 pasa aunque el resto del formulario esté vacío
	if errs := f.ValidateStep(SubstepNameDescription); len(errs) != 0 {
		t.Fatalf("subpaso 1 debería pasar, errores: %v", errs)
	}
	// el subpaso 2 (categoría) sí falla
	if errs := f.ValidateStep(SubstepCategory); len(errs["category"]) == 0 {
		t.Fatal("sin categoría el subpaso 2 debe fallar en category")
	}
}

func TestValidateStepTitleBounds(t *testing.T) {
	f := NewFormState()
	f.Set("title", "ab") // menos de 3
	f.Set("description", "Descripción válida de campaña")
	if errs := f.ValidateStep(SubstepNameDescription); len(errs["title"]) == 0 {
		t.Fatal("título de 2 caracteres debe fallar")
	}
}

func TestValidateEndDateMustBeFuture(t *testing.T) {
	f := NewFormState()

	f.Set("end_date", "2020-01-01")
	if errs := f.ValidateStep(SubstepEndDate); len(errs["end_date"]) == 0 {
		t.Fatal("fecha pasada debe fallar")
	}

	f.Set("end_date", "no-es-fecha")
	if errs := f.ValidateStep(SubstepEndDate); len(errs["end_date"]) == 0 {
		t.Fatal("fecha malformada debe fallar")
	}

	f.Set("end_date", time.Now().AddDate(0, 1, 0).Format("2006-01-02"))
	if errs := f.ValidateStep(SubstepEndDate); len(errs) != 0 {
		t.Fatalf("fecha futura debería pasar: %v", errs)
	}
}

func TestValidateMediaSubstepNeedsOnePhoto(t *testing.T) {
	f := NewFormState()
	if errs := f.ValidateStep(SubstepMedia); len(errs["media"]) == 0 {
		t.Fatal("sin fotos el subpaso de media debe fallar")
	}
	f.AddMedia("https://cdn/foto.webp", MediaTypeImage)
	if errs := f.ValidateStep(SubstepMedia); len(errs) != 0 {
		t.Fatalf("con una foto debería pasar: %v", errs)
	}
}

func TestValidateRecipientThirdPartyNamesMissingReason(t *testing.T) {
	f := validForm(t)
	f.Set("recipient_type", "otra_persona")
	f.Set("beneficiary_name", "María Quispe")
	f.Set("relationship", "Mi hermana")
	// reason ausente

	errs := f.ValidateRecipient()
	if len(errs["reason"]) == 0 {
		t.Fatalf("falta reason y no aparece en el mapa: %v", errs)
	}
	if len(errs["beneficiary_name"]) != 0 || len(errs["relationship"]) != 0 {
		t.Fatalf("campos completos no deberían fallar: %v", errs)
	}
}

func TestValidateRecipientLegalEntityNeedsID(t *testing.T) {
	f := validForm(t)
	f.Set("recipient_type", "persona_juridica")
	if errs := f.ValidateRecipient(); len(errs["legal_entity_id"]) == 0 {
		t.Fatal("persona jurídica sin id debe fallar")
	}
}

func TestValidateRecipientSelfNeedsNothingExtra(t *testing.T) {
	f := validForm(t)
	f.Set("recipient_type", "tu_mismo")
	if errs := f.ValidateRecipient(); len(errs) != 0 {
		t.Fatalf("tu_mismo no exige campos extra: %v", errs)
	}
}

func TestValidateAllAggregates(t *testing.T) {
	f := NewFormState()
	errs := f.ValidateAll()

	for _, field := range []string{"title", "category", "goal_amount", "media", "location", "end_date", "story", "recipient_type"} {
		if len(errs[field]) == 0 {
			t.Fatalf("ValidateAll sobre formulario vacío debería incluir %q: %v", field, errs)
		}
	}

	f = validForm(t)
	f.Set("recipient_type", "tu_mismo")
	if errs := f.ValidateAll(); len(errs) != 0 {
		t.Fatalf("formulario completo debería pasar: %v", errs)
	}
}
