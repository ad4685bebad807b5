package wizard

import (
	"fmt"
	"strings"
	"time"

	"donavida_backend/internals/constants"
)

// Subpasos fijos del paso 1, en orden.
const (
	SubstepNameDescription = 1
	SubstepCategory        = 2
	SubstepGoalAmount      = 3
	SubstepMedia           = 4
	SubstepLocation        = 5
	SubstepEndDate         = 6
	SubstepStory           = 7

	SubstepCount = 7
)

func utf8Len(s string) int { return len([]rune(s)) }

func addErr(errs map[string][]string, field, msg string) {
	errs[field] = append(errs[field], msg)
}

// ValidateStep corre solo las reglas del subpaso indicado y devuelve los
// campos violados. Un mapa vacío significa que el subpaso está completo.
func (f *FormState) ValidateStep(substep int) map[string][]string {
	errs := map[string][]string{}

	switch substep {
	case SubstepNameDescription:
		if n := utf8Len(strings.TrimSpace(f.Title)); n < constants.TitleMinLen || n > constants.TitleMaxLen {
			addErr(errs, "title", fmt.Sprintf("El título debe tener entre %d y %d caracteres", constants.TitleMinLen, constants.TitleMaxLen))
		}
		if n := utf8Len(strings.TrimSpace(f.Description)); n < constants.DescriptionMinLen || n > constants.DescriptionMaxLen {
			addErr(errs, "description", fmt.Sprintf("La descripción debe tener entre %d y %d caracteres", constants.DescriptionMinLen, constants.DescriptionMaxLen))
		}
	case SubstepCategory:
		if !constants.IsValidCategory(f.Category) {
			addErr(errs, "category", "Elige una categoría")
		}
	case SubstepGoalAmount:
		if f.GoalAmount <= 0 {
			addErr(errs, "goal_amount", "Ingresa una meta mayor a cero")
		}
	case SubstepMedia:
		if len(f.Media) == 0 {
			addErr(errs, "media", "Sube al menos una foto para tu campaña")
		}
	case SubstepLocation:
		if !constants.IsValidDepartment(f.Location) {
			addErr(errs, "location", "Elige un departamento")
		} else if f.Province != "" && !constants.IsValidProvince(f.Location, f.Province) {
			addErr(errs, "province", "La provincia no pertenece al departamento elegido")
		}
	case SubstepEndDate:
		if msg := validateEndDate(f.EndDate); msg != "" {
			addErr(errs, "end_date", msg)
		}
	case SubstepStory:
		if n := utf8Len(strings.TrimSpace(f.Story)); n < constants.StoryMinLen || n > constants.StoryMaxLen {
			addErr(errs, "story", fmt.Sprintf("La historia debe tener entre %d y %d caracteres", constants.StoryMinLen, constants.StoryMaxLen))
		}
	default:
		addErr(errs, "_", fmt.Sprintf("subpaso desconocido: %d", substep))
	}

	f.Errors = errs
	return errs
}

func validateEndDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "Elige una fecha de cierre"
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return "Fecha inválida (usa AAAA-MM-DD)"
	}
	today := time.Now().Truncate(24 * time.Hour)
	if !t.After(today) {
		return "La fecha de cierre debe ser futura"
	}
	return ""
}

// ValidateRecipient: reglas del paso 2 (quién recibe los fondos).
func (f *FormState) ValidateRecipient() map[string][]string {
	errs := map[string][]string{}

	if !constants.IsValidRecipientType(f.RecipientType) {
		addErr(errs, "recipient_type", "Elige quién recibirá los fondos")
		f.Errors = errs
		return errs
	}

	switch f.RecipientType {
	case constants.RecipientThirdParty:
		if strings.TrimSpace(f.BeneficiaryName) == "" {
			addErr(errs, "beneficiary_name", "Ingresa el nombre del beneficiario")
		}
		if strings.TrimSpace(f.Relationship) == "" {
			addErr(errs, "relationship", "Indica tu relación con el beneficiario")
		}
		if utf8Len(strings.TrimSpace(f.Reason)) < constants.ReasonMinLen {
			addErr(errs, "reason", fmt.Sprintf("Cuéntanos el motivo (mínimo %d caracteres)", constants.ReasonMinLen))
		}
	case constants.RecipientLegalEntity:
		if f.LegalEntityID == nil {
			addErr(errs, "legal_entity_id", "Selecciona la persona jurídica registrada")
		}
	}

	f.Errors = errs
	return errs
}

// ValidateAll agrega todas las reglas: los 7 subpasos más el beneficiario.
func (f *FormState) ValidateAll() map[string][]string {
	all := map[string][]string{}
	for s := 1; s <= SubstepCount; s++ {
		for field, msgs := range f.ValidateStep(s) {
			all[field] = append(all[field], msgs...)
		}
	}
	for field, msgs := range f.ValidateRecipient() {
		all[field] = append(all[field], msgs...)
	}
	f.Errors = all
	return all
}
