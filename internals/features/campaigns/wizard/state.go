package wizard

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"donavida_backend/internals/constants"
	helper "donavida_backend/internals/helpers"
)

/* ===================== Media ===================== */

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

type MediaItem struct {
	MediaURL   string `json:"media_url"`
	Type       string `json:"type"`
	IsPrimary  bool   `json:"is_primary"`
	OrderIndex int    `json:"order_index"`
}

/* ===================== Form State ===================== */

// FormState guarda todos los campos del asistente más el mapa de errores.
// La validación nunca lanza: los errores de campo son un resultado normal.
type FormState struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	GoalAmount  int    `json:"goal_amount"`
	Location    string `json:"location"`
	Province    string `json:"province"`
	EndDate     string `json:"end_date"` // YYYY-MM-DD
	Story       string `json:"story"`

	BeneficiariesDescription string `json:"beneficiaries_description"`

	RecipientType   string     `json:"recipient_type"`
	BeneficiaryName string     `json:"beneficiary_name"`
	Relationship    string     `json:"relationship"`
	Reason          string     `json:"reason"`
	LegalEntityID   *uuid.UUID `json:"legal_entity_id,omitempty"`

	Media        []MediaItem `json:"media"`
	YouTubeLinks []string    `json:"youtube_links"`

	Errors map[string][]string `json:"-"`
}

func NewFormState() *FormState {
	return &FormState{Errors: map[string][]string{}}
}

// Set asigna un campo por nombre. El monto llega como lo tipea el usuario
// (con o sin separadores de miles) y se guarda ya limpio.
func (f *FormState) Set(field, value string) error {
	value = strings.TrimSpace(value)
	switch field {
	case "title":
		f.Title = value
	case "description":
		f.Description = value
	case "category":
		f.Category = strings.ToLower(value)
	case "goal_amount":
		if value == "" {
			f.GoalAmount = 0
			return nil
		}
		n, err := helper.StripAmount(value)
		if err != nil {
			return err
		}
		f.GoalAmount = n
	case "location":
		f.setLocation(value)
	case "province":
		f.Province = strings.ToLower(value)
	case "end_date":
		f.EndDate = value
	case "story":
		f.Story = value
	case "beneficiaries_description":
		f.BeneficiariesDescription = value
	case "recipient_type":
		f.RecipientType = value
	case "beneficiary_name":
		f.BeneficiaryName = value
	case "relationship":
		f.Relationship = value
	case "reason":
		f.Reason = value
	case "legal_entity_id":
		if value == "" {
			f.LegalEntityID = nil
			return nil
		}
		id, err := uuid.Parse(value)
		if err != nil {
			return fmt.Errorf("legal_entity_id no es un UUID válido")
		}
		f.LegalEntityID = &id
	default:
		return fmt.Errorf("campo desconocido: %s", field)
	}
	return nil
}

// Cambiar de departamento invalida una provincia que no le pertenece.
func (f *FormState) setLocation(value string) {
	value = strings.ToLower(value)
	if f.Province != "" && !constants.IsValidProvince(value, f.Province) {
		f.Province = ""
	}
	f.Location = value
}

// SetYouTubeLinks reemplaza la lista completa; cada URL debe ser de YouTube.
func (f *FormState) SetYouTubeLinks(links []string) error {
	clean := make([]string, 0, len(links))
	for _, l := range links {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if !helper.IsYouTubeURL(l) {
			return fmt.Errorf("URL de YouTube inválida: %s", l)
		}
		clean = append(clean, l)
	}
	f.YouTubeLinks = clean
	return nil
}

// LegacyYouTubeURL: vista singular derivada para el colaborador que todavía
// espera un solo campo. Solo existe en el borde de serialización.
func (f *FormState) LegacyYouTubeURL() string {
	if len(f.YouTubeLinks) == 0 {
		return ""
	}
	return f.YouTubeLinks[0]
}

/* ===================== Operaciones de media ===================== */

// AddMedia agrega un item al final; el primero de la lista es primario.
func (f *FormState) AddMedia(url, mediaType string) {
	item := MediaItem{
		MediaURL:   url,
		Type:       mediaType,
		IsPrimary:  len(f.Media) == 0,
		OrderIndex: len(f.Media),
	}
	f.Media = append(f.Media, item)
}

// ReplaceMediaAt sustituye la URL del item en idx (flujo de edición de foto).
// El flag primario y la posición no cambian.
func (f *FormState) ReplaceMediaAt(idx int, url string) error {
	if idx < 0 || idx >= len(f.Media) {
		return fmt.Errorf("índice de media fuera de rango: %d", idx)
	}
	f.Media[idx].MediaURL = url
	return nil
}

// RemoveMedia elimina el item en idx. Si era el primario y quedan items,
// el nuevo primer item pasa a ser primario.
func (f *FormState) RemoveMedia(idx int) error {
	if idx < 0 || idx >= len(f.Media) {
		return fmt.Errorf("índice de media fuera de rango: %d", idx)
	}
	wasPrimary := f.Media[idx].IsPrimary
	f.Media = append(f.Media[:idx], f.Media[idx+1:]...)
	if wasPrimary && len(f.Media) > 0 {
		for i := range f.Media {
			f.Media[i].IsPrimary = false
		}
		f.Media[0].IsPrimary = true
	}
	f.reindexMedia()
	return nil
}

// SetPrimaryMedia marca idx como primario y desmarca el resto.
func (f *FormState) SetPrimaryMedia(idx int) error {
	if idx < 0 || idx >= len(f.Media) {
		return fmt.Errorf("índice de media fuera de rango: %d", idx)
	}
	for i := range f.Media {
		f.Media[i].IsPrimary = i == idx
	}
	return nil
}

func (f *FormState) reindexMedia() {
	for i := range f.Media {
		f.Media[i].OrderIndex = i
	}
}

// PrimaryCount: cuántos items están marcados como primarios (invariante: 1
// cuando la lista no está vacía).
func (f *FormState) PrimaryCount() int {
	n := 0
	for _, m := range f.Media {
		if m.IsPrimary {
			n++
		}
	}
	return n
}
