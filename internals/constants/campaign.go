package constants

import "strings"

/* ===================== Categorías ===================== */

var CampaignCategories = []string{
	"educacion",
	"salud",
	"medio_ambiente",
	"animales",
	"comunidad",
	"emergencias",
	"deporte",
	"cultura",
	"otros",
}

func IsValidCategory(cat string) bool {
	cat = strings.ToLower(strings.TrimSpace(cat))
	for _, c := range CampaignCategories {
		if c == cat {
			return true
		}
	}
	return false
}

/* ===================== Tipo de beneficiario ===================== */

const (
	RecipientSelf        = "tu_mismo"
	RecipientThirdParty  = "otra_persona"
	RecipientLegalEntity = "persona_juridica"
	RecipientOrg         = "organizacion"
)

func IsValidRecipientType(t string) bool {
	switch t {
	case RecipientSelf, RecipientThirdParty, RecipientLegalEntity, RecipientOrg:
		return true
	}
	return false
}

/* ===================== Límites de campos ===================== */

const (
	TitleMinLen       = 3
	TitleMaxLen       = 80
	DescriptionMinLen = 10
	DescriptionMaxLen = 150
	StoryMinLen       = 10
	StoryMaxLen       = 600
	ReasonMinLen      = 10
)
