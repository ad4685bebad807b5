package wizard

import (
	"testing"

	"github.com/google/uuid"
)

func TestSetGoalAmountStripsSeparators(t *testing.T) {
	f := NewFormState()

	if err := f.Set("goal_amount", "12.000"); err != nil {
		t.Fatalf("Set(goal_amount): %v", err)
	}
	if f.GoalAmount != 12000 {
		t.Fatalf("GoalAmount = %d, quiero 12000", f.GoalAmount)
	}

	if err := f.Set("goal_amount", "1,500,000"); err != nil {
		t.Fatalf("Set con comas: %v", err)
	}
	if f.GoalAmount != 1500000 {
		t.Fatalf("GoalAmount = %d, quiero 1500000", f.GoalAmount)
	}

	if err := f.Set("goal_amount", "12k"); err == nil {
		t.Fatal("monto con letras debería fallar")
	}
}

func TestSetUnknownFieldFails(t *testing.T) {
	f := NewFormState()
	if err := f.Set("no_existe", "x"); err == nil {
		t.Fatal("campo desconocido debería fallar")
	}
}

func TestChangingDepartmentResetsProvince(t *testing.T) {
	f := NewFormState()
	if err := f.Set("location", "la_paz"); err != nil {
		t.Fatal(err)
	}
	if err := f.Set("province", "murillo"); err != nil {
		t.Fatal(err)
	}

	if err := f.Set("location", "cochabamba"); err != nil {
		t.Fatal(err)
	}
	if f.Province != "" {
		t.Fatalf("Province = %q tras cambiar de departamento, quiero vacío", f.Province)
	}
}

func TestSetLegalEntityID(t *testing.T) {
	f := NewFormState()
	id := uuid.New()
	if err := f.Set("legal_entity_id", id.String()); err != nil {
		t.Fatal(err)
	}
	if f.LegalEntityID == nil || *f.LegalEntityID != id {
		t.Fatal("LegalEntityID no se guardó")
	}
	if err := f.Set("legal_entity_id", ""); err != nil {
		t.Fatal(err)
	}
	if f.LegalEntityID != nil {
		t.Fatal("vacío debería limpiar LegalEntityID")
	}
	if err := f.Set("legal_entity_id", "no-es-uuid"); err == nil {
		t.Fatal("UUID inválido debería fallar")
	}
}

func TestFirstMediaIsPrimary(t *testing.T) {
	f := NewFormState()
	f.AddMedia("https://cdn/a.webp", MediaTypeImage)
	f.AddMedia("https://cdn/b.webp", MediaTypeImage)

	if !f.Media[0].IsPrimary || f.Media[1].IsPrimary {
		t.Fatal("solo el primer item debe ser primario")
	}
	if f.PrimaryCount() != 1 {
		t.Fatalf("PrimaryCount = %d, quiero 1", f.PrimaryCount())
	}
}

func TestRemovePrimaryPromotesNext(t *testing.T) {
	f := NewFormState()
	f.AddMedia("https://cdn/a.webp", MediaTypeImage)
	f.AddMedia("https://cdn/b.webp", MediaTypeImage)
	f.AddMedia("https://cdn/c.webp", MediaTypeImage)

	if err := f.RemoveMedia(0); err != nil {
		t.Fatal(err)
	}
	if len(f.Media) != 2 {
		t.Fatalf("len(Media) = %d", len(f.Media))
	}
	if !f.Media[0].IsPrimary {
		t.Fatal("al borrar la primaria, la siguiente debe heredar el flag")
	}
	if f.PrimaryCount() != 1 {
		t.Fatalf("PrimaryCount = %d, quiero 1", f.PrimaryCount())
	}
	for i, m := range f.Media {
		if m.OrderIndex != i {
			t.Fatalf("OrderIndex[%d] = %d tras reindexar", i, m.OrderIndex)
		}
	}
}

func TestSetPrimaryMediaMovesFlag(t *testing.T) {
	f := NewFormState()
	f.AddMedia("https://cdn/a.webp", MediaTypeImage)
	f.AddMedia("https://cdn/b.webp", MediaTypeImage)

	if err := f.SetPrimaryMedia(1); err != nil {
		t.Fatal(err)
	}
	if f.Media[0].IsPrimary || !f.Media[1].IsPrimary {
		t.Fatal("el flag primario no se movió al índice 1")
	}
	if err := f.SetPrimaryMedia(5); err == nil {
		t.Fatal("índice fuera de rango debería fallar")
	}
}

func TestReplaceMediaKeepsPrimaryAndOrder(t *testing.T) {
	f := NewFormState()
	f.AddMedia("https://cdn/a.webp", MediaTypeImage)
	if err := f.ReplaceMediaAt(0, "https://cdn/a-editada.webp"); err != nil {
		t.Fatal(err)
	}
	if f.Media[0].MediaURL != "https://cdn/a-editada.webp" {
		t.Fatal("la URL no se reemplazó")
	}
	if !f.Media[0].IsPrimary || f.Media[0].OrderIndex != 0 {
		t.Fatal("reemplazar no debe tocar primario ni orden")
	}
}

func TestYouTubeLinksAndLegacySingular(t *testing.T) {
	f := NewFormState()
	if f.LegacyYouTubeURL() != "" {
		t.Fatal("sin links la vista singular debe ser vacía")
	}

	links := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/abc123XYZ_-",
	}
	if err := f.SetYouTubeLinks(links); err != nil {
		t.Fatal(err)
	}
	if got := f.LegacyYouTubeURL(); got != links[0] {
		t.Fatalf("LegacyYouTubeURL = %q, quiero el primer link", got)
	}

	if err := f.SetYouTubeLinks([]string{"https://vimeo.com/123"}); err == nil {
		t.Fatal("URL que no es de YouTube debería fallar")
	}
}
