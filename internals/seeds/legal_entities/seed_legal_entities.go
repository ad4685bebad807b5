package legalentities

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"donavida_backend/internals/features/campaigns/legal_entities/model"
)

type legalEntitySeed struct {
	Name  string `json:"name"`
	NIT   string `json:"nit"`
	City  string `json:"city"`
	Email string `json:"email"`
}

// SeedLegalEntitiesFromJSON carga el padrón inicial de personas jurídicas.
// Idempotente: una fila existente (por NIT) se salta.
func SeedLegalEntitiesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Leyendo archivo:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ No se pudo leer el JSON: %v", err)
	}

	var entries []legalEntitySeed
	if err := json.Unmarshal(file, &entries); err != nil {
		log.Fatalf("❌ JSON inválido: %v", err)
	}

	for _, e := range entries {
		var existing model.LegalEntityModel
		if err := db.Where("legal_entity_nit = ?", e.NIT).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Persona jurídica con NIT %s ya existe, se salta", e.NIT)
			continue
		}

		row := model.LegalEntityModel{
			LegalEntityName:  e.Name,
			LegalEntityNIT:   e.NIT,
			LegalEntityCity:  e.City,
			LegalEntityEmail: e.Email,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ No se pudo insertar %s: %v", e.Name, err)
			continue
		}
		log.Printf("✅ Persona jurídica %s registrada", e.Name)
	}
}
