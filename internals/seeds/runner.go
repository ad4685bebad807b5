package seeds

import (
	"gorm.io/gorm"

	legalentities "donavida_backend/internals/seeds/legal_entities"
)

// RunAllSeeds carga los datos base que la plataforma necesita para operar.
// Se invoca manualmente (no en el arranque normal del servidor).
func RunAllSeeds(db *gorm.DB) {
	legalentities.SeedLegalEntitiesFromJSON(db, "internals/seeds/legal_entities/data_legal_entities.json")
}
