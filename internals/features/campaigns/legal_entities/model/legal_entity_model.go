package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LegalEntityModel: persona jurídica registrada (fundaciones, ONGs). El
// asistente solo referencia filas ya existentes; el alta la hace el equipo
// de operaciones.
type LegalEntityModel struct {
	LegalEntityID    uuid.UUID `gorm:"column:legal_entity_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"legal_entity_id"`
	LegalEntityName  string    `gorm:"column:legal_entity_name;type:varchar(160);not null;index" json:"legal_entity_name"`
	LegalEntityNIT   string    `gorm:"column:legal_entity_nit;type:varchar(20);uniqueIndex;not null" json:"legal_entity_nit"`
	LegalEntityCity  string    `gorm:"column:legal_entity_city;type:varchar(60)" json:"legal_entity_city"`
	LegalEntityEmail string    `gorm:"column:legal_entity_email;type:varchar(120)" json:"legal_entity_email"`

	LegalEntityCreatedAt time.Time      `gorm:"column:legal_entity_created_at;autoCreateTime" json:"legal_entity_created_at"`
	LegalEntityDeletedAt gorm.DeletedAt `gorm:"column:legal_entity_deleted_at;index" json:"-"`
}

func (LegalEntityModel) TableName() string {
	return "legal_entities"
}
