package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// La identidad vive en Google; acá solo se guarda el espejo mínimo que
// necesitan las campañas y donaciones para mostrar nombres.
type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserGoogleSub string  `gorm:"column:user_google_sub;type:varchar(64);not null;unique" json:"-"`
	UserName      string  `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail     string  `gorm:"column:user_email;type:varchar(255);not null" json:"user_email"`
	UserAvatarURL *string `gorm:"column:user_avatar_url;type:text" json:"user_avatar_url,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (UserModel) TableName() string { return "users" }
