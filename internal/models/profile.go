package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile is the 1:1 extension of a User holding presentation fields.
// It is created in the same transaction as its owning user at registration.
type Profile struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bio       string         `gorm:"type:text" json:"bio"`
	AvatarURL string         `json:"avatar_url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
