package models

import (
	"time"

	"gorm.io/gorm"
)

// Tag is an admin-managed label attached to posts. The slug doubles as a URL
// identifier, so it carries a uniqueness constraint.
type Tag struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
