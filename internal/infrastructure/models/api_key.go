package models

import (
	"time"

	"gorm.io/gorm"
)

// ApiKey is the api_keys table. KeyHash is the SHA-256 of the full key;
// Permissions is a JSON-encoded string array.
type ApiKey struct {
	ID          string `gorm:"type:text;primaryKey"`
	Name        string `gorm:"type:varchar(100);not null"`
	KeyPrefix   string `gorm:"type:varchar(20);not null;index"`
	KeyHash     string `gorm:"type:varchar(64);uniqueIndex;not null"`
	KeyMasked   string `gorm:"type:varchar(20);not null"`
	Permissions string `gorm:"type:text;not null"`
	IsActive    bool   `gorm:"default:true;not null"`
	LastUsedAt  *time.Time
	ExpiresAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName keeps the legacy table name.
func (ApiKey) TableName() string { return "api_keys" }
