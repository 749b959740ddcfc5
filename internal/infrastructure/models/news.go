package models

import (
	"time"

	"gorm.io/gorm"
)

// CuratedLink is the curated_links table.
type CuratedLink struct {
	ID          string    `gorm:"type:text;primaryKey"`
	Title       string    `gorm:"type:text;not null"`
	URL         string    `gorm:"type:text;not null"`
	Source      string    `gorm:"type:text;not null"`
	PublishedAt time.Time `gorm:"index"`
	Category    string    `gorm:"type:varchar(50);index"`
	Featured    bool      `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// Announcement is the announcements table.
type Announcement struct {
	ID          string    `gorm:"type:text;primaryKey"`
	Title       string    `gorm:"type:text;not null"`
	URL         string    `gorm:"type:text;not null"`
	Company     string    `gorm:"type:text;not null"`
	CompanyLogo *string   `gorm:"type:text"`
	Platform    string    `gorm:"type:varchar(20);not null;index"`
	PublishedAt time.Time `gorm:"index"`
	Category    string    `gorm:"type:varchar(50)"`
	Featured    bool      `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
