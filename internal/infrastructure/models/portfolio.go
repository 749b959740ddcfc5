package models

import (
	"time"

	"gorm.io/gorm"
)

// Investment is the investments table. Categories is a JSON-encoded
// string array; tier is stored as text matching the source data.
type Investment struct {
	ID          string  `gorm:"type:text;primaryKey"`
	Title       string  `gorm:"type:text;not null;index"`
	Description string  `gorm:"type:text"`
	LogoURL     string  `gorm:"type:text;column:logo_url"`
	Tier        string  `gorm:"type:varchar(5);not null;default:'4'"`
	Featured    bool    `gorm:"default:false"`
	Status      string  `gorm:"type:varchar(20);not null;index"`
	Categories  string  `gorm:"type:text;not null;default:'[]'"`
	Website     *string `gorm:"type:text"`
	Twitter     *string `gorm:"type:text"`
	Linkedin    *string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// Affiliation is the affiliations table. Date bounds are free text.
type Affiliation struct {
	ID          string `gorm:"type:text;primaryKey"`
	Title       string `gorm:"type:text;not null"`
	Role        string `gorm:"type:text"`
	BeginDate   string `gorm:"type:varchar(50)"`
	EndDate     string `gorm:"type:varchar(50)"`
	Description string `gorm:"type:text"`
	LogoURL     string `gorm:"type:text;column:logo_url"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
