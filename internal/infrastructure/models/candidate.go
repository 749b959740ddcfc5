package models

import (
	"time"

	"gorm.io/gorm"
)

// Candidate is the candidates table. Skills is a JSON-encoded string
// array; availability is indexed for filtering.
type Candidate struct {
	ID             string  `gorm:"type:text;primaryKey"`
	Name           string  `gorm:"type:text;not null"`
	AnonymousAlias string  `gorm:"type:text"`
	IsPublic       bool    `gorm:"default:false"`
	Title          string  `gorm:"type:text;not null"`
	Location       string  `gorm:"type:text"`
	Summary        string  `gorm:"type:text"`
	Skills         string  `gorm:"type:text;not null;default:'[]'"`
	Experience     string  `gorm:"type:varchar(50)"`
	Availability   string  `gorm:"type:varchar(20);not null;index"`
	Linkedin       *string `gorm:"type:text"`
	Github         *string `gorm:"type:text"`
	Twitter        *string `gorm:"type:text"`
	Featured       bool    `gorm:"default:false;index"`
	CvURL          *string `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}
