package models

import (
	"time"

	"gorm.io/gorm"
)

// Job is the jobs table. Tags is a JSON-encoded string array; category
// and featured are indexed for the admin UI's filter predicates.
type Job struct {
	ID              string  `gorm:"type:text;primaryKey"`
	Title           string  `gorm:"type:text;not null"`
	Company         string  `gorm:"type:text;not null;index"`
	CompanyLogo     *string `gorm:"type:text"`
	CompanyWebsite  *string `gorm:"type:text"`
	CompanyTwitter  *string `gorm:"type:text"`
	CompanyLinkedin *string `gorm:"type:text"`
	Link            string  `gorm:"type:text;not null"`
	Location        string  `gorm:"type:text"`
	RemoteMode      string  `gorm:"type:varchar(20);not null;default:'onsite'"`
	EmploymentType  string  `gorm:"type:varchar(50)"`
	Salary          *string `gorm:"type:text"`
	Department      *string `gorm:"type:text"`
	Tags            string  `gorm:"type:text;not null;default:'[]'"`
	Category        string  `gorm:"type:varchar(20);not null;index"`
	Featured        bool    `gorm:"default:false;index"`
	Description     string  `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
