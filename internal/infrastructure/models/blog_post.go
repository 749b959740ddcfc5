package models

import (
	"time"

	"gorm.io/gorm"
)

// BlogPost is the blog_posts table. A NULL published_at marks a draft.
type BlogPost struct {
	ID          string     `gorm:"type:text;primaryKey"`
	Title       string     `gorm:"type:text;not null"`
	Summary     string     `gorm:"type:text"`
	Body        string     `gorm:"type:text"`
	CoverImage  *string    `gorm:"type:text"`
	PublishedAt *time.Time `gorm:"index"`
	Featured    bool       `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
