package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Platform identifies where an announcement was published
type Platform string

const (
	PlatformX       Platform = "x"
	PlatformBlog    Platform = "blog"
	PlatformDiscord Platform = "discord"
	PlatformGitHub  Platform = "github"
	PlatformOther   Platform = "other"
)

// CuratedLink is an externally authored article worth surfacing.
type CuratedLink struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Announcement is a first-party company post.
type Announcement struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	URL         string      `json:"url"`
	Company     string      `json:"company"`
	CompanyLogo null.String `json:"companyLogo,omitempty"`
	Platform    Platform    `json:"platform"`
	PublishedAt time.Time   `json:"publishedAt"`
	Category    string      `json:"category"`
	Featured    bool        `json:"featured"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
