package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// BlogPost is a first-party long-form post. The ID is a slug of the
// title. A post with no PublishedAt is a draft.
type BlogPost struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Summary     string      `json:"summary"`
	Body        string      `json:"body"`
	CoverImage  null.String `json:"coverImage,omitempty"`
	PublishedAt null.Time   `json:"publishedAt,omitempty"`
	Featured    bool        `json:"featured"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
