package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Availability is a candidate's job-search status
type Availability string

const (
	AvailabilityLooking    Availability = "looking"
	AvailabilityOpen       Availability = "open"
	AvailabilityNotLooking Availability = "not-looking"
)

// Candidate represents a person in the talent pool. Candidates may hide
// their real name behind an anonymous alias; DisplayName resolves which
// one renders.
type Candidate struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	AnonymousAlias string       `json:"anonymousAlias"`
	IsPublic       bool         `json:"isPublic"`
	Title          string       `json:"title"`
	Location       string       `json:"location"`
	Summary        string       `json:"summary"`
	Skills         []string     `json:"skills"`
	Experience     string       `json:"experience"`
	Availability   Availability `json:"availability"`
	LinkedIn       null.String  `json:"linkedin,omitempty"`
	GitHub         null.String  `json:"github,omitempty"`
	Twitter        null.String  `json:"twitter,omitempty"`
	Featured       bool         `json:"featured"`
	CVURL          null.String  `json:"cvUrl,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// DisplayName returns the name shown on public surfaces: the real name
// when the profile is public, the anonymous alias otherwise.
func (c *Candidate) DisplayName() string {
	if c.IsPublic {
		return c.Name
	}
	if c.AnonymousAlias != "" {
		return c.AnonymousAlias
	}
	return "Anonymous Candidate"
}
