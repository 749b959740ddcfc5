package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// InvestmentStatus is an investment's lifecycle state
type InvestmentStatus string

const (
	InvestmentStatusActive   InvestmentStatus = "active"
	InvestmentStatusInactive InvestmentStatus = "inactive"
	InvestmentStatusAcquired InvestmentStatus = "acquired"
)

// Investment represents a portfolio company. The ID is a slug of the
// title; Tier is stored as text ("1".."4") matching the source data.
type Investment struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	LogoURL     string           `json:"logoUrl"`
	Tier        string           `json:"tier"`
	Featured    bool             `json:"featured"`
	Status      InvestmentStatus `json:"status"`
	Categories  []string         `json:"categories"`
	Website     null.String      `json:"website,omitempty"`
	Twitter     null.String      `json:"twitter,omitempty"`
	LinkedIn    null.String      `json:"linkedin,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// Affiliation represents an organization or program the firm is or was
// affiliated with. Date bounds are free text ("2019", "Spring 2021").
type Affiliation struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Role        string    `json:"role"`
	BeginDate   string    `json:"beginDate"`
	EndDate     string    `json:"endDate"`
	Description string    `json:"description"`
	LogoURL     string    `json:"logoUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
