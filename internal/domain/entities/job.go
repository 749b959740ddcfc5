package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// RemoteMode describes where a job can be worked from
type RemoteMode string

const (
	RemoteModeOnsite RemoteMode = "onsite"
	RemoteModeHybrid RemoteMode = "hybrid"
	RemoteModeRemote RemoteMode = "remote"
)

// JobCategory distinguishes portfolio-company jobs from network jobs
type JobCategory string

const (
	JobCategoryPortfolio JobCategory = "portfolio"
	JobCategoryNetwork   JobCategory = "network"
)

// Job represents an open position in the catalog. The ID is a slug
// derived from the title; tags come from, but are not validated against,
// the refdata vocabulary.
type Job struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Company         string      `json:"company"`
	CompanyLogo     null.String `json:"companyLogo,omitempty"`
	CompanyWebsite  null.String `json:"companyWebsite,omitempty"`
	CompanyTwitter  null.String `json:"companyTwitter,omitempty"`
	CompanyLinkedIn null.String `json:"companyLinkedin,omitempty"`
	Link            string      `json:"link"`
	Location        string      `json:"location"`
	RemoteMode      RemoteMode  `json:"remoteMode"`
	EmploymentType  string      `json:"employmentType"`
	Salary          null.String `json:"salary,omitempty"`
	Department      null.String `json:"department,omitempty"`
	Tags            []string    `json:"tags"`
	Category        JobCategory `json:"category"`
	Featured        bool        `json:"featured"`
	Description     string      `json:"description"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}
