package refdata

import (
	"github.com/volatiletech/null/v8"

	"talenthub.backend/internal/domain/entities"
)

func nullFrom(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}

// jobCompany fills a job's company columns from the Companies table.
func jobCompany(job entities.Job, name string) entities.Job {
	job.Company = name
	if c, ok := Companies[name]; ok {
		job.CompanyLogo = nullFrom(c.Logo)
		job.CompanyWebsite = nullFrom(c.Website)
		job.CompanyTwitter = nullFrom(c.Twitter)
		job.CompanyLinkedIn = nullFrom(c.LinkedIn)
	}
	return job
}

// SeedJobs returns the job-board dataset.
func SeedJobs() []entities.Job {
	return []entities.Job{
		jobCompany(entities.Job{
			ID:             "world-brand-designer",
			Title:          "World Brand Designer",
			Link:           "https://world.example.com/careers/brand-designer",
			Location:       "Berlin, Germany",
			RemoteMode:     entities.RemoteModeHybrid,
			EmploymentType: "full-time",
			Department:     null.StringFrom("Design"),
			Tags:           []string{"design", "marketing"},
			Category:       entities.JobCategoryPortfolio,
			Featured:       true,
		}, "World"),
		jobCompany(entities.Job{
			ID:             "driftline-senior-backend-engineer",
			Title:          "Senior Backend Engineer",
			Link:           "https://driftline.example.com/jobs/senior-backend",
			Location:       "Rotterdam, Netherlands",
			RemoteMode:     entities.RemoteModeRemote,
			EmploymentType: "full-time",
			Salary:         null.StringFrom("€85k-€110k"),
			Department:     null.StringFrom("Engineering"),
			Tags:           []string{"engineering", "backend"},
			Category:       entities.JobCategoryPortfolio,
		}, "Driftline"),
		jobCompany(entities.Job{
			ID:             "quartzite-firmware-engineer",
			Title:          "Firmware Engineer",
			Link:           "https://quartzite.example.com/join/firmware",
			Location:       "Austin, TX",
			RemoteMode:     entities.RemoteModeOnsite,
			EmploymentType: "full-time",
			Tags:           []string{"engineering"},
			Category:       entities.JobCategoryPortfolio,
		}, "Quartzite Labs"),
		{
			ID:             "network-staff-data-engineer",
			Title:          "Staff Data Engineer",
			Company:        "Meridian Health",
			Link:           "https://meridian.example.com/careers/4812",
			Location:       "Remote, US",
			RemoteMode:     entities.RemoteModeRemote,
			EmploymentType: "full-time",
			Tags:           []string{"data", "engineering"},
			Category:       entities.JobCategoryNetwork,
		},
	}
}

// SeedCandidates returns the talent-pool dataset. Non-public profiles
// carry an alias; DisplayName on the entity picks which name renders.
func SeedCandidates() []entities.Candidate {
	return []entities.Candidate{
		{
			ID:           "mika-tanaka",
			Name:         "Mika Tanaka",
			IsPublic:     true,
			Title:        "Staff Frontend Engineer",
			Location:     "Tokyo, Japan",
			Summary:      "Led design-system work at two marketplace startups.",
			Skills:       []string{"frontend", "design"},
			Experience:   "8-10",
			Availability: entities.AvailabilityOpen,
			GitHub:       null.StringFrom("https://github.com/mikatanaka"),
			Featured:     true,
		},
		{
			ID:             "candidate-sre-0042",
			Name:           "Jordan Avery",
			AnonymousAlias: "Reliability engineer, ex-FAANG",
			IsPublic:       false,
			Title:          "Site Reliability Engineer",
			Location:       "Remote, EU",
			Summary:        "On-call lead for a 40-service platform; Terraform and Go.",
			Skills:         []string{"devops", "backend"},
			Experience:     "5-7",
			Availability:   entities.AvailabilityLooking,
		},
		{
			ID:           "sam-okafor",
			Name:         "Sam Okafor",
			IsPublic:     true,
			Title:        "Product Manager",
			Location:     "London, UK",
			Summary:      "Shipped payments products in regulated markets.",
			Skills:       []string{"product"},
			Experience:   "3-4",
			Availability: entities.AvailabilityNotLooking,
			LinkedIn:     null.StringFrom("https://linkedin.com/in/samokafor"),
		},
	}
}
