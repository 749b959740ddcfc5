package refdata

import (
	"github.com/volatiletech/null/v8"

	"talenthub.backend/internal/domain/entities"
)

// TestIDPrefix marks rows owned by the end-to-end test fixtures.
// cmd/seed-test deletes only ids carrying this prefix.
const TestIDPrefix = "test-"

// TestJobs returns the job fixtures inserted by cmd/seed-test.
func TestJobs() []entities.Job {
	return []entities.Job{
		{
			ID:             "test-job-1",
			Title:          "Senior Software Engineer",
			Company:        "Test Company Alpha",
			Link:           "https://alpha.example.com/jobs/1",
			Location:       "Remote",
			RemoteMode:     entities.RemoteModeRemote,
			EmploymentType: "full-time",
			Salary:         null.StringFrom("$150k-$180k"),
			Tags:           []string{"engineering", "backend"},
			Category:       entities.JobCategoryPortfolio,
			Featured:       true,
			Description:    "Fixture row used by the end-to-end suite.",
		},
		{
			ID:             "test-job-2",
			Title:          "Product Designer",
			Company:        "Test Company Beta",
			Link:           "https://beta.example.com/jobs/2",
			Location:       "New York, NY",
			RemoteMode:     entities.RemoteModeHybrid,
			EmploymentType: "contract",
			Tags:           []string{"design"},
			Category:       entities.JobCategoryNetwork,
		},
	}
}

// TestCandidates returns the candidate fixtures, covering both public
// and anonymous profiles.
func TestCandidates() []entities.Candidate {
	return []entities.Candidate{
		{
			ID:           "test-candidate-1",
			Name:         "Test Person One",
			IsPublic:     true,
			Title:        "Backend Engineer",
			Location:     "Remote",
			Summary:      "Fixture profile with a visible name.",
			Skills:       []string{"backend"},
			Experience:   "5-7",
			Availability: entities.AvailabilityLooking,
		},
		{
			ID:             "test-candidate-2",
			Name:           "Test Person Two",
			AnonymousAlias: "Anonymous fixture profile",
			IsPublic:       false,
			Title:          "Data Engineer",
			Location:       "Berlin, Germany",
			Summary:        "Fixture profile hidden behind an alias.",
			Skills:         []string{"data"},
			Experience:     "3-4",
			Availability:   entities.AvailabilityOpen,
		},
	}
}
