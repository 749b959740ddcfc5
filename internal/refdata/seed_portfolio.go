package refdata

import (
	"github.com/volatiletech/null/v8"

	"talenthub.backend/internal/domain/entities"
)

// SeedInvestments returns the portfolio dataset migrated off the old
// static site. IDs are slugs of the titles and double as primary keys,
// so re-running the migration hits duplicate-key skips instead of
// inserting twice.
func SeedInvestments() []entities.Investment {
	return []entities.Investment{
		{
			ID:          "world",
			Title:       "World",
			Description: "Identity and payments infrastructure for consumer apps.",
			LogoURL:     "/assets/logos/world.png",
			Tier:        "1",
			Featured:    true,
			Status:      entities.InvestmentStatusActive,
			Categories:  []string{"fintech", "infrastructure"},
			Website:     null.StringFrom("https://world.example.com"),
			Twitter:     null.StringFrom("https://x.com/worldhq"),
		},
		{
			ID:          "driftline",
			Title:       "Driftline",
			Description: "Logistics routing for coastal freight operators.",
			LogoURL:     "/assets/logos/driftline.png",
			Tier:        "2",
			Featured:    true,
			Status:      entities.InvestmentStatusActive,
			Categories:  []string{"logistics"},
			Website:     null.StringFrom("https://driftline.example.com"),
		},
		{
			ID:          "quartzite-labs",
			Title:       "Quartzite Labs",
			Description: "Developer tooling for embedded firmware teams.",
			LogoURL:     "/assets/logos/quartzite.png",
			Tier:        "3",
			Status:      entities.InvestmentStatusActive,
			Categories:  []string{"devtools"},
			Website:     null.StringFrom("https://quartzite.example.com"),
		},
		{
			ID:          "harbor-analytics",
			Title:       "Harbor Analytics",
			Description: "Acquired by a public BI vendor in 2024.",
			LogoURL:     "/assets/logos/harbor.png",
			Tier:        "2",
			Status:      entities.InvestmentStatusAcquired,
			Categories:  []string{"data", "analytics"},
		},
		{
			ID:          "lumen-grid",
			Title:       "Lumen Grid",
			Description: "Wound down in 2023.",
			LogoURL:     "/assets/logos/lumen-grid.png",
			Tier:        "4",
			Status:      entities.InvestmentStatusInactive,
			Categories:  []string{"energy"},
		},
	}
}

// SeedAffiliations returns the affiliations dataset. Date bounds stay
// free text, matching how the source site displayed them.
func SeedAffiliations() []entities.Affiliation {
	return []entities.Affiliation{
		{
			ID:          "founders-guild",
			Title:       "Founders Guild",
			Role:        "Program partner",
			BeginDate:   "2019",
			EndDate:     "",
			Description: "Mentorship program for first-time technical founders.",
			LogoURL:     "/assets/logos/founders-guild.png",
		},
		{
			ID:          "open-compute-initiative",
			Title:       "Open Compute Initiative",
			Role:        "Member",
			BeginDate:   "Spring 2021",
			EndDate:     "2024",
			Description: "Industry group for open datacenter hardware.",
			LogoURL:     "/assets/logos/oci.png",
		},
		{
			ID:          "talent-bridge",
			Title:       "Talent Bridge",
			Role:        "Hiring partner",
			BeginDate:   "2022",
			EndDate:     "",
			Description: "Placement network connecting portfolio companies with vetted engineers.",
			LogoURL:     "/assets/logos/talent-bridge.png",
		},
	}
}
