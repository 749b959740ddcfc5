package refdata

// Company is the metadata attached to jobs when seeding and backfilled
// onto older rows that predate the logo columns.
type Company struct {
	Name     string
	Logo     string
	Website  string
	Twitter  string
	LinkedIn string
}

// Companies maps a company's display name to its metadata. Keys match
// the `company` column on jobs and the `title` column on investments.
var Companies = map[string]Company{
	"World": {
		Name:     "World",
		Logo:     "/assets/logos/world.png",
		Website:  "https://world.example.com",
		Twitter:  "https://x.com/worldhq",
		LinkedIn: "https://linkedin.com/company/worldhq",
	},
	"Driftline": {
		Name:     "Driftline",
		Logo:     "/assets/logos/driftline.png",
		Website:  "https://driftline.example.com",
		Twitter:  "https://x.com/driftline",
		LinkedIn: "https://linkedin.com/company/driftline",
	},
	"Quartzite Labs": {
		Name:     "Quartzite Labs",
		Logo:     "/assets/logos/quartzite.png",
		Website:  "https://quartzite.example.com",
		LinkedIn: "https://linkedin.com/company/quartzite-labs",
	},
	"Harbor Analytics": {
		Name:    "Harbor Analytics",
		Logo:    "/assets/logos/harbor.png",
		Website: "https://harbor.example.com",
		Twitter: "https://x.com/harboranalytics",
	},
}
