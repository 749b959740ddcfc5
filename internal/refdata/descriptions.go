package refdata

// JobDescriptions maps job ids to the long-form descriptions that were
// written after the rows were first migrated. cmd/backfill-descriptions
// converges the description column onto this map.
var JobDescriptions = map[string]string{
	"world-brand-designer": "Own World's visual identity across product, web and events. " +
		"You will work with the founders on campaign concepts and build out the brand " +
		"guidelines the design team works from.",
	"driftline-senior-backend-engineer": "Design and operate the routing services " +
		"behind Driftline's freight planner. Go, Postgres, and a healthy on-call " +
		"rotation shared across the backend group.",
	"quartzite-firmware-engineer": "Write and debug firmware for Quartzite's " +
		"hardware-in-the-loop test rigs. C and Rust, with occasional trips to the " +
		"Austin lab bench.",
}
