// Package refdata holds the static datasets behind the migration and
// backfill scripts: the controlled tag vocabulary, company metadata, the
// seed records, and the description backfill map. Everything here is
// compiled in; the scripts exist to move it into the datastore.
package refdata

// JobTags is the controlled vocabulary offered by the admin UI when
// tagging jobs. Stored tags are not validated against it; it only
// drives the tag picker and the public filter list.
var JobTags = []string{
	"engineering",
	"frontend",
	"backend",
	"fullstack",
	"mobile",
	"devops",
	"data",
	"machine-learning",
	"security",
	"design",
	"product",
	"marketing",
	"sales",
	"operations",
	"finance",
	"legal",
	"community",
}
