package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createJobTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE jobs (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		company TEXT NOT NULL,
		company_logo TEXT,
		company_website TEXT,
		company_twitter TEXT,
		company_linkedin TEXT,
		link TEXT NOT NULL,
		location TEXT,
		remote_mode TEXT NOT NULL DEFAULT 'onsite',
		employment_type TEXT,
		salary TEXT,
		department TEXT,
		tags TEXT NOT NULL DEFAULT '[]',
		category TEXT NOT NULL,
		featured BOOLEAN DEFAULT 0,
		description TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createCandidateTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE candidates (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		anonymous_alias TEXT,
		is_public BOOLEAN DEFAULT 0,
		title TEXT NOT NULL,
		location TEXT,
		summary TEXT,
		skills TEXT NOT NULL DEFAULT '[]',
		experience TEXT,
		availability TEXT NOT NULL,
		linkedin TEXT,
		github TEXT,
		twitter TEXT,
		featured BOOLEAN DEFAULT 0,
		cv_url TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createCuratedLinkTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE curated_links (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		source TEXT NOT NULL,
		published_at DATETIME,
		category TEXT,
		featured BOOLEAN DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createAnnouncementTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE announcements (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		company TEXT NOT NULL,
		company_logo TEXT,
		platform TEXT NOT NULL,
		published_at DATETIME,
		category TEXT,
		featured BOOLEAN DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createInvestmentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE investments (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		logo_url TEXT,
		tier TEXT NOT NULL DEFAULT '4',
		featured BOOLEAN DEFAULT 0,
		status TEXT NOT NULL,
		categories TEXT NOT NULL DEFAULT '[]',
		website TEXT,
		twitter TEXT,
		linkedin TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createAffiliationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE affiliations (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		role TEXT,
		begin_date TEXT,
		end_date TEXT,
		description TEXT,
		logo_url TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createAPIKeyTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE api_keys (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		key_prefix TEXT NOT NULL,
		key_hash TEXT NOT NULL UNIQUE,
		key_masked TEXT NOT NULL,
		permissions TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		last_used_at DATETIME,
		expires_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createBlogPostTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE blog_posts (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		summary TEXT,
		body TEXT,
		cover_image TEXT,
		published_at DATETIME,
		featured BOOLEAN DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
