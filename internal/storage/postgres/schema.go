package postgres

import "database/sql"

// schema holds the cloud-target DDL. forked_from carries no foreign key so
// forks survive parent deletion; star rows cascade with their repo.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
        user_id    TEXT PRIMARY KEY,
        name       TEXT NOT NULL,
        email      TEXT NOT NULL UNIQUE,
        image      TEXT,
        bio        TEXT NOT NULL DEFAULT '',
        location   TEXT NOT NULL DEFAULT '',
        website    TEXT NOT NULL DEFAULT '',
        created_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,
	`CREATE TABLE IF NOT EXISTS repos (
        repo_id     UUID PRIMARY KEY,
        name        TEXT NOT NULL,
        description TEXT NOT NULL,
        owner_id    TEXT NOT NULL REFERENCES users(user_id),
        visibility  TEXT NOT NULL DEFAULT 'public',
        category    TEXT NOT NULL DEFAULT 'general',
        tags        JSONB NOT NULL DEFAULT '[]',
        content     JSONB NOT NULL DEFAULT '{}',
        forked_from UUID,
        star_count  INTEGER NOT NULL DEFAULT 0,
        fork_count  INTEGER NOT NULL DEFAULT 0,
        view_count  INTEGER NOT NULL DEFAULT 0,
        created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
        updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,
	`CREATE TABLE IF NOT EXISTS repo_stars (
        repo_id UUID NOT NULL REFERENCES repos(repo_id) ON DELETE CASCADE,
        user_id TEXT NOT NULL,
        PRIMARY KEY (repo_id, user_id)
    )`,
	`CREATE INDEX IF NOT EXISTS idx_repos_owner ON repos(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_repos_visibility ON repos(visibility)`,
	`CREATE INDEX IF NOT EXISTS idx_repos_forked_from ON repos(forked_from)`,
}

// EnsureSchema applies the DDL; statements are idempotent.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
