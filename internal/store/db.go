package store

import (
	"database/sql"
	"errors"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// InitDB opens the sqlite database and creates the schema.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	agentTable := `
	CREATE TABLE IF NOT EXISTS agents (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		active INTEGER NOT NULL DEFAULT 1,
		assigned_lists_count INTEGER NOT NULL DEFAULT 0,
		total_items_assigned INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);
	`
	listTable := `
	CREATE TABLE IF NOT EXISTS lists (
		id TEXT PRIMARY KEY,
		batch_id TEXT NOT NULL,
		agent_id TEXT NOT NULL,
		file_name TEXT,
		uploaded_by TEXT,
		items TEXT NOT NULL,
		total_items INTEGER NOT NULL,
		completed_items INTEGER NOT NULL,
		pending_items INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`
	listBatchIndex := `CREATE INDEX IF NOT EXISTS idx_lists_batch ON lists(batch_id);`
	listAgentIndex := `CREATE INDEX IF NOT EXISTS idx_lists_agent ON lists(agent_id);`

	for _, stmt := range []string{agentTable, listTable, listBatchIndex, listAgentIndex} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// CloseDB closes the database handle.
func CloseDB() error {
	if db == nil {
		return nil
	}
	return db.Close()
}
