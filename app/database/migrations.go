package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the document table. Safe to run on every start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			path TEXT PRIMARY KEY,
			doc  JSONB NOT NULL
		)
	`)
	if err != nil {
		return err
	}
	log.Println("Migrations completed")
	return nil
}
