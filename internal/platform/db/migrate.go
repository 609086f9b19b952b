package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"sort"

	"github.com/go-sql-driver/mysql"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const migrationsTable = "schema_migrations"

// Migrate applies every embedded migration that is not yet recorded.
func Migrate(db *sql.DB) error {
	if db == nil {
		return errors.New("db is required")
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS ` + migrationsTable + ` (
	filename   VARCHAR(255) NOT NULL PRIMARY KEY,
	applied_at DATETIME(6)  NOT NULL DEFAULT CURRENT_TIMESTAMP(6)
)`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list embedded migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		var exists bool
		if err := db.QueryRow(
			`SELECT EXISTS (SELECT 1 FROM `+migrationsTable+` WHERE filename = ?)`, name,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}
		if exists {
			continue
		}

		body, err := migrationFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		// MySQL commits DDL implicitly, so the statement and its record are
		// not atomic. Already-existing objects are tolerated on re-run.
		if _, err := db.Exec(string(body)); err != nil && !isIgnorableMigrationError(err) {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		if _, err := db.Exec(
			`INSERT IGNORE INTO `+migrationsTable+` (filename) VALUES (?)`, name,
		); err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		log.Printf("[INFO] applied migration %s", name)
	}
	return nil
}

func isIgnorableMigrationError(err error) bool {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return false
	}
	switch me.Number {
	case 1050, // table exists
		1060, // duplicate column
		1061: // duplicate key name
		return true
	default:
		return false
	}
}
