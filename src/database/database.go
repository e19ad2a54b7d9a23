package database

import (
	"database/sql"
	stdlog "log"

	"github.com/username/tallybridge/src/logger"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

func InitDB(databasePath string) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		stdlog.Fatalf("failed to open database at %s: %v", databasePath, err)
	}

	DB = db

	if logger.L != nil {
		logger.L.Info("Checking database migrations", "databasePath", databasePath)
	} else {
		stdlog.Println("Checking database migrations for:", databasePath)
	}
	migrateConversionBatchesTable()
}

func migrateConversionBatchesTable() {
	const stmt = `CREATE TABLE IF NOT EXISTS conversion_batches (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		seller_state TEXT NOT NULL,
		source_files TEXT NOT NULL,
		row_count INTEGER NOT NULL,
		skipped_count INTEGER NOT NULL DEFAULT 0
	)`
	if _, err := DB.Exec(stmt); err != nil {
		stdlog.Fatalf("failed to migrate conversion_batches table: %v", err)
	}
}
