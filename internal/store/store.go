package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultPath is the default database location
const DefaultPath = "/var/lib/motherboard/assets.db"

// Store wraps the SQLite database connection
type Store struct {
	conn *sql.DB
	path string
}

// Open opens or creates the SQLite database at the given path
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys and WAL mode for better concurrency
	if _, err := conn.Exec("PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	s := &Store{conn: conn, path: path}

	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.conn.Close()
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.path
}

// migrate runs the database schema migrations
func (s *Store) migrate() error {
	// Create schema version table
	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Get current version
	var version int
	err = s.conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		return err
	}

	// Run migrations
	migrations := []string{
		migrationV1,
	}

	for i, migration := range migrations {
		v := i + 1
		if v <= version {
			continue
		}

		tx, err := s.conn.Begin()
		if err != nil {
			return err
		}

		if _, err := tx.Exec(migration); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration v%d failed: %w", v, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", v); err != nil {
			tx.Rollback()
			return err
		}

		if err := tx.Commit(); err != nil {
			return err
		}
	}

	return nil
}

// migrationV1 creates the initial schema
const migrationV1 = `
-- Assets: one row per physical device, auto-created on first touch
CREATE TABLE IF NOT EXISTS assets (
    id INTEGER PRIMARY KEY,
    asset_tag TEXT UNIQUE NOT NULL,
    status TEXT NOT NULL DEFAULT '',
    device_type TEXT NOT NULL DEFAULT '',
    cosmetic_grade TEXT NOT NULL DEFAULT '',
    cosmetic_notes TEXT NOT NULL DEFAULT '',
    location TEXT NOT NULL DEFAULT '',
    created_by TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_assets_tag ON assets(asset_tag);
CREATE INDEX IF NOT EXISTS idx_assets_status ON assets(status);

-- Hardware scans: raw uploaded bundle plus extracted summary.
-- The (asset_id, bundle_hash) constraint is what makes re-uploads of
-- identical bundles a no-op.
CREATE TABLE IF NOT EXISTS hardware_scans (
    id INTEGER PRIMARY KEY,
    asset_id INTEGER NOT NULL REFERENCES assets(id) ON DELETE CASCADE,
    device_serial TEXT,
    raw_json TEXT NOT NULL,
    bundle_hash TEXT,
    schema TEXT NOT NULL DEFAULT '',
    generated_at TEXT,
    tech_name TEXT NOT NULL DEFAULT '',
    client_name TEXT NOT NULL DEFAULT '',
    cosmetic_condition TEXT NOT NULL DEFAULT '',
    intake_note TEXT NOT NULL DEFAULT '',
    summary_json TEXT,
    user_notes TEXT NOT NULL DEFAULT '',
    scanned_by TEXT NOT NULL DEFAULT '',
    scanned_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(asset_id, bundle_hash)
);

CREATE INDEX IF NOT EXISTS idx_scans_asset ON hardware_scans(asset_id);
CREATE INDEX IF NOT EXISTS idx_scans_hash ON hardware_scans(bundle_hash);
CREATE INDEX IF NOT EXISTS idx_scans_generated ON hardware_scans(asset_id, generated_at);

-- Drives: unique per (asset, serial) so repeated scans of a stable
-- machine never duplicate rows
CREATE TABLE IF NOT EXISTS drives (
    id INTEGER PRIMARY KEY,
    asset_id INTEGER NOT NULL REFERENCES assets(id) ON DELETE CASCADE,
    serial TEXT NOT NULL,
    logicalname TEXT NOT NULL DEFAULT '',
    capacity_bytes INTEGER,
    model TEXT NOT NULL DEFAULT '',
    source TEXT NOT NULL DEFAULT 'scan',
    status TEXT NOT NULL DEFAULT 'present',
    status_note TEXT NOT NULL DEFAULT '',
    status_by TEXT NOT NULL DEFAULT '',
    status_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(asset_id, serial)
);

CREATE INDEX IF NOT EXISTS idx_drives_asset ON drives(asset_id);
CREATE INDEX IF NOT EXISTS idx_drives_serial ON drives(serial);
CREATE INDEX IF NOT EXISTS idx_drives_status ON drives(status);

-- Audit trail: append-only record of every state-changing action
CREATE TABLE IF NOT EXISTS asset_touches (
    id INTEGER PRIMARY KEY,
    asset_id INTEGER NOT NULL REFERENCES assets(id) ON DELETE CASCADE,
    touch_type TEXT NOT NULL,
    touched_by TEXT NOT NULL DEFAULT '',
    details TEXT,
    touched_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_touches_asset ON asset_touches(asset_id);
CREATE INDEX IF NOT EXISTS idx_touches_time ON asset_touches(touched_at);
CREATE INDEX IF NOT EXISTS idx_touches_type ON asset_touches(touch_type);
`

// Asset statuses
const (
	AssetStatusIntake   = "intake"
	AssetStatusTesting  = "testing"
	AssetStatusReady    = "ready"
	AssetStatusSold     = "sold"
	AssetStatusRecycled = "recycled"
	AssetStatusReturned = "returned"
)

// Drive disposition statuses
const (
	DriveStatusPresent  = "present"
	DriveStatusRemoved  = "removed"
	DriveStatusWiped    = "wiped"
	DriveStatusShredded = "shredded"
	DriveStatusReturned = "returned_to_client"
)

// Drive record sources
const (
	SourceScan        = "scan"
	SourceManual      = "manual"
	SourceSpreadsheet = "spreadsheet"
)

// Touch types
const (
	TouchScanUpload   = "scan_upload"
	TouchIntakeUpdate = "intake_update"
	TouchDriveStatus  = "drive_status"
	TouchNote         = "note"
)

// Helper functions for nullable values
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}
