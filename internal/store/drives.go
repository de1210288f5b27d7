package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Drive represents a storage drive attached to an asset. Identity is
// (asset_id, serial); the same drive reappearing in a later scan updates
// the existing row instead of creating a new one.
type Drive struct {
	ID            int64
	AssetID       int64
	AssetTag      string // populated on cross-asset queries
	Serial        string
	Logicalname   string
	CapacityBytes *int64
	Model         string
	Source        string
	Status        string
	StatusNote    string
	StatusBy      string
	StatusAt      time.Time
}

// CapacityHuman returns the capacity formatted like "256.0 GB", or ""
// when unknown.
func (d *Drive) CapacityHuman() string {
	if d.CapacityBytes == nil || *d.CapacityBytes == 0 {
		return ""
	}
	num := float64(*d.CapacityBytes)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if num < 1024.0 {
			return fmt.Sprintf("%.1f %s", num, unit)
		}
		num /= 1024.0
	}
	return fmt.Sprintf("%.1f PB", num)
}

// SerialTag returns the display form of the serial: "(SN ...)" for real
// serials, "(no serial)" for synthetic ones.
func (d *Drive) SerialTag() string {
	if d.Serial == "" {
		return ""
	}
	if strings.HasPrefix(d.Serial, "NOSERIAL-") {
		return "(no serial)"
	}
	return "(SN " + d.Serial + ")"
}

// UpsertDrive inserts or updates a drive record keyed by (asset, serial).
// Scan-owned fields are overwritten; the status lifecycle fields belong
// to the status-update flow and are left alone.
func (s *Store) UpsertDrive(drive *Drive) error {
	result, err := s.conn.Exec(`
		INSERT INTO drives (asset_id, serial, logicalname, capacity_bytes, model, source)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(asset_id, serial) DO UPDATE SET
			logicalname = excluded.logicalname,
			capacity_bytes = excluded.capacity_bytes,
			model = excluded.model,
			source = excluded.source
	`, drive.AssetID, drive.Serial, drive.Logicalname,
		nullInt64(drive.CapacityBytes), drive.Model, drive.Source)
	if err != nil {
		return fmt.Errorf("failed to upsert drive: %w", err)
	}

	// Get the ID (either from insert or existing record)
	if drive.ID == 0 {
		id, err := result.LastInsertId()
		if err == nil && id > 0 {
			drive.ID = id
		}
		existing, _ := s.GetDrive(drive.AssetID, drive.Serial)
		if existing != nil {
			drive.ID = existing.ID
		}
	}

	return nil
}

// GetDrive returns the drive with the given serial on an asset
func (s *Store) GetDrive(assetID int64, serial string) (*Drive, error) {
	row := s.conn.QueryRow(`
		SELECT id, asset_id, serial, logicalname, capacity_bytes, model,
			source, status, status_note, status_by, status_at
		FROM drives WHERE asset_id = ? AND serial = ?
	`, assetID, serial)

	return scanDriveRow(row)
}

// GetDriveByID returns a drive by its row id, scoped to an asset
func (s *Store) GetDriveByID(assetID, driveID int64) (*Drive, error) {
	row := s.conn.QueryRow(`
		SELECT id, asset_id, serial, logicalname, capacity_bytes, model,
			source, status, status_note, status_by, status_at
		FROM drives WHERE asset_id = ? AND id = ?
	`, assetID, driveID)

	return scanDriveRow(row)
}

// GetDrivesByAsset returns all drives attached to an asset
func (s *Store) GetDrivesByAsset(assetID int64) ([]*Drive, error) {
	rows, err := s.conn.Query(`
		SELECT id, asset_id, serial, logicalname, capacity_bytes, model,
			source, status, status_note, status_by, status_at
		FROM drives WHERE asset_id = ? ORDER BY id
	`, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query drives: %w", err)
	}
	defer rows.Close()

	var drives []*Drive
	for rows.Next() {
		drive, err := scanDriveRows(rows)
		if err != nil {
			return nil, err
		}
		drives = append(drives, drive)
	}

	return drives, rows.Err()
}

// FindDrivesBySerial returns every drive with the given serial across
// all assets, newest first. Used to trace where a pulled drive came from.
func (s *Store) FindDrivesBySerial(serial string) ([]*Drive, error) {
	rows, err := s.conn.Query(`
		SELECT d.id, d.asset_id, d.serial, d.logicalname, d.capacity_bytes, d.model,
			d.source, d.status, d.status_note, d.status_by, d.status_at, a.asset_tag
		FROM drives d JOIN assets a ON a.id = d.asset_id
		WHERE d.serial = ? ORDER BY d.id DESC
	`, serial)
	if err != nil {
		return nil, fmt.Errorf("failed to query drives by serial: %w", err)
	}
	defer rows.Close()

	var drives []*Drive
	for rows.Next() {
		var drive Drive
		var capacity sql.NullInt64
		err := rows.Scan(&drive.ID, &drive.AssetID, &drive.Serial, &drive.Logicalname,
			&capacity, &drive.Model, &drive.Source, &drive.Status,
			&drive.StatusNote, &drive.StatusBy, &drive.StatusAt, &drive.AssetTag)
		if err != nil {
			return nil, fmt.Errorf("failed to scan drive row: %w", err)
		}
		if capacity.Valid {
			drive.CapacityBytes = &capacity.Int64
		}
		drives = append(drives, &drive)
	}

	return drives, rows.Err()
}

// UpdateDriveStatus moves a drive through its disposition lifecycle
// (present, removed, wiped, shredded, returned_to_client)
func (s *Store) UpdateDriveStatus(assetID, driveID int64, status, note, by string) (*Drive, error) {
	drive, err := s.GetDriveByID(assetID, driveID)
	if err != nil {
		return nil, err
	}
	if drive == nil {
		return nil, fmt.Errorf("unknown drive %d on asset %d", driveID, assetID)
	}

	_, err = s.conn.Exec(`
		UPDATE drives SET status = ?, status_note = ?, status_by = ?, status_at = ?
		WHERE id = ?
	`, status, note, by, time.Now().UTC(), driveID)
	if err != nil {
		return nil, fmt.Errorf("failed to update drive status: %w", err)
	}

	return s.GetDriveByID(assetID, driveID)
}

// DriveCountByAsset returns how many drives are recorded for an asset
func (s *Store) DriveCountByAsset(assetID int64) (int, error) {
	var count int
	err := s.conn.QueryRow("SELECT COUNT(*) FROM drives WHERE asset_id = ?", assetID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count drives: %w", err)
	}
	return count, nil
}

// scanDriveRow scans a single row into a Drive
func scanDriveRow(row *sql.Row) (*Drive, error) {
	var drive Drive
	var capacity sql.NullInt64

	err := row.Scan(&drive.ID, &drive.AssetID, &drive.Serial, &drive.Logicalname,
		&capacity, &drive.Model, &drive.Source, &drive.Status,
		&drive.StatusNote, &drive.StatusBy, &drive.StatusAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan drive: %w", err)
	}
	if capacity.Valid {
		drive.CapacityBytes = &capacity.Int64
	}
	return &drive, nil
}

// scanDriveRows scans a row from Rows into a Drive
func scanDriveRows(rows *sql.Rows) (*Drive, error) {
	var drive Drive
	var capacity sql.NullInt64

	err := rows.Scan(&drive.ID, &drive.AssetID, &drive.Serial, &drive.Logicalname,
		&capacity, &drive.Model, &drive.Source, &drive.Status,
		&drive.StatusNote, &drive.StatusBy, &drive.StatusAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan drive row: %w", err)
	}
	if capacity.Valid {
		drive.CapacityBytes = &capacity.Int64
	}
	return &drive, nil
}
