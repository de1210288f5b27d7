package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Scan represents one ingested hardware scan bundle
type Scan struct {
	ID                int64
	AssetID           int64
	DeviceSerial      string
	RawJSON           string
	BundleHash        string
	Schema            string
	GeneratedAt       string
	TechName          string
	ClientName        string
	CosmeticCondition string
	IntakeNote        string
	SummaryJSON       string
	UserNotes         string
	ScannedBy         string
	ScannedAt         time.Time
}

const scanColumns = `id, asset_id, device_serial, raw_json, bundle_hash, schema,
	generated_at, tech_name, client_name, cosmetic_condition, intake_note,
	summary_json, user_notes, scanned_by, scanned_at`

// InsertScan creates a new scan record. The unique constraint on
// (asset_id, bundle_hash) rejects a concurrent duplicate ingestion.
func (s *Store) InsertScan(scan *Scan) error {
	result, err := s.conn.Exec(`
		INSERT INTO hardware_scans (
			asset_id, device_serial, raw_json, bundle_hash, schema, generated_at,
			tech_name, client_name, cosmetic_condition, intake_note,
			summary_json, user_notes, scanned_by
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, scan.AssetID, nullString(scan.DeviceSerial), scan.RawJSON, nullString(scan.BundleHash),
		scan.Schema, nullString(scan.GeneratedAt), scan.TechName, scan.ClientName,
		scan.CosmeticCondition, scan.IntakeNote, nullString(scan.SummaryJSON),
		scan.UserNotes, scan.ScannedBy)
	if err != nil {
		return fmt.Errorf("failed to insert scan: %w", err)
	}

	id, err := result.LastInsertId()
	if err == nil {
		scan.ID = id
	}
	return nil
}

// GetScanByHash returns the scan with the given bundle hash for an
// asset, or nil when the bundle has not been seen before
func (s *Store) GetScanByHash(assetID int64, bundleHash string) (*Scan, error) {
	row := s.conn.QueryRow(`
		SELECT `+scanColumns+`
		FROM hardware_scans WHERE asset_id = ? AND bundle_hash = ?
	`, assetID, bundleHash)

	return scanScanRow(row)
}

// LatestScan returns the most recent scan for an asset, or nil
func (s *Store) LatestScan(assetID int64) (*Scan, error) {
	row := s.conn.QueryRow(`
		SELECT `+scanColumns+`
		FROM hardware_scans WHERE asset_id = ?
		ORDER BY scanned_at DESC, id DESC LIMIT 1
	`, assetID)

	return scanScanRow(row)
}

// ScanCountByAsset returns how many scans are stored for an asset
func (s *Store) ScanCountByAsset(assetID int64) (int, error) {
	var count int
	err := s.conn.QueryRow("SELECT COUNT(*) FROM hardware_scans WHERE asset_id = ?", assetID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count scans: %w", err)
	}
	return count, nil
}

func scanScanRow(row *sql.Row) (*Scan, error) {
	var scan Scan
	var deviceSerial, bundleHash, generatedAt, summaryJSON sql.NullString

	err := row.Scan(&scan.ID, &scan.AssetID, &deviceSerial, &scan.RawJSON, &bundleHash,
		&scan.Schema, &generatedAt, &scan.TechName, &scan.ClientName,
		&scan.CosmeticCondition, &scan.IntakeNote, &summaryJSON,
		&scan.UserNotes, &scan.ScannedBy, &scan.ScannedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan scan row: %w", err)
	}

	scan.DeviceSerial = deviceSerial.String
	scan.BundleHash = bundleHash.String
	scan.GeneratedAt = generatedAt.String
	scan.SummaryJSON = summaryJSON.String
	return &scan, nil
}
