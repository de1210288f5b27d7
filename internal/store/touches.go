package store

import (
	"encoding/json"
	"fmt"
	"time"
)

// Touch is one entry in the append-only audit trail. Touches are never
// updated or deleted.
type Touch struct {
	ID        int64
	AssetID   int64
	TouchType string
	TouchedBy string
	Details   string
	TouchedAt time.Time
}

// RecordTouch appends an audit record for an asset interaction
func (s *Store) RecordTouch(assetID int64, touchType, by string, details map[string]any) error {
	var detailsJSON string
	if details != nil {
		b, err := json.Marshal(details)
		if err == nil {
			detailsJSON = string(b)
		}
	}

	_, err := s.conn.Exec(`
		INSERT INTO asset_touches (asset_id, touch_type, touched_by, details)
		VALUES (?, ?, ?, ?)
	`, assetID, touchType, by, detailsJSON)
	if err != nil {
		return fmt.Errorf("failed to record touch: %w", err)
	}

	return nil
}

// GetTouches returns the most recent audit entries for an asset
func (s *Store) GetTouches(assetID int64, limit int) ([]*Touch, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.conn.Query(`
		SELECT id, asset_id, touch_type, touched_by, details, touched_at
		FROM asset_touches
		WHERE asset_id = ?
		ORDER BY touched_at DESC, id DESC
		LIMIT ?
	`, assetID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query touches: %w", err)
	}
	defer rows.Close()

	var touches []*Touch
	for rows.Next() {
		var t Touch
		err := rows.Scan(&t.ID, &t.AssetID, &t.TouchType, &t.TouchedBy, &t.Details, &t.TouchedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan touch: %w", err)
		}
		touches = append(touches, &t)
	}

	return touches, rows.Err()
}

// TouchCountByAsset returns how many audit entries exist for an asset
func (s *Store) TouchCountByAsset(assetID int64) (int, error) {
	var count int
	err := s.conn.QueryRow("SELECT COUNT(*) FROM asset_touches WHERE asset_id = ?", assetID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count touches: %w", err)
	}
	return count, nil
}
