package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Asset represents a physical device being tracked
type Asset struct {
	ID            int64
	AssetTag      string
	Status        string
	DeviceType    string
	CosmeticGrade string
	CosmeticNotes string
	Location      string
	CreatedBy     string
	CreatedAt     time.Time
}

// IntakeUpdate carries the fields a technician may change on intake.
// Nil pointers leave the stored value untouched.
type IntakeUpdate struct {
	Status        *string
	DeviceType    *string
	CosmeticGrade *string
	CosmeticNotes *string
	Location      *string
}

// GetOrCreateAsset returns the asset with the given tag, creating it on
// first reference. The created flag reports whether a new row was made.
func (s *Store) GetOrCreateAsset(tag, createdBy string) (*Asset, bool, error) {
	asset, err := s.GetAssetByTag(tag)
	if err != nil {
		return nil, false, err
	}
	if asset != nil {
		return asset, false, nil
	}

	_, err = s.conn.Exec(`
		INSERT INTO assets (asset_tag, created_by) VALUES (?, ?)
		ON CONFLICT(asset_tag) DO NOTHING
	`, tag, createdBy)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create asset: %w", err)
	}

	asset, err = s.GetAssetByTag(tag)
	if err != nil {
		return nil, false, err
	}
	if asset == nil {
		return nil, false, fmt.Errorf("asset %q vanished after create", tag)
	}
	return asset, true, nil
}

// GetAssetByTag returns an asset by its tag, or nil if unknown
func (s *Store) GetAssetByTag(tag string) (*Asset, error) {
	row := s.conn.QueryRow(`
		SELECT id, asset_tag, status, device_type, cosmetic_grade,
			cosmetic_notes, location, created_by, created_at
		FROM assets WHERE asset_tag = ?
	`, tag)

	var a Asset
	err := row.Scan(&a.ID, &a.AssetTag, &a.Status, &a.DeviceType, &a.CosmeticGrade,
		&a.CosmeticNotes, &a.Location, &a.CreatedBy, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan asset: %w", err)
	}
	return &a, nil
}

// UpdateIntake applies intake form changes to an asset and returns the
// updated record
func (s *Store) UpdateIntake(tag string, upd IntakeUpdate) (*Asset, error) {
	asset, err := s.GetAssetByTag(tag)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("unknown asset %q", tag)
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&asset.Status, upd.Status)
	apply(&asset.DeviceType, upd.DeviceType)
	apply(&asset.CosmeticGrade, upd.CosmeticGrade)
	apply(&asset.CosmeticNotes, upd.CosmeticNotes)
	apply(&asset.Location, upd.Location)

	_, err = s.conn.Exec(`
		UPDATE assets SET status = ?, device_type = ?, cosmetic_grade = ?,
			cosmetic_notes = ?, location = ?
		WHERE asset_tag = ?
	`, asset.Status, asset.DeviceType, asset.CosmeticGrade,
		asset.CosmeticNotes, asset.Location, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to update intake: %w", err)
	}
	return asset, nil
}

// ListAssets returns the most recently created assets
func (s *Store) ListAssets(limit int) ([]*Asset, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.conn.Query(`
		SELECT id, asset_tag, status, device_type, cosmetic_grade,
			cosmetic_notes, location, created_by, created_at
		FROM assets ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	var assets []*Asset
	for rows.Next() {
		var a Asset
		err := rows.Scan(&a.ID, &a.AssetTag, &a.Status, &a.DeviceType, &a.CosmeticGrade,
			&a.CosmeticNotes, &a.Location, &a.CreatedBy, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, &a)
	}

	return assets, rows.Err()
}
