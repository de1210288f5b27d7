// Package ingest runs the scan bundle ingestion pipeline: validate the
// envelope, deduplicate by content hash, parse the hardware report,
// persist the scan, and reconcile drive records.
package ingest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/refurbworks/motherboard/internal/bundle"
	"github.com/refurbworks/motherboard/internal/lshw"
	"github.com/refurbworks/motherboard/internal/store"
)

// IdentityMismatchError reports a bundle uploaded against the wrong
// asset. Kept distinct from validation failures so callers can warn
// about misdirected uploads specifically.
type IdentityMismatchError struct {
	AssetTag string
	BundleID string
}

func (e *IdentityMismatchError) Error() string {
	return fmt.Sprintf("bundle intake.asset_id %q does not match asset %q", e.BundleID, e.AssetTag)
}

// Result reports what one ingestion did
type Result struct {
	ScanID       int64
	AssetID      int64
	BundleHash   string
	DeviceSerial string
	DriveCount   int
	Duplicate    bool
}

// Service wires the parser to the record store and audit trail
type Service struct {
	store    *store.Store
	log      zerolog.Logger
	maxBytes int64
}

// New creates an ingestion service. maxBytes caps accepted bundle size;
// zero means unlimited.
func New(st *store.Store, log zerolog.Logger, maxBytes int64) *Service {
	return &Service{store: st, log: log, maxBytes: maxBytes}
}

// Ingest processes one uploaded scan bundle for the asset with the given
// tag. A bundle whose canonical content was already ingested for this
// asset is a successful no-op with Duplicate set. Any failure aborts the
// whole ingestion; nothing is written partially.
func (s *Service) Ingest(assetTag string, raw []byte, actor, userNotes string) (*Result, error) {
	requestID := uuid.NewString()
	log := s.log.With().Str("request_id", requestID).Str("asset_tag", assetTag).Logger()

	b, err := bundle.Decode(raw, s.maxBytes)
	if err != nil {
		return nil, err
	}
	if err := bundle.Validate(b); err != nil {
		return nil, err
	}

	intake := bundle.IntakeInfo(b)
	if intake.AssetID != assetTag {
		return nil, &IdentityMismatchError{AssetTag: assetTag, BundleID: intake.AssetID}
	}

	hash, err := bundle.Hash(b)
	if err != nil {
		return nil, err
	}

	asset, created, err := s.store.GetOrCreateAsset(assetTag, actor)
	if err != nil {
		return nil, err
	}
	if created {
		log.Info().Msg("auto-created asset on first scan")
	}

	if existing, err := s.store.GetScanByHash(asset.ID, hash); err != nil {
		return nil, err
	} else if existing != nil {
		log.Info().Str("bundle_hash", hash).Int64("scan_id", existing.ID).Msg("duplicate bundle, skipping")
		return &Result{
			ScanID:       existing.ID,
			AssetID:      asset.ID,
			BundleHash:   hash,
			DeviceSerial: existing.DeviceSerial,
			Duplicate:    true,
		}, nil
	}

	summary := lshw.ParseReport(bundle.LshwSource(b))

	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to encode summary: %w", err)
	}
	rawCanonical, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to encode bundle: %w", err)
	}

	scan := &store.Scan{
		AssetID:           asset.ID,
		DeviceSerial:      summary.DeviceSerial,
		RawJSON:           string(rawCanonical),
		BundleHash:        hash,
		Schema:            bundle.Schema,
		GeneratedAt:       bundle.GeneratedAt(b),
		TechName:          intake.TechName,
		ClientName:        intake.ClientName,
		CosmeticCondition: intake.CosmeticCondition,
		IntakeNote:        intake.Note,
		SummaryJSON:       string(summaryJSON),
		UserNotes:         userNotes,
		ScannedBy:         actor,
	}
	if err := s.store.InsertScan(scan); err != nil {
		return nil, err
	}

	for _, disk := range summary.Disks {
		// Synthetic serials keep this from happening, but an empty
		// serial must never become a drive row.
		if strings.TrimSpace(disk.Serial) == "" {
			continue
		}
		err := s.store.UpsertDrive(&store.Drive{
			AssetID:       asset.ID,
			Serial:        disk.Serial,
			Logicalname:   disk.Logicalname,
			CapacityBytes: disk.SizeBytes,
			Model:         disk.Model,
			Source:        store.SourceScan,
		})
		if err != nil {
			return nil, err
		}
	}

	err = s.store.RecordTouch(asset.ID, store.TouchScanUpload, actor, map[string]any{
		"request_id":    requestID,
		"scan_id":       scan.ID,
		"device_serial": summary.DeviceSerial,
		"drive_count":   len(summary.Disks),
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("scan_id", scan.ID).
		Str("bundle_hash", hash).
		Str("device_serial", summary.DeviceSerial).
		Int("drive_count", len(summary.Disks)).
		Msg("scan ingested")

	return &Result{
		ScanID:       scan.ID,
		AssetID:      asset.ID,
		BundleHash:   hash,
		DeviceSerial: summary.DeviceSerial,
		DriveCount:   len(summary.Disks),
	}, nil
}
