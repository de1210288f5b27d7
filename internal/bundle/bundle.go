// Package bundle validates and fingerprints scan bundle envelopes
// (schema motherboard.scan_bundle.v1) uploaded by the scanner tooling.
package bundle

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// Schema is the only accepted envelope schema string.
const Schema = "motherboard.scan_bundle.v1"

// ValidationError describes a malformed or incomplete envelope. Field
// names the offending key so the uploader can fix the payload.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Intake carries the technician-entered fields copied out of the
// envelope for querying.
type Intake struct {
	AssetID           string
	TechName          string
	ClientName        string
	CosmeticCondition string
	Note              string
}

// Decode parses raw bundle bytes into a generic map. maxBytes of zero
// means no size cap.
func Decode(raw []byte, maxBytes int64) (map[string]any, error) {
	if maxBytes > 0 && int64(len(raw)) > maxBytes {
		return nil, &ValidationError{Reason: fmt.Sprintf("bundle exceeds maximum size of %d bytes", maxBytes)}
	}
	if !utf8.Valid(raw) {
		return nil, &ValidationError{Reason: "bundle must be UTF-8 encoded text"}
	}
	var b map[string]any
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return b, nil
}

// Validate checks the envelope against the scan bundle contract. Any
// violation rejects the whole bundle; there is no partial acceptance.
func Validate(b map[string]any) error {
	if b == nil {
		return &ValidationError{Reason: "expected JSON object"}
	}
	if s, _ := b["schema"].(string); s != Schema {
		return &ValidationError{Field: "schema", Reason: fmt.Sprintf("expected %q", Schema)}
	}
	if _, ok := b["generated_at"]; !ok {
		return &ValidationError{Field: "generated_at", Reason: "missing required field"}
	}
	scanner, ok := b["scanner"].(map[string]any)
	if !ok || str(scanner, "hostname") == "" || str(scanner, "user") == "" {
		return &ValidationError{Field: "scanner", Reason: "requires hostname and user"}
	}
	intake, ok := b["intake"].(map[string]any)
	if !ok || str(intake, "asset_id") == "" {
		return &ValidationError{Field: "intake", Reason: "requires asset_id"}
	}
	sources, ok := b["sources"].(map[string]any)
	if !ok {
		return &ValidationError{Field: "sources", Reason: "missing required field"}
	}
	if _, ok := sources["lshw"].(map[string]any); !ok {
		return &ValidationError{Field: "sources.lshw", Reason: "missing required source"}
	}
	meta, ok := b["meta"].(map[string]any)
	if !ok {
		return &ValidationError{Field: "meta", Reason: "missing required field"}
	}
	if _, ok := meta["status"]; !ok {
		return &ValidationError{Field: "meta.status", Reason: "missing required field"}
	}
	return nil
}

// Hash returns the sha256 hex digest of the canonical envelope form:
// keys sorted, no insignificant whitespace. Two uploads differing only
// in key order hash identically.
func Hash(b map[string]any) (string, error) {
	canonical, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize bundle: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// IntakeInfo extracts the intake block. Missing fields come back empty.
func IntakeInfo(b map[string]any) Intake {
	intake, _ := b["intake"].(map[string]any)
	return Intake{
		AssetID:           str(intake, "asset_id"),
		TechName:          str(intake, "tech_name"),
		ClientName:        str(intake, "client_name"),
		CosmeticCondition: str(intake, "cosmetic_condition"),
		Note:              str(intake, "note"),
	}
}

// LshwSource returns the device tree under sources.lshw.
func LshwSource(b map[string]any) map[string]any {
	sources, _ := b["sources"].(map[string]any)
	doc, _ := sources["lshw"].(map[string]any)
	return doc
}

// GeneratedAt returns the envelope's generation timestamp string.
func GeneratedAt(b map[string]any) string {
	return str(b, "generated_at")
}

func str(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}
