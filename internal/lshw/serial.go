package lshw

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// SyntheticPrefix marks serials derived by hashing drive characteristics
// rather than read from hardware.
const SyntheticPrefix = "NOSERIAL-"

// Placeholder values hardware vendors ship instead of real serials.
var badSerials = map[string]struct{}{
	"unknown":       {},
	"none":          {},
	"n/a":           {},
	"na":            {},
	"null":          {},
	"0":             {},
	"0000000":       {},
	"00000000":      {},
	"000000000":     {},
	"not specified": {},
}

// LooksLikeSerial reports whether s plausibly is a real serial number.
// This is a low-precision filter: it only rejects empty, short, and
// known-placeholder values.
func LooksLikeSerial(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 6 {
		return false
	}
	_, bad := badSerials[strings.ToLower(s)]
	return !bad
}

// syntheticSerial derives a stable stand-in serial from drive
// characteristics. Identical inputs always hash to the same value so a
// re-scan of an unserialized drive does not mint a new identity.
func syntheticSerial(logical, size any, model string) string {
	blob, _ := json.Marshal(map[string]any{
		"logical": logical,
		"size":    size,
		"model":   model,
	})
	sum := sha1.Sum(blob)
	return SyntheticPrefix + hex.EncodeToString(sum[:])[:12]
}
