package lshw

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatBytes renders a byte count as a human-readable string like
// "256.0 GB". Zero (or unknown, passed as zero) renders as "0 B".
func FormatBytes(n int64) string {
	if n == 0 {
		return "0 B"
	}
	num := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if num < 1024.0 {
			return fmt.Sprintf("%.1f %s", num, unit)
		}
		num /= 1024.0
	}
	return fmt.Sprintf("%.1f PB", num)
}

var unitMultipliers = map[string]int64{
	"KB": 1 << 10,
	"MB": 1 << 20,
	"GB": 1 << 30,
	"TB": 1 << 40,
}

// parseByteString converts a FormatBytes-style string ("16.0 GB") back
// into a byte count. Returns false for anything it cannot parse.
func parseByteString(s string) (int64, bool) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return 0, false
	}
	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	multiplier := int64(1)
	unit := "GB"
	if len(fields) > 1 {
		unit = strings.ToUpper(fields[1])
	}
	if m, ok := unitMultipliers[unit]; ok {
		multiplier = m
	}
	return int64(value * float64(multiplier)), true
}
