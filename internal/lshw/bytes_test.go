package lshw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{"zero", 0, "0 B"},
		{"bytes", 512, "512.0 B"},
		{"kilobytes", 1024, "1.0 KB"},
		{"two kilobytes", 2048, "2.0 KB"},
		{"megabytes", 1 << 20, "1.0 MB"},
		{"half gigabyte", 512 << 20, "512.0 MB"},
		{"gigabytes", 1 << 30, "1.0 GB"},
		{"sixteen gigabytes", 16 << 30, "16.0 GB"},
		{"terabytes", 1 << 40, "1.0 TB"},
		{"petabyte fallthrough", 1 << 50, "1.0 PB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.n))
		})
	}
}

func TestFormatBytesUnitBoundaries(t *testing.T) {
	// Each 1024 boundary escalates to the next unit
	assert.Equal(t, "1023.0 B", FormatBytes(1023))
	assert.Equal(t, "1.0 KB", FormatBytes(1024))
	assert.Equal(t, "1023.0 KB", FormatBytes(1023*1024))
	assert.Equal(t, "1.0 MB", FormatBytes(1024*1024))
}

func TestParseByteString(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"16.0 GB", 16 << 30},
		{"1.0 KB", 1 << 10},
		{"2.5 MB", 5 << 20 / 2},
		{"1.0 TB", 1 << 40},
		{"512.0 B", 512},
	}
	for _, tt := range tests {
		got, ok := parseByteString(tt.in)
		require.True(t, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, ok := parseByteString("")
	assert.False(t, ok)
	_, ok = parseByteString("lots of ram")
	assert.False(t, ok)
}
