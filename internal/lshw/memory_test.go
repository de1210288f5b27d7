package lshw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryDoc(sysMemSize any, banks ...map[string]any) map[string]any {
	memNode := map[string]any{
		"id":    "memory",
		"class": "memory",
	}
	if sysMemSize != nil {
		memNode["description"] = "System Memory"
		memNode["size"] = sysMemSize
	}
	children := make([]any, 0, len(banks))
	for _, b := range banks {
		children = append(children, b)
	}
	memNode["children"] = children

	return map[string]any{
		"id":    "computer",
		"class": "system",
		"children": []any{
			map[string]any{
				"id":       "core",
				"class":    "bus",
				"children": []any{memNode},
			},
		},
	}
}

func TestSingleMemorySlot(t *testing.T) {
	doc := memoryDoc(float64(8589934592), map[string]any{
		"id":          "bank:0",
		"class":       "memory",
		"description": "SODIMM DDR4 Synchronous",
		"slot":        "DIMM 0",
		"size":        float64(8589934592),
		"vendor":      "Samsung",
		"product":     "M471A1K43CB1-CTD",
		"serial":      "12345678",
	})

	summary := ParseReport(doc)
	require.Len(t, summary.MemorySlots, 1)

	slot := summary.MemorySlots[0]
	assert.Equal(t, "DIMM 0", slot.Slot)
	require.NotNil(t, slot.SizeBytes)
	assert.Equal(t, int64(8589934592), *slot.SizeBytes)
	assert.Equal(t, "8.0 GB", slot.SizeHuman)
	assert.Equal(t, "Samsung", slot.Vendor)
	assert.Equal(t, "M471A1K43CB1-CTD", slot.Product)
	assert.Equal(t, "12345678", slot.Serial)

	require.NotNil(t, summary.MemoryTotalBytes)
	assert.Equal(t, int64(8589934592), *summary.MemoryTotalBytes)
}

func TestDualMemorySlotsTotalFromSystemMemory(t *testing.T) {
	doc := memoryDoc(float64(17179869184),
		map[string]any{
			"id": "bank:0", "class": "memory", "slot": "DIMM A",
			"size": float64(8589934592), "vendor": "Crucial", "serial": "AAAA1111",
		},
		map[string]any{
			"id": "bank:1", "class": "memory", "slot": "DIMM B",
			"size": float64(8589934592), "vendor": "Crucial", "serial": "BBBB2222",
		},
	)

	summary := ParseReport(doc)
	assert.Len(t, summary.MemorySlots, 2)
	require.NotNil(t, summary.MemoryTotalBytes)
	// System Memory node wins over the slot sum
	assert.Equal(t, int64(17179869184), *summary.MemoryTotalBytes)
}

func TestMemoryTotalFromSlotSumFallback(t *testing.T) {
	// No System Memory node: total comes from summing bank sizes
	doc := memoryDoc(nil,
		map[string]any{"id": "bank:0", "class": "memory", "slot": "DIMM 0", "size": float64(4294967296)},
		map[string]any{"id": "bank:1", "class": "memory", "slot": "DIMM 1", "size": float64(4294967296)},
	)

	summary := ParseReport(doc)
	assert.Len(t, summary.MemorySlots, 2)
	require.NotNil(t, summary.MemoryTotalBytes)
	assert.Equal(t, int64(8589934592), *summary.MemoryTotalBytes)
}

func TestMemoryTotalFromRAMStringFallback(t *testing.T) {
	// Neither System Memory nor sized banks, but a plain memory node
	// contributes to the hw_summary RAM string
	doc := map[string]any{
		"id":    "computer",
		"class": "system",
		"children": []any{
			map[string]any{
				"id":    "memory",
				"class": "memory",
				"size":  float64(17179869184),
			},
		},
	}

	summary := ParseReport(doc)
	assert.Empty(t, summary.MemorySlots)
	require.NotNil(t, summary.HWSummary)
	assert.Equal(t, "16.0 GB", summary.HWSummary.RAM)
	require.NotNil(t, summary.MemoryTotalBytes)
	assert.Equal(t, int64(16<<30), *summary.MemoryTotalBytes)
}

func TestMemoryTotalAbsent(t *testing.T) {
	doc := map[string]any{
		"id":    "computer",
		"class": "system",
		"children": []any{
			map[string]any{"id": "core", "class": "bus", "children": []any{}},
		},
	}

	summary := ParseReport(doc)
	assert.Empty(t, summary.MemorySlots)
	assert.Nil(t, summary.MemoryTotalBytes)
}

func TestMemorySlotsSkipUnsizedBanksInSum(t *testing.T) {
	doc := memoryDoc(nil,
		map[string]any{"id": "bank:0", "class": "memory", "slot": "DIMM 0", "size": float64(4294967296)},
		map[string]any{"id": "bank:1", "class": "memory", "slot": "DIMM 1"},
	)

	summary := ParseReport(doc)
	assert.Len(t, summary.MemorySlots, 2)
	require.NotNil(t, summary.MemoryTotalBytes)
	assert.Equal(t, int64(4294967296), *summary.MemoryTotalBytes)
}

func TestSystemMemoryRAMSummaryIgnoresCache(t *testing.T) {
	doc := map[string]any{
		"id":    "computer",
		"class": "system",
		"children": []any{
			map[string]any{
				"id": "core", "class": "bus",
				"children": []any{
					map[string]any{"id": "cache:0", "class": "memory", "description": "L2 cache", "size": float64(262144)},
					map[string]any{"id": "memory", "class": "memory", "size": float64(8589934592)},
				},
			},
		},
	}

	summary := ParseReport(doc)
	require.NotNil(t, summary.HWSummary)
	assert.Equal(t, "8.0 GB", summary.HWSummary.RAM)
}
