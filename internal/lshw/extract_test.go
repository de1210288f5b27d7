package lshw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSerialFromRoot(t *testing.T) {
	doc := map[string]any{
		"id":     "computer",
		"class":  "system",
		"serial": "PF1ABCDE",
	}
	assert.Equal(t, "PF1ABCDE", ExtractSerial(doc))
}

func TestExtractSerialRootUUIDFallback(t *testing.T) {
	doc := map[string]any{
		"id":     "computer",
		"class":  "system",
		"serial": "unknown",
		"uuid":   "4c4c4544-0042-3510-8052-b9c04f435931",
	}
	assert.Equal(t, "4c4c4544-0042-3510-8052-b9c04f435931", ExtractSerial(doc))
}

func TestExtractSerialFromNestedSystemClasses(t *testing.T) {
	doc := map[string]any{
		"id": "computer",
		"children": []any{
			map[string]any{"class": "motherboard", "serial": "MB123456789"},
		},
	}
	assert.Equal(t, "MB123456789", ExtractSerial(doc))
}

func TestExtractSerialNoneFound(t *testing.T) {
	doc := map[string]any{
		"id":     "computer",
		"serial": "0000000",
		"children": []any{
			map[string]any{"class": "disk", "serial": "DISKSERIAL99"},
		},
	}
	// disk serials never identify the machine
	assert.Empty(t, ExtractSerial(doc))
	assert.Empty(t, ExtractSerial("not a document"))
}

func TestExtractCPUInfo(t *testing.T) {
	doc := map[string]any{
		"id": "computer",
		"children": []any{
			map[string]any{
				"class":   "processor",
				"vendor":  "Intel Corp.",
				"product": "Intel(R) Core(TM) i5-8350U CPU @ 1.70GHz",
			},
		},
	}
	assert.Equal(t, "Intel Corp. Intel(R) Core(TM) i5-8350U CPU @ 1.70GHz", ExtractCPUInfo(doc))
}

func TestExtractCPUInfoProductOnly(t *testing.T) {
	doc := map[string]any{
		"id": "computer",
		"children": []any{
			map[string]any{"class": "processor", "product": "AMD Ryzen 5 3600"},
		},
	}
	assert.Equal(t, "AMD Ryzen 5 3600", ExtractCPUInfo(doc))
	assert.Empty(t, ExtractCPUInfo(map[string]any{"id": "computer"}))
}

func TestExtractSystemInfo(t *testing.T) {
	doc := map[string]any{
		"id":      "computer",
		"class":   "system",
		"vendor":  "LENOVO",
		"product": "20L5S00B00",
		"serial":  "PF1ABCDE",
	}
	info := ExtractSystemInfo(doc)
	require.NotNil(t, info)
	assert.Equal(t, "LENOVO", info.Vendor)
	assert.Equal(t, "20L5S00B00", info.Product)
	assert.Equal(t, "PF1ABCDE", info.Serial)

	assert.Nil(t, ExtractSystemInfo(map[string]any{"id": "x", "class": "bus"}))
}

func TestExtractGraphics(t *testing.T) {
	doc := map[string]any{
		"id": "computer",
		"children": []any{
			map[string]any{
				"class":       "display",
				"product":     "UHD Graphics 620",
				"vendor":      "Intel Corporation",
				"description": "VGA compatible controller",
			},
			map[string]any{"class": "display", "description": "3D controller"},
		},
	}
	gpus := ExtractGraphics(doc)
	require.Len(t, gpus, 2)
	products := []string{gpus[0].Product, gpus[1].Product}
	assert.Contains(t, products, "UHD Graphics 620")
	assert.Contains(t, products, "3D controller")
}

func TestExtractNetworkWirelessFromDescription(t *testing.T) {
	doc := map[string]any{
		"id": "computer",
		"children": []any{
			map[string]any{
				"class":       "network",
				"product":     "Wireless 8265 / 8275",
				"description": "Wireless interface",
				"logicalname": "wlp2s0",
				"serial":      "00:28:f8:aa:bb:cc",
			},
		},
	}
	nets := ExtractNetwork(doc)
	require.Len(t, nets, 1)
	assert.Equal(t, "wireless", nets[0].Type)
	assert.Equal(t, "wlp2s0", nets[0].Logicalname)
	assert.Equal(t, "00:28:f8:aa:bb:cc", nets[0].MAC)
}

func TestExtractNetworkEthernetFromConfiguration(t *testing.T) {
	doc := map[string]any{
		"id": "computer",
		"children": []any{
			map[string]any{
				"class":       "network",
				"product":     "Ethernet Connection I219-LM",
				"description": "Ethernet interface",
				"configuration": map[string]any{
					"ip":     "192.168.1.20",
					"driver": "e1000e",
				},
			},
		},
	}
	nets := ExtractNetwork(doc)
	require.Len(t, nets, 1)
	assert.Equal(t, "ethernet", nets[0].Type)
}

func TestExtractNetworkUnknownType(t *testing.T) {
	doc := map[string]any{
		"id": "computer",
		"children": []any{
			map[string]any{"class": "network", "product": "Bluetooth adapter"},
		},
	}
	nets := ExtractNetwork(doc)
	require.Len(t, nets, 1)
	assert.Equal(t, "unknown", nets[0].Type)
}

func TestExtractMultimedia(t *testing.T) {
	doc := map[string]any{
		"id": "computer",
		"children": []any{
			map[string]any{"class": "multimedia", "product": "Integrated Camera"},
			map[string]any{"class": "multimedia", "product": "Sunrise Point-LP HD Audio"},
		},
	}
	mm := ExtractMultimedia(doc)
	assert.True(t, mm.Webcam)
	assert.Equal(t, "Integrated Camera", mm.WebcamModel)
	assert.True(t, mm.Audio)
	assert.Equal(t, "Sunrise Point-LP HD Audio", mm.AudioModel)
}

func TestExtractMultimediaEmpty(t *testing.T) {
	mm := ExtractMultimedia(map[string]any{"id": "computer"})
	assert.False(t, mm.Webcam)
	assert.False(t, mm.Audio)
}

func TestExtractBattery(t *testing.T) {
	doc := map[string]any{
		"id": "computer",
		"children": []any{
			map[string]any{
				"id":      "battery",
				"product": "01AV430",
				"vendor":  "SMP",
				"size":    float64(26330000),
			},
		},
	}
	b := ExtractBattery(doc)
	require.NotNil(t, b)
	assert.True(t, b.Present)
	assert.Equal(t, "01AV430", b.Product)
	require.NotNil(t, b.CapacityBytes)
	assert.Equal(t, int64(26330000), *b.CapacityBytes)
}

func TestExtractBatteryAbsent(t *testing.T) {
	b := ExtractBattery(map[string]any{"id": "computer"})
	require.NotNil(t, b)
	assert.False(t, b.Present)
	assert.Nil(t, b.CapacityBytes)
}
