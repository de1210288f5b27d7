package lshw

import "strings"

// Disk is one storage drive found in a report. Serial is never empty
// after extraction; synthetic serials carry the NOSERIAL- prefix.
type Disk struct {
	Serial      string `json:"serial"`
	Logicalname string `json:"logicalname"`
	SizeBytes   *int64 `json:"size_bytes"`
	Model       string `json:"model"`
}

// SystemInfo is the machine-level identity block.
type SystemInfo struct {
	Vendor  string `json:"vendor"`
	Product string `json:"product"`
	Serial  string `json:"serial"`
}

// Graphics is one display adapter.
type Graphics struct {
	Product     string `json:"product"`
	Vendor      string `json:"vendor"`
	Description string `json:"description"`
}

// NetworkAdapter is one network interface. Type is "wireless",
// "ethernet", or "unknown".
type NetworkAdapter struct {
	Product     string `json:"product"`
	Logicalname string `json:"logicalname"`
	MAC         string `json:"mac"`
	Type        string `json:"type"`
}

// Multimedia summarizes webcam and audio devices.
type Multimedia struct {
	Webcam      bool   `json:"webcam"`
	WebcamModel string `json:"webcam_model"`
	Audio       bool   `json:"audio"`
	AudioModel  string `json:"audio_model"`
}

// Battery describes the battery of a portable system, if any.
type Battery struct {
	Present       bool   `json:"present"`
	Product       string `json:"product,omitempty"`
	Vendor        string `json:"vendor,omitempty"`
	CapacityBytes *int64 `json:"capacity_bytes,omitempty"`
}

// MemorySlot is one populated or empty memory bank.
type MemorySlot struct {
	Slot      string `json:"slot"`
	SizeBytes *int64 `json:"size_bytes"`
	SizeHuman string `json:"size_human,omitempty"`
	Vendor    string `json:"vendor"`
	Product   string `json:"product"`
	Serial    string `json:"serial"`
}

// HWSummary holds the human-readable RAM and storage lines shown on the
// asset page.
type HWSummary struct {
	RAM     string `json:"ram,omitempty"`
	Storage string `json:"storage,omitempty"`
}

// Summary is the normalized result of parsing one lshw report. Every
// field degrades to its zero value when the report lacks the matching
// hardware, so a sparse report still parses.
type Summary struct {
	DeviceSerial     string           `json:"device_serial,omitempty"`
	CPUInfo          string           `json:"cpu_info,omitempty"`
	HWSummary        *HWSummary       `json:"hw_summary,omitempty"`
	Disks            []Disk           `json:"disks"`
	SystemInfo       *SystemInfo      `json:"system_info,omitempty"`
	Graphics         []Graphics       `json:"graphics"`
	Network          []NetworkAdapter `json:"network"`
	Multimedia       Multimedia       `json:"multimedia"`
	Battery          *Battery         `json:"battery,omitempty"`
	MemorySlots      []MemorySlot     `json:"memory_slots"`
	MemoryTotalBytes *int64           `json:"memory_total_bytes,omitempty"`
}

// extractBasicHW builds the RAM/storage summary strings. The RAM total
// here prefers the System Memory node and otherwise sums all non-cache
// memory nodes.
func extractBasicHW(root any, disks []Disk) *HWSummary {
	var result HWSummary

	totalBytes, ok := systemMemoryBytes(root)
	if !ok {
		for node := range Walk(root) {
			if node.Class() != "memory" {
				continue
			}
			size, sok := node.Size()
			if !sok || size == 0 {
				continue
			}
			if strings.Contains(strings.ToLower(node.Str("description")), "cache") {
				continue
			}
			totalBytes += size
		}
	}
	if totalBytes != 0 {
		result.RAM = FormatBytes(totalBytes)
	}

	if len(disks) > 0 {
		labels := make([]string, 0, len(disks))
		for _, d := range disks {
			var parts []string
			if d.SizeBytes != nil && *d.SizeBytes != 0 {
				parts = append(parts, FormatBytes(*d.SizeBytes))
			}
			if d.Model != "" {
				parts = append(parts, d.Model)
			}
			if d.Serial != "" {
				if strings.HasPrefix(d.Serial, SyntheticPrefix) {
					parts = append(parts, "(no serial)")
				} else {
					parts = append(parts, "(SN "+d.Serial+")")
				}
			}
			labels = append(labels, strings.Join(parts, " "))
		}
		result.Storage = strings.Join(labels, " + ")
	}

	if result.RAM == "" && result.Storage == "" {
		return nil
	}
	return &result
}

// ParseReport runs every extractor over the report and merges the
// results. It is a pure function of its input and never fails: a
// degenerate document yields an empty Summary.
func ParseReport(root any) *Summary {
	disks := ParseDisks(root)
	hw := extractBasicHW(root, disks)
	slots := extractMemorySlots(root)

	return &Summary{
		DeviceSerial:     ExtractSerial(root),
		CPUInfo:          ExtractCPUInfo(root),
		HWSummary:        hw,
		Disks:            disks,
		SystemInfo:       ExtractSystemInfo(root),
		Graphics:         ExtractGraphics(root),
		Network:          ExtractNetwork(root),
		Multimedia:       ExtractMultimedia(root),
		Battery:          ExtractBattery(root),
		MemorySlots:      slots,
		MemoryTotalBytes: memoryTotalBytes(root, slots, hw),
	}
}
