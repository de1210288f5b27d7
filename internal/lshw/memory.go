package lshw

import "strings"

// systemMemoryBytes returns the size of the "System Memory" node, the
// authoritative RAM total when lshw reports one.
func systemMemoryBytes(root any) (int64, bool) {
	for node := range Walk(root) {
		if node.Class() != "memory" {
			continue
		}
		size, ok := node.Size()
		if !ok || size == 0 {
			continue
		}
		if strings.Contains(strings.ToLower(node.Str("description")), "system memory") {
			return size, true
		}
	}
	return 0, false
}

// extractMemorySlots collects per-slot details from memory bank nodes.
// Banks usually have class "bank" but some reports only hint at it via
// the node id or description.
func extractMemorySlots(root any) []MemorySlot {
	var slots []MemorySlot
	for node := range Walk(root) {
		cls := strings.ToLower(node.Class())
		nid := strings.ToLower(node.Str("id"))
		desc := strings.ToLower(node.Str("description"))
		if cls != "bank" && !strings.Contains(nid, "bank") && !strings.Contains(desc, "bank") {
			continue
		}

		slot := node.Str("slot")
		if slot == "" {
			slot = node.Str("id")
		}
		if slot == "" {
			slot = node.Str("description")
		}
		serial := node.Str("serial")
		if serial == "" {
			serial = node.Str("serial-number")
		}

		ms := MemorySlot{
			Slot:    slot,
			Vendor:  node.Str("vendor"),
			Product: node.Str("product"),
			Serial:  serial,
		}
		if size, ok := node.Size(); ok {
			ms.SizeBytes = &size
			if size != 0 {
				ms.SizeHuman = FormatBytes(size)
			}
		}
		slots = append(slots, ms)
	}
	return slots
}

// memoryTotalBytes resolves the RAM total through three fallbacks: the
// System Memory node, then the sum of populated slot sizes, then the
// human-readable RAM string from the hardware summary. Returns nil when
// none of the three yield a value.
func memoryTotalBytes(root any, slots []MemorySlot, hw *HWSummary) *int64 {
	if total, ok := systemMemoryBytes(root); ok {
		return &total
	}

	var total int64
	foundAny := false
	for _, ms := range slots {
		if ms.SizeBytes != nil && *ms.SizeBytes != 0 {
			foundAny = true
			total += *ms.SizeBytes
		}
	}
	if foundAny {
		return &total
	}

	if hw != nil && strings.TrimSpace(hw.RAM) != "" {
		if parsed, ok := parseByteString(hw.RAM); ok {
			return &parsed
		}
	}
	return nil
}
