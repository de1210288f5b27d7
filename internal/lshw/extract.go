package lshw

import (
	"fmt"
	"strconv"
	"strings"
)

// Classes whose serial field can identify the whole machine.
var systemSerialClasses = map[string]struct{}{
	"system":      {},
	"bus":         {},
	"motherboard": {},
	"bridge":      {},
	"chassis":     {},
}

// ExtractSerial returns the device serial number, preferring the report's
// own serial/uuid fields, then system-level nodes. The first plausible
// candidate wins; with the walker's unspecified sibling order the choice
// between equally valid candidates is arbitrary.
func ExtractSerial(root any) string {
	n, ok := asNode(root)
	if !ok {
		return ""
	}
	for _, key := range []string{"serial", "uuid"} {
		if v := n.Str(key); LooksLikeSerial(v) {
			return v
		}
	}
	for node := range Walk(root) {
		cls := node.Class()
		if _, ok := systemSerialClasses[cls]; ok {
			if v := node.Str("serial"); LooksLikeSerial(v) {
				return v
			}
		}
		if cls == "system" {
			if v := node.Str("uuid"); LooksLikeSerial(v) {
				return v
			}
		}
	}
	return ""
}

// ExtractCPUInfo returns a "<vendor> <product>" description of the first
// processor node, or "" when the report has none.
func ExtractCPUInfo(root any) string {
	for node := range Walk(root) {
		if node.Class() != "processor" {
			continue
		}
		product := strings.TrimSpace(node.Str("product"))
		if product == "" {
			continue
		}
		vendor := strings.TrimSpace(node.Str("vendor"))
		if vendor != "" {
			return vendor + " " + product
		}
		return product
	}
	return ""
}

// ExtractSystemInfo returns vendor/product/serial from the first system
// node, or nil when absent.
func ExtractSystemInfo(root any) *SystemInfo {
	for node := range Walk(root) {
		if node.Class() == "system" {
			return &SystemInfo{
				Vendor:  node.Str("vendor"),
				Product: node.Str("product"),
				Serial:  node.Str("serial"),
			}
		}
	}
	return nil
}

// ExtractGraphics collects every display adapter in the report.
func ExtractGraphics(root any) []Graphics {
	var gpus []Graphics
	for node := range Walk(root) {
		if node.Class() != "display" {
			continue
		}
		product := node.Str("product")
		if product == "" {
			product = node.Str("description")
		}
		gpus = append(gpus, Graphics{
			Product:     product,
			Vendor:      node.Str("vendor"),
			Description: node.Str("description"),
		})
	}
	return gpus
}

// ExtractNetwork collects network adapters with a best-effort
// wireless/ethernet classification from configuration and description.
func ExtractNetwork(root any) []NetworkAdapter {
	var nets []NetworkAdapter
	for node := range Walk(root) {
		if node.Class() != "network" {
			continue
		}
		product := node.Str("product")
		if product == "" {
			product = node.Str("description")
		}
		ntype := "unknown"
		if cfg := node.Config(); cfg != nil {
			driver := fmt.Sprint(cfg["driver"])
			switch {
			case cfgPresent(cfg, "wireless") || cfgPresent(cfg, "wireless-info") ||
				(cfg["driver"] != nil && strings.Contains(driver, "wlan")):
				ntype = "wireless"
			case cfgPresent(cfg, "ip") || cfgPresent(cfg, "ip6"):
				ntype = "ethernet"
			}
		}
		desc := strings.ToLower(node.Str("description"))
		if strings.Contains(desc, "wireless") || strings.Contains(desc, "wifi") || strings.Contains(desc, "wlan") {
			ntype = "wireless"
		}
		nets = append(nets, NetworkAdapter{
			Product:     product,
			Logicalname: node.Str("logicalname"),
			MAC:         node.Str("serial"),
			Type:        ntype,
		})
	}
	return nets
}

func cfgPresent(cfg map[string]any, key string) bool {
	v, ok := cfg[key]
	if !ok || v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	return true
}

// ExtractMultimedia merges webcam and audio facts from multimedia nodes.
// The first matching model of each kind is kept.
func ExtractMultimedia(root any) Multimedia {
	var result Multimedia
	for node := range Walk(root) {
		if node.Class() != "multimedia" {
			continue
		}
		product := strings.TrimSpace(node.Str("product"))
		if product == "" {
			product = strings.TrimSpace(node.Str("description"))
		}
		desc := strings.ToLower(product)
		if strings.Contains(desc, "camera") || strings.Contains(desc, "webcam") || strings.Contains(desc, "uvc") {
			result.Webcam = true
			if result.WebcamModel == "" {
				result.WebcamModel = product
			}
		}
		if strings.Contains(desc, "audio") || strings.Contains(desc, "microphone") || strings.Contains(desc, "sound") {
			result.Audio = true
			if result.AudioModel == "" {
				result.AudioModel = product
			}
		}
	}
	return result
}

// ExtractBattery returns battery details for portable systems, matched by
// "battery" appearing in a node id or description.
func ExtractBattery(root any) *Battery {
	for node := range Walk(root) {
		nid := strings.ToLower(node.Str("id"))
		desc := strings.ToLower(node.Str("description"))
		if !strings.Contains(nid, "battery") && !strings.Contains(desc, "battery") {
			continue
		}
		product := node.Str("product")
		if product == "" {
			product = node.Str("description")
		}
		b := &Battery{
			Present: true,
			Product: product,
			Vendor:  node.Str("vendor"),
		}
		if size, ok := node.Size(); ok {
			b.CapacityBytes = &size
		} else if s := node.Str("size"); s != "" {
			if v, err := strconv.ParseInt(s, 10, 64); err == nil {
				b.CapacityBytes = &v
			}
		}
		return b
	}
	return &Battery{Present: false}
}
