package lshw

import "strings"

// EphemeralDevice reports whether a logical name refers to a runtime
// block device from the boot media (mmcblk*, loop*, sr*) rather than an
// installed drive. Such drives are stored but hidden from listings.
func EphemeralDevice(logicalname string) bool {
	ln := strings.ToLower(logicalname)
	ln = strings.TrimPrefix(ln, "/dev/")
	return strings.HasPrefix(ln, "mmc") || strings.HasPrefix(ln, "loop") || strings.HasPrefix(ln, "sr")
}

// ParseDisks extracts every disk-class node as a Disk fact. Drives
// reporting a placeholder serial get a synthetic one hashed from their
// characteristics, so the serial field is always non-empty.
func ParseDisks(root any) []Disk {
	var disks []Disk
	for node := range Walk(root) {
		if node.Class() != "disk" {
			continue
		}
		model := node.Str("product")
		if model == "" {
			model = node.Str("description")
		}
		serial := strings.TrimSpace(node.Str("serial"))
		if !LooksLikeSerial(serial) {
			serial = syntheticSerial(node["logicalname"], node["size"], model)
		}

		disk := Disk{
			Serial:      serial,
			Logicalname: node.Str("logicalname"),
			Model:       model,
		}
		if size, ok := node.Size(); ok {
			disk.SizeBytes = &size
		}
		disks = append(disks, disk)
	}
	return disks
}
