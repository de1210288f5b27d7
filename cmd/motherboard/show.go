package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/refurbworks/motherboard/internal/lshw"
	"github.com/refurbworks/motherboard/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show <asset-tag>",
	Short: "Show an asset with its latest scan and drives",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showAll, _ := cmd.Flags().GetBool("all")

		cfg := loadConfig()
		st := openStore(cfg)
		defer st.Close()

		asset, err := st.GetAssetByTag(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if asset == nil {
			fmt.Fprintf(os.Stderr, "Unknown asset %q\n", args[0])
			os.Exit(1)
		}

		fmt.Printf("Asset %s\n", asset.AssetTag)
		fmt.Printf("  Created:  %s by %s\n", humanize.Time(asset.CreatedAt), orDash(asset.CreatedBy))
		fmt.Printf("  Status:   %s\n", orDash(asset.Status))
		fmt.Printf("  Type:     %s\n", orDash(asset.DeviceType))
		fmt.Printf("  Grade:    %s\n", orDash(asset.CosmeticGrade))
		fmt.Printf("  Location: %s\n", orDash(asset.Location))

		scan, err := st.LatestScan(asset.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if scan != nil {
			printScan(scan)
		}

		drives, err := st.GetDrivesByAsset(asset.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printDrives(drives, showAll)
	},
}

func init() {
	showCmd.Flags().Bool("all", false, "include ephemeral devices (boot media, loop, optical)")
}

func printScan(scan *store.Scan) {
	fmt.Printf("\nLatest scan (%s, %s):\n", humanize.Time(scan.ScannedAt), orDash(scan.ScannedBy))
	fmt.Printf("  Device serial: %s\n", orDash(scan.DeviceSerial))

	if scan.SummaryJSON == "" {
		return
	}
	var summary lshw.Summary
	if err := json.Unmarshal([]byte(scan.SummaryJSON), &summary); err != nil {
		return
	}

	if summary.CPUInfo != "" {
		fmt.Printf("  CPU:     %s\n", summary.CPUInfo)
	}
	if summary.HWSummary != nil {
		if summary.HWSummary.RAM != "" {
			fmt.Printf("  RAM:     %s\n", summary.HWSummary.RAM)
		}
		if summary.HWSummary.Storage != "" {
			fmt.Printf("  Storage: %s\n", summary.HWSummary.Storage)
		}
	}
	if summary.SystemInfo != nil {
		fmt.Printf("  System:  %s %s\n", summary.SystemInfo.Vendor, summary.SystemInfo.Product)
	}
	for _, g := range summary.Graphics {
		fmt.Printf("  GPU:     %s\n", g.Product)
	}
	for _, n := range summary.Network {
		fmt.Printf("  Network: %s (%s)\n", n.Product, n.Type)
	}
	if summary.Multimedia.Webcam {
		fmt.Printf("  Webcam:  %s\n", summary.Multimedia.WebcamModel)
	}
	if summary.Battery != nil && summary.Battery.Present {
		fmt.Printf("  Battery: %s\n", summary.Battery.Product)
	}
	for _, ms := range summary.MemorySlots {
		size := ms.SizeHuman
		if size == "" {
			size = "empty"
		}
		fmt.Printf("  Memory slot %s: %s %s %s\n", ms.Slot, size, ms.Vendor, ms.Product)
	}
}

func printDrives(drives []*store.Drive, showAll bool) {
	var shown []*store.Drive
	for _, d := range drives {
		if !showAll && lshw.EphemeralDevice(d.Logicalname) {
			continue
		}
		shown = append(shown, d)
	}

	fmt.Printf("\nDrives (%d):\n", len(shown))
	for _, d := range shown {
		capacity := d.CapacityHuman()
		if capacity == "" {
			capacity = "unknown size"
		}
		fmt.Printf("  [%d] %s %s %s - %s %s\n",
			d.ID, capacity, d.Model, d.SerialTag(), d.Status, humanize.Time(d.StatusAt))
	}
}
