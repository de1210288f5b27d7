package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/refurbworks/motherboard/internal/store"
)

var validDriveStatuses = map[string]struct{}{
	store.DriveStatusPresent:  {},
	store.DriveStatusRemoved:  {},
	store.DriveStatusWiped:    {},
	store.DriveStatusShredded: {},
	store.DriveStatusReturned: {},
}

var driveStatusCmd = &cobra.Command{
	Use:   "drive-status <asset-tag> <drive-id>",
	Short: "Update a drive's disposition status",
	Long: `Moves a drive through its disposition lifecycle: present, removed,
wiped, shredded, or returned_to_client. The change is recorded in the
asset's audit trail.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		status, _ := cmd.Flags().GetString("status")
		note, _ := cmd.Flags().GetString("note")

		if _, ok := validDriveStatuses[status]; !ok {
			fmt.Fprintf(os.Stderr, "Invalid status %q (want present, removed, wiped, shredded, or returned_to_client)\n", status)
			os.Exit(1)
		}
		driveID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid drive id %q\n", args[1])
			os.Exit(1)
		}

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

		by := actor(cmd)
		drive, err := st.UpdateDriveStatus(asset.ID, driveID, status, note, by)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error updating drive status: %v\n", err)
			os.Exit(1)
		}

		err = st.RecordTouch(asset.ID, store.TouchDriveStatus, by, map[string]any{
			"drive_id":    drive.ID,
			"serial":      drive.Serial,
			"status":      drive.Status,
			"status_note": drive.StatusNote,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error recording audit entry: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Drive %s on %s is now %s\n", drive.SerialTag(), asset.AssetTag, drive.Status)
	},
}

var findDriveCmd = &cobra.Command{
	Use:   "find-drive <serial>",
	Short: "Find drives by serial number across all assets",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		st := openStore(cfg)
		defer st.Close()

		drives, err := st.FindDrivesBySerial(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(drives) == 0 {
			fmt.Printf("No drives found with serial %s\n", args[0])
			return
		}

		for _, d := range drives {
			capacity := d.CapacityHuman()
			if capacity == "" {
				capacity = "unknown size"
			}
			fmt.Printf("[%d] asset %s: %s %s - %s %s\n",
				d.ID, d.AssetTag, capacity, d.Model, d.Status, humanize.Time(d.StatusAt))
		}
	},
}

func init() {
	driveStatusCmd.Flags().String("status", "", "new status (present, removed, wiped, shredded, returned_to_client)")
	driveStatusCmd.Flags().String("note", "", "optional note about the change")
	driveStatusCmd.Flags().String("by", "", "who made the change (defaults to $USER)")
	driveStatusCmd.MarkFlagRequired("status")
}
