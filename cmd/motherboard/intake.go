package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/refurbworks/motherboard/internal/store"
)

var intakeCmd = &cobra.Command{
	Use:   "intake <asset-tag>",
	Short: "Update asset intake information",
	Long: `Updates intake fields on an asset (status, device type, cosmetic
grade and notes, location). Only the flags you pass are changed; the
update is recorded in the audit trail.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		st := openStore(cfg)
		defer st.Close()

		var upd store.IntakeUpdate
		changed := map[string]any{}
		for flag, dst := range map[string]**string{
			"status":         &upd.Status,
			"device-type":    &upd.DeviceType,
			"grade":          &upd.CosmeticGrade,
			"cosmetic-notes": &upd.CosmeticNotes,
			"location":       &upd.Location,
		} {
			if cmd.Flags().Changed(flag) {
				v, _ := cmd.Flags().GetString(flag)
				*dst = &v
				changed[flag] = v
			}
		}
		if len(changed) == 0 {
			fmt.Fprintln(os.Stderr, "Nothing to update; pass at least one intake flag")
			os.Exit(1)
		}

		by := actor(cmd)
		asset, _, err := st.GetOrCreateAsset(args[0], by)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		asset, err = st.UpdateIntake(asset.AssetTag, upd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error updating intake: %v\n", err)
			os.Exit(1)
		}

		err = st.RecordTouch(asset.ID, store.TouchIntakeUpdate, by, map[string]any{
			"updated_fields": changed,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error recording audit entry: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Updated intake for %s\n", asset.AssetTag)
	},
}

var touchesCmd = &cobra.Command{
	Use:   "touches <asset-tag>",
	Short: "Show the audit trail for an asset",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")

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

		touches, err := st.GetTouches(asset.ID, limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, t := range touches {
			fmt.Printf("%s  %-14s %s  %s\n",
				t.TouchedAt.Format("2006-01-02 15:04"), t.TouchType, orDash(t.TouchedBy), t.Details)
		}
	},
}

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List recently created assets",
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg := loadConfig()
		st := openStore(cfg)
		defer st.Close()

		assets, err := st.ListAssets(limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, a := range assets {
			fmt.Printf("%-16s %-10s %-10s %s\n",
				a.AssetTag, orDash(a.Status), orDash(a.DeviceType), humanize.Time(a.CreatedAt))
		}
	},
}

func init() {
	intakeCmd.Flags().String("status", "", "asset status (intake, testing, ready, sold, recycled, returned)")
	intakeCmd.Flags().String("device-type", "", "device type (laptop, desktop, server, tablet, phone, other)")
	intakeCmd.Flags().String("grade", "", "cosmetic grade (A-D)")
	intakeCmd.Flags().String("cosmetic-notes", "", "cosmetic condition notes")
	intakeCmd.Flags().String("location", "", "physical location")
	intakeCmd.Flags().String("by", "", "who made the change (defaults to $USER)")

	touchesCmd.Flags().Int("limit", 50, "maximum entries to show")
	assetsCmd.Flags().Int("limit", 20, "maximum assets to show")
}
