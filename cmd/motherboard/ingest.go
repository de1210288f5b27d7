package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/refurbworks/motherboard/internal/bundle"
	"github.com/refurbworks/motherboard/internal/ingest"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <asset-tag> <bundle.json>",
	Short: "Ingest a hardware scan bundle for an asset",
	Long: `Ingest validates a scan bundle (schema motherboard.scan_bundle.v1),
parses the lshw report inside it, stores the scan, and reconciles the
asset's drive records. Re-ingesting a bundle with identical content is a
no-op.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		assetTag, path := args[0], args[1]
		notes, _ := cmd.Flags().GetString("notes")

		cfg := loadConfig()
		st := openStore(cfg)
		defer st.Close()

		raw, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading bundle: %v\n", err)
			os.Exit(1)
		}

		svc := ingest.New(st, newLogger(cfg.LogLevel), cfg.MaxBundleBytes)
		result, err := svc.Ingest(assetTag, raw, actor(cmd), notes)
		if err != nil {
			var verr *bundle.ValidationError
			var merr *ingest.IdentityMismatchError
			switch {
			case errors.As(err, &verr):
				fmt.Fprintf(os.Stderr, "Invalid bundle: %v\n", verr)
			case errors.As(err, &merr):
				fmt.Fprintf(os.Stderr, "Rejected: %v\n", merr)
			default:
				fmt.Fprintf(os.Stderr, "Ingestion failed: %v\n", err)
			}
			os.Exit(1)
		}

		if result.Duplicate {
			fmt.Printf("Bundle already ingested for %s (scan %d, hash %s) - nothing to do\n",
				assetTag, result.ScanID, result.BundleHash[:12])
			return
		}
		fmt.Printf("Ingested scan %d for %s: %d drive(s), device serial %s\n",
			result.ScanID, assetTag, result.DriveCount, orDash(result.DeviceSerial))
	},
}

func init() {
	ingestCmd.Flags().String("notes", "", "optional notes to attach to the scan")
	ingestCmd.Flags().String("by", "", "who performed the upload (defaults to $USER)")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
