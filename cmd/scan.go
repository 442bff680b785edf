package cmd

import (
	"encoding/json"
	"fmt"

	"pantry-pal/core/config"
	"pantry-pal/core/logger"
	"pantry-pal/feature/pantry"
	"pantry-pal/feature/pantry/lookup"
	"pantry-pal/feature/pantry/models"

	"github.com/spf13/cobra"
)

var (
	// Flags for scan command
	scanQuantity float64
	scanUnits    string
	scanName     string
	scanCommit   bool
)

// scanCmd records one barcode scan against the pantry.
var scanCmd = &cobra.Command{
	Use:   "scan <code>",
	Short: "Scan a barcode against the pantry (preview by default)",
	Long: `Scan a UPC/EAN barcode against the pantry inventory.

Without --commit the scan is a preview: the resolved record is printed but
the inventory is not changed. With --commit an existing record's quantity
is incremented, or a new record is created from the product lookup.

Examples:
  # Preview what scanning a code would do
  pantry-pal scan 0012345678905

  # Commit a scan of two cans
  pantry-pal scan 012345678905 --quantity 2 --units can --commit

  # Commit with a manual name when the lookup has no match
  pantry-pal scan 012345678905 --name "Grandma's Soup" --commit`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Float64Var(&scanQuantity, "quantity", 1, "Quantity to add on commit")
	scanCmd.Flags().StringVar(&scanUnits, "units", "", "Units for a newly created record")
	scanCmd.Flags().StringVar(&scanName, "name", "", "Manual name overriding the product lookup")
	scanCmd.Flags().BoolVar(&scanCommit, "commit", false, "Persist the scan instead of previewing")

	RootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := newPantryStore(ctx, cfg, l)
	if err != nil {
		return err
	}
	svc := pantry.NewService(store, lookup.NewClient(cfg.Lookup, l), l)

	var result *models.ScanResult
	if scanCommit {
		result, err = svc.CommitScan(ctx, args[0], scanQuantity, scanUnits, scanName)
	} else {
		result, err = svc.PreviewScan(ctx, args[0], scanQuantity, scanUnits, scanName)
	}
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if !scanCommit {
		fmt.Println("Preview only. Re-run with --commit to persist.")
	}
	return nil
}
