package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"pantry-pal/core/config"
	"pantry-pal/core/logger"
	"pantry-pal/feature/pantry"
	"pantry-pal/feature/pantry/lookup"

	"github.com/spf13/cobra"
)

var resetYes bool

// resetCmd wipes the pantry inventory.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the pantry to an empty inventory",
	Long: `Reset the pantry inventory to empty.

This deletes every record from the configured backend. The operation is
destructive and asks for confirmation unless --yes is passed.`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Auto-confirm the reset (non-interactive)")
	RootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if !confirmReset() {
		l.Warn("Reset cancelled by user. No changes were made.")
		return nil
	}

	store, err := newPantryStore(ctx, cfg, l)
	if err != nil {
		return err
	}
	svc := pantry.NewService(store, lookup.NewClient(cfg.Lookup, l), l)

	if err := svc.Reset(ctx); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	l.Info("Pantry inventory reset")
	return nil
}

// confirmReset prompts the user for confirmation or uses the --yes flag.
func confirmReset() bool {
	if resetYes {
		fmt.Println("✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("⚠️  Type 'yes' to wipe the pantry inventory: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
