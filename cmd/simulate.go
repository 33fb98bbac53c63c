package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"level-list/core/config"
	"level-list/core/logger"
	"level-list/core/scenario"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for simulate command
	simulateJSON  bool
	simulateMoves bool
)

// simulateCmd replays a scenario file against the list engine.
var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario.json>",
	Short: "Replay a refresh scenario and print every edit script",
	Long: `Replays the steps of a scenario file against a fresh list engine configured from
the list settings. Each step reports the edit script it produced and the resulting list.

Examples:
  # Log each step
  simulate testdata/feed.json

  # Print results as JSON, with moves reported as remove + insert
  simulate testdata/feed.json --json --moves=false`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().BoolVar(&simulateJSON, "json", false, "Print results as JSON instead of logging them")
	simulateCmd.Flags().BoolVar(&simulateMoves, "moves", true, "Report moves instead of remove plus insert")

	RootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	list := cfg.List
	if cmd.Flags().Changed("moves") {
		list.DetectMoves = simulateMoves
	}

	stepLogger := l
	if simulateJSON {
		stepLogger = zap.NewNop()
	}
	results, err := scenario.Run(sc, list, stepLogger)
	if err != nil {
		return fmt.Errorf("scenario failed after %d steps: %w", len(results), err)
	}

	if simulateJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	l.Info("Scenario complete", zap.Int("steps", len(results)))
	return nil
}
