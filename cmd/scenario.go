package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kilianp07/ersim/pkg/export"
	"github.com/kilianp07/ersim/qa/scenarios"
)

var (
	scenarioVerbose bool
	scenarioFormat  string
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario <file.yaml>...",
	Short: "Replay scripted scenarios and check their expectations",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScenarios,
}

func init() {
	scenarioCmd.Flags().BoolVarP(&scenarioVerbose, "verbose", "v", false, "print the simulation transcript")
	scenarioCmd.Flags().StringVar(&scenarioFormat, "format", "", "also print every round as csv or json")
	rootCmd.AddCommand(scenarioCmd)
}

func runScenarios(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	switch scenarioFormat {
	case "", "csv", "json":
	default:
		return fmt.Errorf("unknown format %q", scenarioFormat)
	}
	transcript := io.Discard
	if scenarioVerbose {
		transcript = out
	}
	failed := 0
	var rows []export.RoundRow
	for _, path := range args {
		sc, err := scenarios.Load(path)
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		res, err := scenarios.Run(sc, transcript)
		switch {
		case errors.Is(err, scenarios.ErrExpectation):
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", sc.Name, err)
		case err != nil:
			return fmt.Errorf("run %s: %w", sc.Name, err)
		default:
			fmt.Fprintf(out, "ok   %s (score %d)\n", sc.Name, res.FinalScore)
		}
		rows = append(rows, export.Rows(sc.Name, res)...)
	}
	if err := writeRows(out, rows); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(args))
	}
	return nil
}

func writeRows(w io.Writer, rows []export.RoundRow) error {
	switch scenarioFormat {
	case "csv":
		return export.WriteCSV(w, rows)
	case "json":
		return export.WriteJSON(w, rows)
	}
	return nil
}
