package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/retirement-planner/internal/output"
)

func (a *app) historyCmd() *cobra.Command {
	var (
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List recorded runs or show one of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			if s == nil {
				return fmt.Errorf("no run history configured (--db or storage.path)")
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				run, err := s.GetRun(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("run %s: %w", args[0], err)
				}
				return output.GenerateReport(out, &run.Result, format)
			}

			runs, err := s.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded.")
				return nil
			}
			fmt.Fprintf(out, "%-36s  %-20s  %-12s  %18s  %s\n", "RUN", "CREATED", "SCENARIO", "FINAL BALANCE", "SUCCESS")
			for _, r := range runs {
				fmt.Fprintf(out, "%-36s  %-20s  %-12s  %18s  %s\n",
					r.ID,
					r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					r.SelectedScenarioID,
					output.FormatCurrency(r.ProjectedRetirementBalance.Decimal),
					output.FormatPercentage(r.SuccessProbability))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of runs to list (0 for all)")
	cmd.Flags().StringVarP(&format, "format", "f", "console-lite", "output format when showing a run")
	return cmd
}
