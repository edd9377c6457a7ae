package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/retirement-planner/internal/output"
)

func (a *app) scenariosCmd() *cobra.Command {
	var (
		format     string
		scenarioID string
		outputDir  string
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "scenarios [profile.yaml]",
		Short: "Project a profile under every market scenario",
		Long: `Runs the conservative, moderate and aggressive scenarios for a profile
file (YAML or JSON). Without a file the default profile is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := loadProfile(args)
			if err != nil {
				return err
			}

			result, err := a.newEngine().RunPlan(cmd.Context(), profile, scenarioID)
			if err != nil {
				return err
			}

			if save {
				s, err := a.openStore()
				if err != nil {
					return err
				}
				if s == nil {
					return fmt.Errorf("--save needs a storage path (--db or storage.path)")
				}
				defer s.Close()
				id, err := s.SaveRun(cmd.Context(), result)
				if err != nil {
					return fmt.Errorf("save run: %w", err)
				}
				a.logger.Info("run saved", zap.String("run_id", id))
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved run %s\n", id)
			}

			if outputDir != "" {
				files, err := output.ExportReport(result, format, outputDir)
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", f)
				}
				return nil
			}
			return output.GenerateReport(cmd.OutOrStdout(), result, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, console-lite, csv, detailed-csv, json, yaml; all with --output-dir)")
	cmd.Flags().StringVarP(&scenarioID, "scenario", "s", "", "scenario used for the dashboard metrics (default moderate)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "write a timestamped report file here instead of stdout")
	cmd.Flags().BoolVar(&save, "save", false, "record the run in the history database")
	return cmd
}
