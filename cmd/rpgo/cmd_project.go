package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/rpgo/retirement-planner/internal/output"
)

const customScenarioID = "custom"

func (a *app) projectCmd() *cobra.Command {
	var (
		returnRate    string
		inflationRate string
		format        string
	)

	cmd := &cobra.Command{
		Use:   "project [profile.yaml]",
		Short: "Project a profile under a custom return and inflation rate",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := loadProfile(args)
			if err != nil {
				return err
			}
			r, err := decimal.NewFromString(returnRate)
			if err != nil {
				return fmt.Errorf("invalid --return %q: %w", returnRate, err)
			}
			i, err := decimal.NewFromString(inflationRate)
			if err != nil {
				return fmt.Errorf("invalid --inflation %q: %w", inflationRate, err)
			}

			engine := a.newEngine()
			engine.Catalog = []domain.ScenarioParameters{{
				ID:            customScenarioID,
				Name:          "Custom",
				Label:         fmt.Sprintf("Custom (%s%% return, %s%% inflation)", r, i),
				ReturnRate:    r,
				InflationRate: i,
			}}
			result, err := engine.RunPlan(cmd.Context(), profile, customScenarioID)
			if err != nil {
				return err
			}
			return output.GenerateReport(cmd.OutOrStdout(), result, format)
		},
	}

	cmd.Flags().StringVar(&returnRate, "return", "7", "annual return in percent")
	cmd.Flags().StringVar(&inflationRate, "inflation", "3", "annual inflation in percent")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format")
	return cmd
}
