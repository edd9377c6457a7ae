package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/retirement-planner/internal/domain"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <profile.yaml>",
		Short: "Check a profile file without running projections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := loadProfile(args)
			var verrs domain.ValidationErrors
			if errors.As(err, &verrs) {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s is invalid:\n", args[0])
				for _, field := range verrs.Fields() {
					fmt.Fprintf(out, "  %s: %s\n", field, verrs[field])
				}
				return fmt.Errorf("%d validation error(s)", len(verrs))
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
			return nil
		},
	}
}
