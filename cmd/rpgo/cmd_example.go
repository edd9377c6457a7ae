package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/retirement-planner/internal/config"
)

func (a *app) exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [file]",
		Short: "Write an example profile (YAML or JSON by extension) or print it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			profile := parser.CreateExampleProfile()
			if len(args) == 0 {
				data, err := yaml.Marshal(profile)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := parser.SaveProfile(profile, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example profile written to %s\n", args[0])
			return nil
		},
	}
}
