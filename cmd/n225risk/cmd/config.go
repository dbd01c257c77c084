package cmd

import (
	"fmt"

	"github.com/rustyeddy/n225risk/config"
	"github.com/rustyeddy/n225risk/risk"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Generate or validate plan files",
		Long: `Manage plan files for the calculator.

Subcommands:
  init     - Generate a default plan file
  validate - Validate an existing plan file

Examples:
  n225risk config init -o plan.yaml
  n225risk config validate -f plan.yaml`,
	}

	var output string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default plan file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Default().SaveToFile(output); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Created default plan: %s\n", output)
			fmt.Fprintln(out, "\nEdit the file and run with:")
			fmt.Fprintf(out, "  n225risk calc --plan %s\n", output)
			return nil
		},
	}
	initCmd.Flags().StringVarP(&output, "output", "o", "plan.yaml", "output plan file path")

	var path string
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a plan file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromFile(path)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Plan valid: %s\n", path)
			if cfg.Plan.IsEmpty() {
				fmt.Fprintln(out, "  (display settings only, no plan)")
				return nil
			}
			r, err := risk.Validate(cfg.Plan.RawInput())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  Direction: %s (%s)\n", r.Direction(), r.Direction().Label())
			fmt.Fprintf(out, "  Range: %s → %s step %s, quantity %s\n", r.StartPrice, r.EndPrice, r.Step, r.Quantity)
			return nil
		},
	}
	validateCmd.Flags().StringVarP(&path, "file", "f", "", "path to plan file (required)")
	_ = validateCmd.MarkFlagRequired("file")

	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(validateCmd)
	return configCmd
}
