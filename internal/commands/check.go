package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/seedgen/internal/accounts"
	"github.com/cleared-dev/seedgen/internal/config"
	"github.com/cleared-dev/seedgen/internal/organizations"
)

func newCheckCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load the reference files and report what generate would emit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath, cmd.Flags())
			if err != nil {
				return err
			}
			return runCheck(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().String("expenses", "", "expense reference JSON (overrides config)")
	cmd.Flags().String("revenues", "", "revenue reference JSON (overrides config)")

	return cmd
}

func runCheck(out io.Writer, cfg *config.Config) error {
	expenses, revenues, err := loadReferences(cfg)
	if err != nil {
		color.New(color.FgRed).Fprintf(out, "✗ %v\n", err)
		return err
	}

	orgs := organizations.Councils()
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)

	bold.Fprintln(out, "Reference data")
	printReference(out, "expenses", cfg.References.Expenses, expenses)
	printReference(out, "revenues", cfg.References.Revenues, revenues)

	bold.Fprintln(out, "Seed script")
	fmt.Fprintf(out, "  organizations: %d\n", len(orgs))
	fmt.Fprintf(out, "  expense rows:  %d\n", len(orgs)*len(expenses.Analytic()))
	fmt.Fprintf(out, "  revenue rows:  %d\n", len(orgs)*len(revenues.Analytic()))

	if len(expenses.Analytic()) == 0 || len(revenues.Analytic()) == 0 {
		color.New(color.FgYellow).Fprintln(out, "⚠ a reference file has no analytic accounts; its INSERT statements will be skipped")
		return nil
	}
	green.Fprintln(out, "✓ reference data OK")
	return nil
}

func printReference(out io.Writer, label, path string, svc *accounts.Service) {
	fmt.Fprintf(out, "  %s: %s (%d accounts, %d analytic)\n", label, path, len(svc.All()), len(svc.Analytic()))
}
