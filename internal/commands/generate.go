package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/seedgen/internal/accounts"
	"github.com/cleared-dev/seedgen/internal/config"
	"github.com/cleared-dev/seedgen/internal/logging"
	"github.com/cleared-dev/seedgen/internal/organizations"
	"github.com/cleared-dev/seedgen/internal/seed"
)

func newGenerateCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a seed SQL script for every council and analytic account",
		Long: `Reads the expense and revenue reference files, keeps the analytic
accounts, and prints one transaction that truncates the expenses and revenues
tables and inserts randomized rows for every council.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath, cmd.Flags())
			if err != nil {
				return err
			}
			log := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), cfg, log)
		},
	}

	cmd.Flags().String("expenses", "", "expense reference JSON (overrides config)")
	cmd.Flags().String("revenues", "", "revenue reference JSON (overrides config)")
	cmd.Flags().Int64("seed", 0, "random seed; 0 picks a time-based seed")
	cmd.Flags().String("timestamp", "", "SQL expression for updated_at (default NOW())")

	return cmd
}

func runGenerate(ctx context.Context, out io.Writer, cfg *config.Config, log *logrus.Logger) error {
	expenses, revenues, err := loadReferences(cfg)
	if err != nil {
		// A SQL comment keeps redirected output valid.
		fmt.Fprintf(out, "-- Error loading files: %v\n", err)
		return err
	}

	log.WithFields(logrus.Fields{
		"expenses": len(expenses.Analytic()),
		"revenues": len(revenues.Analytic()),
	}).Info("loaded analytic accounts")

	gen := seed.NewGenerator(seed.NewSource(cfg.Output.Seed), rangesFromConfig(cfg.Ranges))
	emitter := seed.NewEmitter(gen, cfg.Output.Timestamp, log)

	stats, err := emitter.Emit(ctx, out, organizations.Councils(), expenses.Analytic(), revenues.Analytic())
	if err != nil {
		return fmt.Errorf("writing seed script: %w", err)
	}

	log.WithFields(logrus.Fields{
		"organizations": stats.Organizations,
		"expense_rows":  stats.ExpenseRows,
		"revenue_rows":  stats.RevenueRows,
	}).Info("seed script written")
	return nil
}

// loadReferences loads both reference files before anything is written.
func loadReferences(cfg *config.Config) (expenses, revenues *accounts.Service, err error) {
	expenses, err = accounts.Load(cfg.References.Expenses)
	if err != nil {
		return nil, nil, err
	}
	revenues, err = accounts.Load(cfg.References.Revenues)
	if err != nil {
		return nil, nil, err
	}
	return expenses, revenues, nil
}

func rangesFromConfig(r config.RangesConfig) seed.Ranges {
	return seed.Ranges{
		TotalMin:       r.ExpenseTotal.Min,
		TotalMax:       r.ExpenseTotal.Max,
		FinalisticaMin: r.Finalistica.Min,
		FinalisticaMax: r.Finalistica.Max,
		RevenueMin:     r.RevenueValue.Min,
		RevenueMax:     r.RevenueValue.Max,
	}
}
