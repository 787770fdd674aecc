package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/seedgen/internal/accounts"
	"github.com/cleared-dev/seedgen/internal/config"
)

func newInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default seedgen.yaml and sample reference files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing seedgen.yaml")

	return cmd
}

func runInit(out io.Writer, dir string, force bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if !force {
		if _, err := os.Stat(cfgPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
		}
	}

	// Write seedgen.yaml.
	cfg := config.Default()
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write sample reference files, keeping any the user already has.
	samples := []struct {
		path string
		svc  *accounts.Service
	}{
		{cfg.References.Expenses, accounts.NewService(accounts.SampleExpenses())},
		{cfg.References.Revenues, accounts.NewService(accounts.SampleRevenues())},
	}
	for _, sample := range samples {
		path := filepath.Join(dir, sample.path)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", sample.path, err)
		}
		if err := sample.svc.Save(path); err != nil {
			return fmt.Errorf("writing %s: %w", sample.path, err)
		}
	}

	color.New(color.FgGreen).Fprintf(out, "Initialized seedgen project at %s\n", dir)
	return nil
}
