package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sternrassler/rest-paging-fixtures/internal/config"
	"github.com/Sternrassler/rest-paging-fixtures/pkg/fixture"
	"github.com/Sternrassler/rest-paging-fixtures/pkg/metrics"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		format      string
		out         string
		dumpMetrics bool
		saveConfig  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a dataset and write it as JSON or YAML",
		Example: `  fixturegen generate --scheme offset --windowing sliding
  fixturegen generate --lightweight --format yaml --out db.yaml
  fixturegen generate --items 40 --save-config fixture.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := a.settingsFor(cmd.Flags())
			cfg, err := settings.FixtureConfig()
			if err != nil {
				return err
			}
			f, err := resolveFormat(format, out)
			if err != nil {
				return err
			}

			ds, err := fixture.NewBuilder(a.logger).Build(cfg)
			if err != nil {
				return err
			}

			if err := writeDataset(cmd.OutOrStdout(), out, ds, f); err != nil {
				return err
			}
			a.logger.Info().
				Object("config", cfg).
				Str("out", out).
				Str("format", string(f)).
				Msg("Dataset written")

			if saveConfig != "" {
				if err := config.SaveToFile(settings, saveConfig); err != nil {
					return err
				}
				a.logger.Info().Str("path", saveConfig).Msg("Settings saved")
			}

			if dumpMetrics {
				return metrics.WriteText(cmd.ErrOrStderr(), metrics.Gatherer(), metrics.Prefix)
			}
			return nil
		},
	}

	buildFlags(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: json or yaml (default from --out extension, else json)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&dumpMetrics, "metrics", false, "write fixture metrics to stderr when done")
	cmd.Flags().StringVar(&saveConfig, "save-config", "", "write the effective settings as YAML for reuse with --config")

	return cmd
}

// resolveFormat prefers an explicit format and falls back to the file extension.
func resolveFormat(format, path string) (fixture.Format, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			return fixture.FormatYAML, nil
		}
	}
	return fixture.ParseFormat(format)
}

func writeDataset(stdout io.Writer, path string, ds *fixture.Dataset, format fixture.Format) error {
	if path == "" {
		return fixture.Encode(stdout, ds, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := fixture.Encode(f, ds, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
