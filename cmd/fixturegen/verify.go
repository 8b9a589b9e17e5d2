package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Sternrassler/rest-paging-fixtures/pkg/fixture"
	"github.com/Sternrassler/rest-paging-fixtures/pkg/pagination"
	"github.com/spf13/cobra"
)

func newVerifyCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Check a dataset file against a build configuration",
		Long: `verify decodes a dataset file and checks every page, link and item
against the configuration given by flags or settings. Disjoint datasets are
also walked link by link to confirm the chain reproduces the posts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			cfg, err := a.fixtureConfig(cmd.Flags())
			if err != nil {
				return err
			}
			f, err := resolveFormat(format, path)
			if err != nil {
				return err
			}

			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open dataset: %w", err)
			}
			defer file.Close()

			ds, err := fixture.Decode(file, f)
			if err != nil {
				return err
			}

			if err := fixture.Verify(ds, cfg); err != nil {
				a.logger.Error().Err(err).Str("file", path).Msg("Verification failed")
				return err
			}
			if err := walkChain(cmd.Context(), ds, cfg); err != nil {
				a.logger.Error().Err(err).Str("file", path).Msg("Link walk failed")
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d posts, %d pages, %d pagelets)\n",
				path, len(ds.Posts), len(ds.Pages), len(ds.Pagelets))
			return nil
		},
	}

	buildFlags(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: json or yaml (default from extension)")

	return cmd
}

// walkChain follows the page links from the first page and, for disjoint
// windows, compares the collected items with the posts.
func walkChain(ctx context.Context, ds *fixture.Dataset, cfg fixture.Config) error {
	src := pagination.NewDatasetSource(ds)
	if src.Len() == 0 {
		return nil
	}

	pages, err := pagination.Walk(ctx, src, src.First(), pagination.Forward)
	if err != nil {
		return err
	}
	if cfg.Windowing != fixture.WindowingDisjoint {
		return nil
	}

	var count int
	for _, page := range pages {
		count += len(page.Items)
	}
	if count != len(ds.Posts) {
		return fmt.Errorf("walk collected %d items, want %d", count, len(ds.Posts))
	}
	return nil
}
