// Command fixturegen builds paginated REST fixture datasets, verifies them
// and publishes them to Redis.
package main

import (
	"fmt"
	"os"

	"github.com/Sternrassler/rest-paging-fixtures/internal/config"
	"github.com/Sternrassler/rest-paging-fixtures/pkg/fixture"
	"github.com/Sternrassler/rest-paging-fixtures/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version = "dev"
	commit  = "unknown"
)

// app carries the settings shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	pretty     bool
	nsFlag     string

	settings *config.Config
	logger   zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "fixturegen",
		Short: "Generate paginated REST fixture datasets",
		Long: `fixturegen builds deterministic datasets of posts and pages for
testing REST pagination clients. Pages can be addressed by offset or page id
and cut into disjoint or sliding windows.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file (default: environment and .env)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&a.pretty, "pretty", false, "human-readable console logs")

	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newVerifyCmd(a))
	rootCmd.AddCommand(newPublishCmd(a))
	rootCmd.AddCommand(newUnpublishCmd(a))

	return rootCmd
}

// load resolves the configuration source and sets up logging.
func (a *app) load(cmd *cobra.Command) error {
	var err error
	if a.configPath != "" {
		a.settings, err = config.LoadFromFile(a.configPath)
	} else {
		a.settings, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		a.settings.LogLevel = a.logLevel
	}
	if flags.Changed("pretty") {
		a.settings.LogPretty = a.pretty
	}

	logCfg, err := a.settings.LoggingConfig()
	if err != nil {
		return err
	}
	logCfg.Output = cmd.ErrOrStderr()
	logging.Setup(logCfg)
	a.logger = logging.NewLogger(logging.ComponentCLI)

	return nil
}

// buildFlags registers the dataset shape flags on cmd.
func buildFlags(flags *pflag.FlagSet) {
	flags.Int("items", 0, "number of posts (default 100)")
	flags.Int("width", 0, "page width (default 10)")
	flags.String("scheme", "", "link scheme: offset or page_id")
	flags.String("windowing", "", "windowing: disjoint or sliding")
	flags.Bool("lightweight", false, "include postlets and pagelets")
}

// settingsFor returns a copy of the loaded settings with changed shape flags
// applied.
func (a *app) settingsFor(flags *pflag.FlagSet) *config.Config {
	s := *a.settings
	if flags.Changed("items") {
		s.ItemCount, _ = flags.GetInt("items")
	}
	if flags.Changed("width") {
		s.PageWidth, _ = flags.GetInt("width")
	}
	if flags.Changed("scheme") {
		s.Scheme, _ = flags.GetString("scheme")
	}
	if flags.Changed("windowing") {
		s.Windowing, _ = flags.GetString("windowing")
	}
	if flags.Changed("lightweight") {
		s.Lightweight, _ = flags.GetBool("lightweight")
	}
	return &s
}

// fixtureConfig converts the effective settings into a build configuration.
func (a *app) fixtureConfig(flags *pflag.FlagSet) (fixture.Config, error) {
	return a.settingsFor(flags).FixtureConfig()
}
