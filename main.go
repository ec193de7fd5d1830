// main.go - CLI entrypoint
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		baseURL    string
		timeoutSec int
		ttlSec     int
		sortBy     string
		filter     string
		themeIdx   int
		logLevel   string
		logFile    string
	)

	cmd := &cobra.Command{
		Use:   "statesdash",
		Short: "Interactive terminal dashboard for the U.S. states statistics API",
		Long: `statesdash fetches the 1970s state.x77 dataset from a remote HTTP API
and renders it as a sortable, name-filterable table. Sorting and
filtering are performed server-side; results are cached per query for
ten minutes.`,
		Version:      GetVersion(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			// Flags override the config file.
			flags := cmd.Flags()
			if flags.Changed("base-url") {
				cfg.API.BaseURL = baseURL
			}
			if flags.Changed("timeout") {
				cfg.API.TimeoutSeconds = timeoutSec
			}
			if flags.Changed("cache-ttl") {
				cfg.Cache.TTLSeconds = ttlSec
			}
			if flags.Changed("sort-by") {
				cfg.UI.SortBy = sortBy
			}
			if flags.Changed("theme") {
				cfg.UI.Theme = themeIdx
			}
			if flags.Changed("log-level") {
				cfg.Logging.Level = logLevel
			}
			if flags.Changed("log-file") {
				cfg.Logging.File = logFile
			}
			if err := cfg.validate(); err != nil {
				return err
			}

			logger, closeLog, err := initLogger(cfg.Logging.Level, cfg.Logging.File)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer closeLog()

			setTheme(cfg.UI.Theme)

			fetcher := newFetcher(cfg.API.BaseURL, cfg.timeout(), cfg.cacheTTL(), logger)

			initial := sortQuery(cfg.UI.SortBy)
			if flags.Changed("filter") {
				initial = filterQuery(filter)
			}

			logger.Info().
				Str("base_url", cfg.API.BaseURL).
				Dur("cache_ttl", cfg.cacheTTL()).
				Str("query", initial.cacheKey()).
				Msg("starting statesdash")

			app := newAppModel(fetcher, initial, logger)
			if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("running UI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	cmd.Flags().StringVar(&baseURL, "base-url", DefaultBaseURL, "states API base URL")
	cmd.Flags().IntVar(&timeoutSec, "timeout", int(DefaultTimeout/time.Second), "request timeout in seconds")
	cmd.Flags().IntVar(&ttlSec, "cache-ttl", int(DefaultCacheTTL/time.Second), "result cache TTL in seconds")
	cmd.Flags().StringVar(&sortBy, "sort-by", DefaultSortKey, "initial server-side sort column")
	cmd.Flags().StringVar(&filter, "filter", "", "start with a server-side name filter instead of a sort")
	cmd.Flags().IntVar(&themeIdx, "theme", DefaultThemeIndex, "color theme index")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "log file path (logging disabled when empty)")

	return cmd
}
