package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kaitosekiya/attacklab-stats/internal/config"
	"github.com/kaitosekiya/attacklab-stats/internal/render"
	"github.com/kaitosekiya/attacklab-stats/internal/scoreboard"
	"github.com/kaitosekiya/attacklab-stats/internal/scraper"
	"github.com/kaitosekiya/attacklab-stats/internal/stats"
)

// Exit codes, one per error class so wrapping scripts can tell a bad URL
// from a bad page.
const (
	ExitSuccess    = 0
	ExitError      = 1
	ExitConfig     = 2
	ExitFetch      = 3
	ExitValidation = 4
	ExitParse      = 5
	ExitStats      = 6
)

// Output artifact file names, fixed by convention.
const (
	ReportFile    = "project_stats.txt"
	HistogramFile = "scores_histogram.png"
	PhasesFile    = "phases_barplot.png"
)

var (
	flagURL     string
	flagConfig  string
	flagOutDir  string
	flagDPI     float64
	flagVerbose bool
)

var logger *zap.Logger

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attacklab-stats",
		Short: "Collect and chart Attack Lab scoreboard statistics",
		Long: `A CLI tool that fetches an Attack Lab scoreboard page, computes
descriptive statistics over the phase scores, and writes a text report
plus a score histogram and a furthest-phase bar chart as PNG images.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zcfg := zap.NewProductionConfig()
			if flagVerbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		RunE: runStats,
	}

	cmd.Flags().StringVar(&flagURL, "url", "", "Scoreboard URL (required unless set in the config file)")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", "", "Directory for the output artifacts (default from config)")
	cmd.Flags().Float64Var(&flagDPI, "dpi", 0, "Output image DPI (default from config)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runStats is the main command logic: the six pipeline stages in order.
func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Info("fetching scoreboard", zap.String("url", cfg.ScoreboardURL))
	html, err := scraper.New(cfg.ScoreboardURL).Fetch()
	if err != nil {
		return err
	}

	if err := scoreboard.Validate(html, cfg.TitleMarker); err != nil {
		return err
	}

	updatedAt, hasUpdated := scoreboard.UpdatedAt(html)
	if !hasUpdated {
		logger.Warn("last-updated marker not found, report will carry a placeholder")
	}

	raw, err := scoreboard.Extract(html, cfg.PhaseNames())
	if err != nil {
		return err
	}
	logger.Debug("extracted score table", zap.Int("rows", len(raw)))

	rows, err := scoreboard.Normalize(raw, cfg.Phases)
	if err != nil {
		return err
	}

	overall, err := stats.Compute(rows, cfg.PhaseNames())
	if err != nil {
		return err
	}
	report := overall.Report(updatedAt, hasUpdated)

	scores := make([]float64, len(rows))
	for i, r := range rows {
		scores[i] = r.Score
	}
	histogram, err := render.Histogram(scores, cfg.Histogram, cfg.Output.DPI)
	if err != nil {
		return err
	}

	distribution := stats.CompletionDistribution(rows, len(cfg.Phases))
	barplot, err := render.PhaseCompletion(cfg.PhaseNames(), distribution, cfg.Output.DPI)
	if err != nil {
		return err
	}

	// All three artifacts exist in memory; only now touch the filesystem.
	artifacts := []struct {
		name string
		data []byte
	}{
		{ReportFile, []byte(report)},
		{HistogramFile, histogram},
		{PhasesFile, barplot},
	}
	for _, a := range artifacts {
		path := filepath.Join(cfg.Output.Dir, a.name)
		if err := os.WriteFile(path, a.data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Info("wrote artifact", zap.String("path", path))
	}

	return nil
}

// loadConfig merges defaults, the optional config file, and flag overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if flagURL != "" {
		cfg.ScoreboardURL = flagURL
	}
	if flagOutDir != "" {
		cfg.Output.Dir = flagOutDir
	}
	if flagDPI > 0 {
		cfg.Output.DPI = flagDPI
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// exitCode maps an error to its exit code via the pipeline error taxonomy.
func exitCode(err error) int {
	var configErr *config.Error
	if errors.As(err, &configErr) {
		return ExitConfig
	}
	var fetchErr *scraper.FetchError
	if errors.As(err, &fetchErr) {
		return ExitFetch
	}
	var validationErr *scoreboard.ValidationError
	if errors.As(err, &validationErr) {
		return ExitValidation
	}
	var parseErr *scoreboard.ParseError
	if errors.As(err, &parseErr) {
		return ExitParse
	}
	var statsErr *stats.StatsError
	if errors.As(err, &statsErr) {
		return ExitStats
	}
	return ExitError
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
