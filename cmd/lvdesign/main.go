// Command lvdesign analyzes vehicle designs stored as LDraw models.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvdesign/analysis"
	"github.com/katalvlaran/lvdesign/catalog"
	"github.com/katalvlaran/lvdesign/config"
	"github.com/katalvlaran/lvdesign/design"
	"github.com/katalvlaran/lvdesign/logging"
	"github.com/katalvlaran/lvdesign/metrics"
)

var errNoReference = errors.New("catalog and palette files are required (--catalog, --palette)")

var (
	cfgFile string
	cfg     config.Config
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "lvdesign",
	Short:         "Analyze vehicle designs built from interlocking parts",
	Long:          `Score LDraw vehicle models against structural requirements, a complexity-driven cost model and a market value model.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := config.New()
		if cfgFile != "" {
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
		}
		for key, flag := range map[string]string{
			"catalog":      "catalog",
			"palette":      "palette",
			"tolerance":    "tolerance",
			"workers":      "workers",
			"log.level":    "log-level",
			"metrics_file": "metrics-file",
		} {
			if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
				return err
			}
		}

		c, err := config.Decode(v)
		if err != nil {
			return err
		}
		cfg = c

		l, err := logging.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		logger = l

		return nil
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "config file (YAML)")
	f.String("catalog", "", "part catalog file (YAML or JSON)")
	f.String("palette", "", "valid part palette file (XML)")
	f.Float64("tolerance", design.DefaultTolerance, "positioning tolerance in LDU")
	f.Int("workers", 4, "concurrent analyses")
	f.String("log-level", "info", "log level (debug, info, warn, error)")
	f.String("metrics-file", "", "write Prometheus text metrics to this file after the run")
}

// loadReference loads the catalog and palette named by the configuration.
func loadReference() (*catalog.Catalog, catalog.ValidTypeSet, error) {
	if cfg.Catalog == "" || cfg.Palette == "" {
		return nil, catalog.ValidTypeSet{}, errNoReference
	}
	cat, err := catalog.LoadCatalogFile(cfg.Catalog)
	if err != nil {
		return nil, catalog.ValidTypeSet{}, err
	}
	valid, err := catalog.LoadPaletteFile(cfg.Palette)
	if err != nil {
		return nil, catalog.ValidTypeSet{}, err
	}
	logger.Debug("reference data loaded",
		zap.Int("entries", cat.Len()),
		zap.Int("valid_types", valid.Len()),
	)

	return cat, valid, nil
}

// newAnalyzer builds an analyzer from the configuration. rec may be nil.
func newAnalyzer(rec *metrics.Recorder) (*analysis.Analyzer, error) {
	cat, valid, err := loadReference()
	if err != nil {
		return nil, err
	}
	opts := []analysis.Option{
		analysis.WithLogger(logger),
		analysis.WithRequirements(cfg.RequirementOptions()...),
		analysis.WithComplexity(cfg.ComplexityOptions()...),
	}
	if rec != nil {
		opts = append(opts, analysis.WithRecorder(rec))
	}

	return analysis.New(cat, valid, opts...)
}

// newRecorder returns a recorder on a fresh registry when a metrics file is
// configured, and nil registry and recorder otherwise.
func newRecorder() (*prometheus.Registry, *metrics.Recorder) {
	if cfg.MetricsFile == "" {
		return nil, nil
	}
	reg := prometheus.NewRegistry()

	return reg, metrics.New(reg)
}

// writeMetrics dumps reg to the configured metrics file.
func writeMetrics(reg *prometheus.Registry) error {
	if reg == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	logger.Debug("metrics written", zap.String("path", cfg.MetricsFile))

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
