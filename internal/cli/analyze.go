package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/floodzone/export"
	"github.com/katalvlaran/floodzone/internal/app"
	"github.com/katalvlaran/floodzone/internal/config"
	"github.com/katalvlaran/floodzone/internal/logging"
	"github.com/katalvlaran/floodzone/internal/metrics"
)

// stdinInput selects standard input for --input.
const stdinInput = "-"

type analyzeOptions struct {
	input            string
	random           bool
	rows             int
	cols             int
	seed             int64
	floodProbability float64
	outDir           string
	noExport         bool
	quiet            bool
	metricsOut       string
}

func newAnalyzeCommand() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Detect flood zones in a manual or random grid",
		Long: "Reads a grid from --input (a file, or - for stdin) or generates a random one,\n" +
			"prints the flood, elevation and zone maps with per-zone statistics, and\n" +
			"exports zone_map.txt and elevation_map.txt.\n\n" +
			"Input format: \"rows cols\", then rows*cols flood flags (0/1), then\n" +
			"rows*cols integer elevations, all whitespace separated.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "grid file in the manual-input format, - for stdin")
	f.BoolVar(&opts.random, "random", false, "generate a random grid (default when --input is absent)")
	f.IntVar(&opts.rows, "rows", 0, "random grid rows (overrides grid.rows)")
	f.IntVar(&opts.cols, "cols", 0, "random grid columns (overrides grid.cols)")
	f.Int64Var(&opts.seed, "seed", 0, "random seed; 0 derives one from the clock (overrides grid.seed)")
	f.Float64Var(&opts.floodProbability, "flood-probability", 0, "chance a random cell is flooded (overrides grid.flood_probability)")
	f.StringVar(&opts.outDir, "out-dir", "", "export into this directory (selects the dir backend)")
	f.BoolVar(&opts.noExport, "no-export", false, "skip writing the zone and elevation grids")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the report")
	f.StringVar(&opts.metricsOut, "metrics-out", "", "write Prometheus text metrics to this file after the run")
	cmd.MarkFlagsMutuallyExclusive("input", "random")

	return cmd
}

// applyFlags copies explicitly set flags over cfg and revalidates it.
func applyFlags(cmd *cobra.Command, opts *analyzeOptions, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("rows") {
		cfg.Grid.Rows = opts.rows
	}
	if f.Changed("cols") {
		cfg.Grid.Cols = opts.cols
	}
	if f.Changed("seed") {
		cfg.Grid.Seed = opts.seed
	}
	if f.Changed("flood-probability") {
		cfg.Grid.FloodProbability = opts.floodProbability
	}
	if f.Changed("out-dir") {
		cfg.Export.Backend = config.BackendDir
		cfg.Export.Dir = opts.outDir
	}
	if opts.noExport {
		cfg.Export.Enabled = false
	}
	if f.Changed("metrics-out") {
		cfg.Metrics.Output = opts.metricsOut
	}
	return cfg.Validate()
}

func runAnalyze(cmd *cobra.Command, opts *analyzeOptions) error {
	cc, err := FromCommand(cmd)
	if err != nil {
		return err
	}
	cfg, log := cc.Config, cc.Logger
	defer func() { _ = log.Sync() }()

	if err := applyFlags(cmd, opts, cfg); err != nil {
		return err
	}

	src, closeSrc, err := newSource(cmd, opts, cfg, log)
	if err != nil {
		return err
	}
	defer closeSrc()

	m := metrics.New()
	appOpts := []app.Option{app.WithMaxCells(cfg.EffectiveMaxCells())}
	if !opts.quiet {
		appOpts = append(appOpts, app.WithOutput(cmd.OutOrStdout()))
	}
	if cfg.Export.Enabled {
		sinks, err := newSinkFactory(cfg.Export, log)
		if err != nil {
			return err
		}
		appOpts = append(appOpts, app.WithExport(sinks, cfg.Export.ZoneMapName, cfg.Export.ElevationName))
	}

	_, runErr := app.New(log, m, appOpts...).Run(cmd.Context(), src)
	if cfg.Metrics.Output != "" {
		if err := writeMetrics(cfg.Metrics.Output, m); err != nil {
			if runErr != nil {
				return runErr
			}
			return err
		}
		log.Debug("metrics written", logging.String("path", cfg.Metrics.Output))
	}
	return runErr
}

// newSource picks the grid source; the returned func releases it.
func newSource(cmd *cobra.Command, opts *analyzeOptions, cfg *config.Config, log logging.Logger) (app.Source, func(), error) {
	switch opts.input {
	case "":
	case stdinInput:
		return app.ReaderSource{Label: "stdin", Reader: cmd.InOrStdin()}, func() {}, nil
	default:
		f, err := os.Open(opts.input)
		if err != nil {
			return nil, nil, fmt.Errorf("cli: open input: %w", err)
		}
		return app.ReaderSource{Label: "file", Reader: f}, func() { _ = f.Close() }, nil
	}

	seed := cfg.Grid.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("generating random grid",
		logging.Int("rows", cfg.Grid.Rows),
		logging.Int("cols", cfg.Grid.Cols),
		logging.Int64("seed", seed),
		logging.Float64("flood_probability", cfg.Grid.FloodProbability),
	)
	return app.RandomSource{
		Rows:             cfg.Grid.Rows,
		Cols:             cfg.Grid.Cols,
		Seed:             seed,
		FloodProbability: cfg.Grid.FloodProbability,
		MinElevation:     cfg.Grid.MinElevation,
		MaxElevation:     cfg.Grid.MaxElevation,
	}, func() {}, nil
}

// newSinkFactory maps the configured backend to a per-run sink. Object
// exports nest each run's blobs under its run id.
func newSinkFactory(cfg config.ExportConfig, log logging.Logger) (app.SinkFactory, error) {
	switch cfg.Backend {
	case config.BackendObject:
		base, err := export.NewObjectSink(cfg.Object)
		if err != nil {
			return nil, err
		}
		log.Debug("object export", logging.String("endpoint", cfg.Object.Endpoint), logging.String("bucket", cfg.Object.Bucket))
		return func(runID string) (export.Sink, error) {
			return base.WithPrefix(runID), nil
		}, nil
	default:
		sink := export.NewDirSink(cfg.Dir)
		log.Debug("directory export", logging.String("dir", cfg.Dir))
		return func(string) (export.Sink, error) { return sink, nil }, nil
	}
}

func writeMetrics(path string, m *metrics.Metrics) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cli: metrics output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("cli: metrics output: %w", cerr)
		}
	}()
	return m.WriteText(f)
}
