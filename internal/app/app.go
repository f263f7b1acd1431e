// Package app runs one flood-zone analysis end to end: load a grid, detect
// zones, print the report, export the grids, and record logs and metrics.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/floodzone/export"
	"github.com/katalvlaran/floodzone/floodgrid"
	"github.com/katalvlaran/floodzone/internal/logging"
	"github.com/katalvlaran/floodzone/internal/metrics"
	"github.com/katalvlaran/floodzone/render"
	"github.com/katalvlaran/floodzone/zones"
)

// ErrGridTooLarge indicates a grid above the configured cell limit.
var ErrGridTooLarge = errors.New("app: grid exceeds cell limit")

// SinkFactory returns the export sink for a run.
type SinkFactory func(runID string) (export.Sink, error)

// Report describes a finished run.
type Report struct {
	RunID    string
	Source   string
	Grid     *floodgrid.Grid
	Result   *zones.Result
	Elapsed  time.Duration
	Exported bool
}

// Analyzer executes runs. The zero value is not usable; call New.
type Analyzer struct {
	log      logging.Logger
	metrics  *metrics.Metrics
	out      io.Writer
	sinks    SinkFactory
	zoneName string
	elevName string
	maxCells int
	newRunID func() string
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithOutput prints the text report to w; nil disables printing.
func WithOutput(w io.Writer) Option {
	return func(a *Analyzer) { a.out = w }
}

// WithExport enables export through sinks using the given blob names
// (empty names fall back to the defaults).
func WithExport(sinks SinkFactory, zoneMapName, elevationName string) Option {
	return func(a *Analyzer) {
		a.sinks, a.zoneName, a.elevName = sinks, zoneMapName, elevationName
	}
}

// WithMaxCells rejects grids larger than n cells before they are loaded;
// n <= 0 selects floodgrid.DefaultMaxCells.
func WithMaxCells(n int) Option {
	return func(a *Analyzer) {
		if n <= 0 {
			n = floodgrid.DefaultMaxCells
		}
		a.maxCells = n
	}
}

// WithRunIDs overrides run id generation.
func WithRunIDs(fn func() string) Option {
	return func(a *Analyzer) { a.newRunID = fn }
}

// New returns an Analyzer. A nil logger or metrics disables that concern.
func New(log logging.Logger, m *metrics.Metrics, opts ...Option) *Analyzer {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if m == nil {
		m = metrics.New()
	}
	a := &Analyzer{
		log:      log,
		metrics:  m,
		maxCells: floodgrid.DefaultMaxCells,
		newRunID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Metrics returns the metrics the Analyzer records into.
func (a *Analyzer) Metrics() *metrics.Metrics { return a.metrics }

// Run performs one analysis of the grid supplied by src.
func (a *Analyzer) Run(ctx context.Context, src Source) (*Report, error) {
	rep := &Report{RunID: a.newRunID(), Source: src.Name()}
	log := a.log.With(logging.String("run_id", rep.RunID), logging.String("source", rep.Source))

	if err := a.run(ctx, src, rep, log); err != nil {
		a.metrics.ObserveFailure(rep.Source)
		log.Error("analysis failed", logging.Err(err))
		return nil, err
	}
	return rep, nil
}

func (a *Analyzer) run(ctx context.Context, src Source, rep *Report, log logging.Logger) error {
	g, err := src.Load(ctx, a.maxCells)
	if errors.Is(err, floodgrid.ErrTooLarge) {
		return fmt.Errorf("app: load %s grid: %w: %w", rep.Source, ErrGridTooLarge, err)
	}
	if err != nil {
		return fmt.Errorf("app: load %s grid: %w", rep.Source, err)
	}
	// A Source may ignore maxCells; recheck what it returned.
	if err := floodgrid.CheckSize(g.Rows(), g.Cols(), a.maxCells); err != nil {
		return fmt.Errorf("app: %s grid: %w: %w", rep.Source, ErrGridTooLarge, err)
	}
	rep.Grid = g
	log.Debug("grid loaded", logging.Int("rows", g.Rows()), logging.Int("cols", g.Cols()))

	start := time.Now()
	res, err := zones.Detect(g)
	if err != nil {
		return fmt.Errorf("app: detect: %w", err)
	}
	rep.Result = res
	rep.Elapsed = time.Since(start)

	largest := 0
	if id, ok := res.Largest(); ok {
		st, _ := res.Stats(id)
		largest = st.Size
	}
	flooded := g.FloodedCount()
	a.metrics.ObserveRun(rep.Source, metrics.Summary{
		Cells:        g.Rows() * g.Cols(),
		FloodedCells: flooded,
		Zones:        res.ZoneCount(),
		LargestZone:  largest,
		Elapsed:      rep.Elapsed,
	})
	log.Info("zones detected",
		logging.Int("rows", g.Rows()),
		logging.Int("cols", g.Cols()),
		logging.Int("flooded", flooded),
		logging.Int("zones", res.ZoneCount()),
		logging.Int("largest", largest),
		logging.Duration("elapsed", rep.Elapsed),
	)

	if a.out != nil {
		if err := render.Report(a.out, g, res); err != nil {
			return fmt.Errorf("app: render: %w", err)
		}
	}

	if a.sinks != nil {
		if err := a.export(ctx, rep); err != nil {
			return err
		}
		rep.Exported = true
		log.Info("grids exported")
	}
	return nil
}

// export writes both grids of rep through the run's sink.
func (a *Analyzer) export(ctx context.Context, rep *Report) error {
	sink, err := a.sinks(rep.RunID)
	if err != nil {
		return fmt.Errorf("app: export sink: %w", err)
	}
	exp, err := export.NewExporter(sink)
	if err != nil {
		return fmt.Errorf("app: exporter: %w", err)
	}
	exp.WithNames(a.zoneName, a.elevName)
	if err := exp.Export(ctx, rep.Grid, rep.Result); err != nil {
		return fmt.Errorf("app: export: %w", err)
	}
	return nil
}
