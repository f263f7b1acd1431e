// Package metrics records flood-zone analysis runs as Prometheus metrics on
// a private registry and dumps them in the text exposition format.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "floodzone"

// Run outcomes used as the "status" label.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// DurationBuckets covers sub-millisecond toy grids up to multi-second maps.
var DurationBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5, 10}

// Metrics holds every collector of one process.
type Metrics struct {
	registry *prometheus.Registry

	runs         *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	zones        prometheus.Gauge
	cells        prometheus.Gauge
	floodedCells prometheus.Gauge
	largestZone  prometheus.Gauge
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Zone detection runs by grid source and outcome.",
		}, []string{"source", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Wall time of zone detection.",
			Buckets:   DurationBuckets,
		}, []string{"source"}),
		zones: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "zones",
			Help:      "Zones found by the latest analysis.",
		}),
		cells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "grid_cells",
			Help:      "Cells in the latest analysed grid.",
		}),
		floodedCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "flooded_cells",
			Help:      "Flooded cells in the latest analysed grid.",
		}),
		largestZone: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "largest_zone_cells",
			Help:      "Size of the largest zone in the latest analysis.",
		}),
	}
	m.registry.MustRegister(m.runs, m.duration, m.zones, m.cells, m.floodedCells, m.largestZone)
	return m
}

// Registry exposes the underlying registry, e.g. for promhttp or tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Summary is what a successful run reports.
type Summary struct {
	Cells        int
	FloodedCells int
	Zones        int
	LargestZone  int
	Elapsed      time.Duration
}

// ObserveRun records a successful analysis of a grid from source.
func (m *Metrics) ObserveRun(source string, s Summary) {
	m.runs.WithLabelValues(source, StatusOK).Inc()
	m.duration.WithLabelValues(source).Observe(s.Elapsed.Seconds())
	m.zones.Set(float64(s.Zones))
	m.cells.Set(float64(s.Cells))
	m.floodedCells.Set(float64(s.FloodedCells))
	m.largestZone.Set(float64(s.LargestZone))
}

// ObserveFailure records a run that did not produce a result.
func (m *Metrics) ObserveFailure(source string) {
	m.runs.WithLabelValues(source, StatusFailed).Inc()
}

// WriteText writes every gathered family in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
