package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/katalvlaran/floodzone/floodgrid"
	"github.com/katalvlaran/floodzone/zones"
)

// Exporter writes the zone map and the elevation grid of one analysis to a Sink.
type Exporter struct {
	sink          Sink
	zoneMapName   string
	elevationName string
}

// NewExporter returns an Exporter using the default file names.
// Returns ErrNilSink when sink is nil.
func NewExporter(sink Sink) (*Exporter, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	return &Exporter{
		sink:          sink,
		zoneMapName:   DefaultZoneMapName,
		elevationName: DefaultElevationName,
	}, nil
}

// WithNames overrides the blob names; empty values keep the current ones.
func (e *Exporter) WithNames(zoneMap, elevation string) *Exporter {
	if zoneMap != "" {
		e.zoneMapName = zoneMap
	}
	if elevation != "" {
		e.elevationName = elevation
	}
	return e
}

// Names returns the zone map and elevation blob names.
func (e *Exporter) Names() (zoneMap, elevation string) {
	return e.zoneMapName, e.elevationName
}

// Export serialises res and g and stores them, zone map first.
func (e *Exporter) Export(ctx context.Context, g *floodgrid.Grid, res *zones.Result) error {
	var zbuf, ebuf bytes.Buffer
	if err := WriteZoneMap(&zbuf, res); err != nil {
		return fmt.Errorf("export: encode zone map: %w", err)
	}
	if err := e.sink.Put(ctx, e.zoneMapName, zbuf.Bytes()); err != nil {
		return err
	}

	if err := WriteElevation(&ebuf, g); err != nil {
		return fmt.Errorf("export: encode elevation: %w", err)
	}
	return e.sink.Put(ctx, e.elevationName, ebuf.Bytes())
}
