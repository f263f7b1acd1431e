package export

import (
	"context"
	"errors"
)

// Sentinel errors for export operations.
var (
	// ErrMalformedInput indicates text that does not follow the matrix format.
	ErrMalformedInput = errors.New("export: malformed matrix input")
	// ErrNilSink indicates an Exporter was built without a Sink.
	ErrNilSink = errors.New("export: sink is nil")
)

// Default object names, matching what the plotting script loads.
const (
	DefaultZoneMapName   = "zone_map.txt"
	DefaultElevationName = "elevation_map.txt"
)

// Sink stores a named blob.
type Sink interface {
	Put(ctx context.Context, name string, body []byte) error
}
