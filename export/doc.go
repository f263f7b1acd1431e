// Package export writes zone and elevation grids in the flat text format
// read by the plotting tools, and ships them to a Sink.
//
// Format:
//
//	<rows> <cols>
//	v v v ... v     (cols values, each followed by one space)
//	...             (rows lines)
//
// Zone grids carry the zone id or zones.NoZone (-1); elevation grids carry
// the raw elevation.
//
// Sinks:
//
//   - DirSink writes files into a local directory.
//   - ObjectSink uploads objects to an S3-compatible bucket via minio-go.
//
// Errors:
//
//   - ErrMalformedInput: ReadMatrix found a bad header or a short body.
//   - ErrNilSink:        NewExporter was given no sink.
package export
