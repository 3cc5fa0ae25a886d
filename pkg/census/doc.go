// Package census coordinates a full collection run: resolve the host
// list (explicit or via a fallback lister), query every host through the
// bounded-concurrency executor, normalize the aggregated records into a
// table, and hand the results to the configured exporters.
//
// The run result carries one entry per queried host so failed hosts stay
// visible; the raw records and normalized table are returned only when
// the corresponding emit flags are set.
package census
