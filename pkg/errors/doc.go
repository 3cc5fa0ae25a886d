// Package errors provides structured error types with classification codes
// for the census error taxonomy.
//
// Per-host failures (HOST_UNREACHABLE, PRODUCER_FAILED, TIMEOUT) are
// contained in the host result they belong to and never abort the run.
// RECORD_PROCESSING covers a single skipped record during normalization,
// EXPORT_WRITE a single failed export format. INVALID_CONFIGURATION is the
// only class that fails a run, and it is raised before any host is queried.
package errors
