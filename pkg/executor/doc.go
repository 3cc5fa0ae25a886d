// Package executor runs a record producer against many hosts at once.
//
// Parallelism is bounded by Executor.Concurrency (default 1, fully
// sequential); remaining hosts queue in input order. Every input host
// yields exactly one Result, success or failure, and Run returns only
// after all of them have resolved. A per-host timeout maps to a failure
// result for that host rather than hanging the run, and there is no
// automatic retry.
package executor
