package executor

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	cerrors "github.com/NVIDIA/census/pkg/errors"
	"github.com/NVIDIA/census/pkg/producer"
	"github.com/NVIDIA/census/pkg/record"
)

// Result is the outcome of querying one host: its records on success, or
// the captured error on failure. A host is attempted exactly once per run.
type Result struct {
	Host    string
	Records []*record.Record
	Err     error
}

// Failed reports whether the host query failed.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Executor runs a record producer against a set of hosts with bounded
// parallelism. Failures are isolated per host: one unreachable or broken
// host never aborts or blocks the rest of the run.
type Executor struct {
	// Concurrency caps the number of producer calls in flight.
	// Values below 1 are treated as 1; the default is fully sequential,
	// which keeps the network footprint quiet in shared environments.
	Concurrency int

	// Timeout bounds each individual host query. Zero means no per-host
	// limit beyond the caller's context.
	Timeout time.Duration

	// Limiter, when set, paces producer launches across the run.
	Limiter *rate.Limiter

	// OnStart, when set, is invoked as each host query begins. It is an
	// observability hook only and has no effect on results.
	OnStart func(host string)
}

// Run queries every host and returns exactly one Result per input host,
// in input order. It returns only once every host has reached success or
// failure. Each worker writes its own pre-allocated result slot, so no
// shared mutable state crosses worker boundaries.
func (e *Executor) Run(ctx context.Context, hosts []string, p producer.Producer) []Result {
	start := time.Now()
	defer func() {
		runDuration.Observe(time.Since(start).Seconds())
	}()

	limit := e.Concurrency
	if limit < 1 {
		limit = 1
	}

	slog.Debug("starting host queries", "hosts", len(hosts), "concurrency", limit)

	results := make([]Result, len(hosts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, host := range hosts {
		g.Go(func() error {
			results[i] = e.query(gctx, host, p)
			return nil
		})
	}
	// Workers never return errors; Wait is only the completion barrier.
	_ = g.Wait()

	return results
}

func (e *Executor) query(ctx context.Context, host string, p producer.Producer) Result {
	if e.Limiter != nil {
		if err := e.Limiter.Wait(ctx); err != nil {
			hostQueryTotal.WithLabelValues(statusError).Inc()
			return Result{
				Host: host,
				Err:  cerrors.Wrap(cerrors.ErrCodeHostUnreachable, "query aborted before start", err),
			}
		}
	}

	if e.OnStart != nil {
		e.OnStart(host)
	}

	qctx := ctx
	cancel := context.CancelFunc(func() {})
	if e.Timeout > 0 {
		qctx, cancel = context.WithTimeout(ctx, e.Timeout)
	}
	defer cancel()

	queryStart := time.Now()
	records, err := p.Produce(qctx, host)
	hostQueryDuration.Observe(time.Since(queryStart).Seconds())

	if err != nil {
		code := cerrors.ErrCodeProducerFailed
		if errors.Is(err, context.DeadlineExceeded) {
			code = cerrors.ErrCodeTimeout
		}
		slog.Error("host query failed", "host", host, "error", err)
		hostQueryTotal.WithLabelValues(statusError).Inc()
		return Result{
			Host: host,
			Err:  cerrors.WrapWithContext(code, "host query failed", err, map[string]any{"host": host}),
		}
	}

	slog.Debug("host query complete", "host", host, "records", len(records))
	hostQueryTotal.WithLabelValues(statusSuccess).Inc()
	return Result{Host: host, Records: records}
}

// Flatten converts results into the ordered sequence of host-tagged
// records consumed by the normalizer and the raw-record exporters.
// Failed hosts contribute nothing.
func Flatten(results []Result) []record.Sourced {
	out := make([]record.Sourced, 0, len(results))
	for _, res := range results {
		for _, r := range res.Records {
			out = append(out, record.Sourced{Host: res.Host, Record: r})
		}
	}
	return out
}
