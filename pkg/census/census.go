package census

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	cerrors "github.com/NVIDIA/census/pkg/errors"
	"github.com/NVIDIA/census/pkg/executor"
	"github.com/NVIDIA/census/pkg/export"
	"github.com/NVIDIA/census/pkg/hostlist"
	"github.com/NVIDIA/census/pkg/producer"
	"github.com/NVIDIA/census/pkg/record"
	"github.com/NVIDIA/census/pkg/table"
)

// Options configures a census run.
type Options struct {
	// Hosts is the explicit host list. When empty, the fallback Lister
	// supplies the hosts instead.
	Hosts []string

	// Concurrency caps parallel host queries. Default 1 (sequential).
	Concurrency int

	// Timeout bounds each individual host query. Zero disables it.
	Timeout time.Duration

	// RatePerSecond, when positive, paces host query launches.
	RatePerSecond float64

	// DefaultKind is the column kind for non-scalar first values.
	DefaultKind record.Kind

	// UnionSchema widens the table schema to all observed fields.
	UnionSchema bool

	// EmitRecords returns the raw record sequence on the run result.
	EmitRecords bool

	// EmitTable returns the normalized table on the run result.
	EmitTable bool

	// Export selects the file exports.
	Export export.Options
}

// Census coordinates one collection run: host resolution, bounded
// parallel queries, normalization, and export.
type Census struct {
	Options  Options
	Producer producer.Producer

	// Lister supplies hosts when Options.Hosts is empty.
	Lister hostlist.Lister

	// OnHostStart is an optional per-host progress hook.
	OnHostStart func(host string)
}

// RunResult is the outcome of one run. Results always carries one entry
// per queried host; Records and Table are populated only when the
// corresponding emit flag is set. ExportErr holds the joined per-format
// export failures, which do not fail the run.
type RunResult struct {
	ID        string
	Results   []executor.Result
	Records   []record.Sourced
	Table     *table.Table
	Artifacts []string
	ExportErr error
}

// Run executes the census. Configuration problems (no producer, no hosts
// and no fallback lister) fail the run before any host is queried; all
// per-host and per-record errors are contained and surfaced through the
// run result instead.
func (c *Census) Run(ctx context.Context) (*RunResult, error) {
	if c.Producer == nil {
		return nil, cerrors.New(cerrors.ErrCodeInvalidConfiguration, "no record producer configured")
	}

	hosts := c.Options.Hosts
	if len(hosts) == 0 {
		if c.Lister == nil {
			return nil, cerrors.New(cerrors.ErrCodeInvalidConfiguration,
				"no hosts supplied and no fallback lister configured")
		}
		var err error
		hosts, err = c.Lister.List(ctx)
		if err != nil {
			return nil, cerrors.Wrap(cerrors.ErrCodeInvalidConfiguration, "host enumeration failed", err)
		}
		if len(hosts) == 0 {
			return nil, cerrors.New(cerrors.ErrCodeInvalidConfiguration, "host enumeration returned no hosts")
		}
	}

	id := uuid.NewString()
	slog.Info("starting census run",
		"run", id,
		"hosts", len(hosts),
		"concurrency", c.Options.Concurrency)

	ex := &executor.Executor{
		Concurrency: c.Options.Concurrency,
		Timeout:     c.Options.Timeout,
		OnStart:     c.OnHostStart,
	}
	if c.Options.RatePerSecond > 0 {
		ex.Limiter = rate.NewLimiter(rate.Limit(c.Options.RatePerSecond), 1)
	}

	results := ex.Run(ctx, hosts, c.Producer)
	records := executor.Flatten(results)

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	runRecords.Set(float64(len(records)))
	runHostsFailed.Set(float64(failed))

	var t *table.Table
	if c.Options.EmitTable || c.Options.Export.HTML {
		t = table.Build(records, table.Options{
			DefaultKind: c.Options.DefaultKind,
			UnionSchema: c.Options.UnionSchema,
		})
	}

	res := &RunResult{ID: id, Results: results}

	if c.Options.Export.Enabled() {
		res.ExportErr = export.Run(c.Options.Export, t, records)
		res.Artifacts = c.Options.Export.Files()
	}

	if c.Options.EmitRecords {
		res.Records = records
	}
	if c.Options.EmitTable {
		res.Table = t
	}

	slog.Info("census run complete",
		"run", id,
		"records", len(records),
		"failed_hosts", failed)

	return res, nil
}
