package census

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/NVIDIA/census/pkg/errors"
	"github.com/NVIDIA/census/pkg/export"
	"github.com/NVIDIA/census/pkg/header"
	"github.com/NVIDIA/census/pkg/hostlist"
	"github.com/NVIDIA/census/pkg/producer"
	"github.com/NVIDIA/census/pkg/record"
)

func fakeProducer(fail map[string]bool) producer.Func {
	return func(ctx context.Context, host string) ([]*record.Record, error) {
		if fail[host] {
			return nil, fmt.Errorf("unreachable")
		}
		return []*record.Record{
			record.New().SetString("Name", "eth0").SetBool("DHCPEnabled", true),
		}, nil
	}
}

func TestRunNoProducer(t *testing.T) {
	c := &Census{Options: Options{Hosts: []string{"a"}}}
	_, err := c.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrCodeInvalidConfiguration, cerrors.CodeOf(err))
}

func TestRunNoHostsNoLister(t *testing.T) {
	c := &Census{Producer: fakeProducer(nil)}
	_, err := c.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrCodeInvalidConfiguration, cerrors.CodeOf(err))
}

func TestRunListerFallback(t *testing.T) {
	c := &Census{
		Producer: fakeProducer(nil),
		Lister:   hostlist.Static{"a", "b"},
	}

	res, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Results, 2)
	assert.NotEmpty(t, res.ID)
}

func TestRunListerEmpty(t *testing.T) {
	c := &Census{
		Producer: fakeProducer(nil),
		Lister:   hostlist.Static{},
	}

	_, err := c.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrCodeInvalidConfiguration, cerrors.CodeOf(err))
}

func TestRunEmitFlags(t *testing.T) {
	opts := Options{Hosts: []string{"a"}}

	c := &Census{Options: opts, Producer: fakeProducer(nil)}
	res, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Nil(t, res.Records, "records should only be attached when requested")
	assert.Nil(t, res.Table, "table should only be attached when requested")

	opts.EmitRecords = true
	opts.EmitTable = true
	c = &Census{Options: opts, Producer: fakeProducer(nil)}
	res, err = c.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	require.NotNil(t, res.Table)
	assert.Len(t, res.Table.Rows, 1)
}

func TestRunFailedHostContained(t *testing.T) {
	c := &Census{
		Options: Options{
			Hosts:       []string{"a", "down", "c"},
			Concurrency: 2,
			EmitRecords: true,
			EmitTable:   true,
		},
		Producer: fakeProducer(map[string]bool{"down": true}),
	}

	res, err := c.Run(context.Background())
	require.NoError(t, err, "per-host failures must not fail the run")

	assert.Len(t, res.Results, 3)
	assert.Len(t, res.Records, 2, "failed host contributes no records")
	for _, host := range res.Table.Hosts() {
		assert.NotEqual(t, "down", host, "failed host must not appear in the table")
	}
}

func TestRunExportsArtifacts(t *testing.T) {
	base := filepath.Join(t.TempDir(), "census")
	c := &Census{
		Options: Options{
			Hosts:  []string{"a"},
			Export: export.Options{HTML: true, CSV: true, List: true, Base: base},
		},
		Producer: fakeProducer(nil),
	}

	res, err := c.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, res.ExportErr)

	require.Len(t, res.Artifacts, 3)
	for _, path := range res.Artifacts {
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr, "artifact %s should exist", path)
	}
}

func TestRunExportFailureContained(t *testing.T) {
	base := filepath.Join(t.TempDir(), "missing", "census")
	c := &Census{
		Options: Options{
			Hosts:  []string{"a"},
			Export: export.Options{CSV: true, Base: base},
		},
		Producer: fakeProducer(nil),
	}

	res, err := c.Run(context.Background())
	require.NoError(t, err, "export failures surface on the result, not the run")
	assert.Error(t, res.ExportErr)
	assert.Equal(t, cerrors.ErrCodeExportWrite, cerrors.CodeOf(res.ExportErr))
}

func TestSummarize(t *testing.T) {
	c := &Census{
		Options: Options{
			Hosts:       []string{"a", "down"},
			Concurrency: 2,
		},
		Producer: fakeProducer(map[string]bool{"down": true}),
	}

	res, err := c.Run(context.Background())
	require.NoError(t, err)

	s := res.Summarize()
	assert.Equal(t, header.KindRunSummary, s.Kind)
	assert.Equal(t, SummaryAPIVersion, s.APIVersion)
	assert.NotEmpty(t, s.Metadata["timestamp"])
	assert.Equal(t, res.ID, s.RunID)
	assert.Equal(t, 2, s.Hosts)
	assert.Equal(t, 1, s.Succeeded)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 1, s.Records)
	require.Len(t, s.Statuses, 2)
	for _, st := range s.Statuses {
		if st.Host == "down" {
			assert.False(t, st.OK)
			assert.NotEmpty(t, st.Error)
		} else {
			assert.True(t, st.OK)
			assert.Empty(t, st.Error)
		}
	}
}
