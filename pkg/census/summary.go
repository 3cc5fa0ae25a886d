package census

import (
	"github.com/NVIDIA/census/pkg/header"
)

// SummaryAPIVersion is the schema version stamped on run summaries.
const SummaryAPIVersion = "census.nvidia.com/v1"

// HostStatus is one host's outcome in a run summary.
type HostStatus struct {
	Host  string `json:"host" yaml:"host"`
	OK    bool   `json:"ok" yaml:"ok"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary is the serializable digest of a run, suitable for the JSON,
// YAML, and table summary writers.
type Summary struct {
	header.Header `json:",inline" yaml:",inline"`

	RunID     string       `json:"run-id" yaml:"run-id"`
	Hosts     int          `json:"hosts" yaml:"hosts"`
	Succeeded int          `json:"succeeded" yaml:"succeeded"`
	Failed    int          `json:"failed" yaml:"failed"`
	Records   int          `json:"records" yaml:"records"`
	Statuses  []HostStatus `json:"statuses" yaml:"statuses"`
	Artifacts []string     `json:"artifacts,omitempty" yaml:"artifacts,omitempty"`
}

// Summarize builds the digest of the run result.
func (r *RunResult) Summarize() Summary {
	s := Summary{
		RunID:     r.ID,
		Hosts:     len(r.Results),
		Artifacts: r.Artifacts,
	}
	s.Init(header.KindRunSummary, SummaryAPIVersion, "")
	for _, res := range r.Results {
		status := HostStatus{Host: res.Host, OK: !res.Failed()}
		if res.Failed() {
			s.Failed++
			status.Error = res.Err.Error()
		} else {
			s.Succeeded++
			s.Records += len(res.Records)
		}
		s.Statuses = append(s.Statuses, status)
	}
	return s
}
