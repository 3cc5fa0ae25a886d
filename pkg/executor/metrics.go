// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package executor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var (
	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "census_run_duration_seconds",
			Help:    "Time taken to query all hosts in a run",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	hostQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "census_host_query_duration_seconds",
			Help:    "Time taken to query a single host",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
	)

	hostQueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "census_host_queries_total",
			Help: "Total number of host queries",
		},
		[]string{"status"}, // success or error
	)
)
