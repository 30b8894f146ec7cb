// Copyright 2019-2025 The Liqo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cidrcalc

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/liqotech/cidrcalc/pkg/utils/errdefs"
)

const (
	// ResultSuccess labels the operations completed successfully.
	ResultSuccess = "success"
	// ResultInvalid labels the operations rejected because of an invalid request.
	ResultInvalid = "invalid"
	// ResultNotFound labels the operations targeting a missing resource.
	ResultNotFound = "not_found"
	// ResultError labels the operations failed for any other reason.
	ResultError = "error"
)

// Metrics groups the collectors updated by the handler.
type Metrics struct {
	// Operations counts the handled operations, by verb and result.
	Operations *prometheus.CounterVec
	// PartitionBlocks observes the number of blocks of every computed partition.
	PartitionBlocks prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg, if not nil.
// Collectors already registered by a previous handler are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cidrcalc_operations_total",
				Help: "The number of CidrCalc operations, by verb and result.",
			},
			[]string{"verb", "result"},
		),
		PartitionBlocks: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cidrcalc_partition_blocks",
				Help:    "The number of blocks of the computed partitions.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 9),
			},
		),
	}

	if reg == nil {
		return m, nil
	}

	var are prometheus.AlreadyRegisteredError
	if err := reg.Register(m.Operations); err != nil {
		if !errors.As(err, &are) {
			return nil, err
		}
		m.Operations = are.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := reg.Register(m.PartitionBlocks); err != nil {
		if !errors.As(err, &are) {
			return nil, err
		}
		m.PartitionBlocks = are.ExistingCollector.(prometheus.Histogram)
	}
	return m, nil
}

func (m *Metrics) observe(verb string, err error) {
	m.Operations.WithLabelValues(verb, result(err)).Inc()
}

func result(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errdefs.IsInvalidInput(err):
		return ResultInvalid
	case errdefs.IsNotFound(err):
		return ResultNotFound
	default:
		return ResultError
	}
}
