// Copyright (C) 2023-2026, Sammy Sousa Software, LLC. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sammysousa/dartboard/utils/metric"
	"github.com/sammysousa/dartboard/utils/wrappers"
)

type metrics struct {
	sample prometheus.Histogram
	draws  prometheus.Counter
}

func (m *metrics) Initialize(
	namespace string,
	registerer prometheus.Registerer,
) error {
	m.sample = metric.NewNanosecondsLatencyMetric(namespace, "sample")
	m.draws = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "draws",
		Help:      "# of draws performed",
	})

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.sample),
		registerer.Register(m.draws),
	)
	return errs.Err
}
