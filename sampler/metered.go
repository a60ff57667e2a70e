// Copyright (C) 2023-2026, Sammy Sousa Software, LLC. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Sampler[int] = (*meteredSampler[int])(nil)

// NewMetered wraps [sampler] so that every draw is counted and timed under
// [namespace].
func NewMetered[T comparable](
	sampler Sampler[T],
	namespace string,
	registerer prometheus.Registerer,
) (Sampler[T], error) {
	meter := &meteredSampler[T]{Sampler: sampler}
	return meter, meter.metrics.Initialize(namespace, registerer)
}

type meteredSampler[T comparable] struct {
	metrics
	Sampler[T]
}

func (s *meteredSampler[T]) Sample() T {
	start := time.Now()
	value := s.Sampler.Sample()
	end := time.Now()

	s.draws.Inc()
	s.sample.Observe(float64(end.Sub(start)))
	return value
}
