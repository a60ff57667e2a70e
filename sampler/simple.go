// Copyright (C) 2023-2026, Sammy Sousa Software, LLC. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "sort"

var _ Sampler[int] = (*simple[int])(nil)

// simple draws directly against the raw probabilities through a cumulative
// array and a binary search.
//
// Initialization takes O(n) time. Sampling takes O(log(n)) time. It is the
// auditable baseline for the two-tier method, and serves small populations
// where table construction isn't worth paying for.
type simple[T comparable] struct {
	rng        *rng
	values     []T
	cumulative []float64
}

func newSimple[T comparable](entries []Entry[T], source Source) *simple[T] {
	values := make([]T, len(entries))
	cumulative := make([]float64, len(entries))
	total := float64(0)
	for i, entry := range entries {
		total += entry.Probability
		values[i] = entry.Value
		cumulative[i] = total
	}
	return &simple[T]{
		rng:        newRNG(source),
		values:     values,
		cumulative: cumulative,
	}
}

func (s *simple[T]) Sample() T {
	total := s.cumulative[len(s.cumulative)-1]
	draw := s.rng.Float64() * total
	// The draw is strictly below the final cumulative weight, so the search
	// can't run past the end of the array.
	return s.values[sort.SearchFloat64s(s.cumulative, draw)]
}

func (s *simple[T]) PopulationSize() int {
	return len(s.values)
}

func (s *simple[T]) TierOneSize() int {
	return 0
}

func (s *simple[T]) TableSize() int {
	return 0
}
