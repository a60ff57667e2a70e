// Copyright (C) 2023-2026, Sammy Sousa Software, LLC. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"math"

	safemath "github.com/sammysousa/dartboard/utils/math"
)

var (
	_ Sampler[int] = (*twoTier[int])(nil)

	errEmptyTable    = errors.New("selection table is empty")
	errTableTooLarge = errors.New("selection table is too large")
)

// twoTier samples in O(1) by drawing a uniform index into a flat table in
// which every weight group appears floor(weight * len(values)) times, then
// drawing uniformly within the chosen group.
//
// Initialization takes O(Sum(replicas)) time and space. That total scales
// with the product of the weight ratio and the group cardinality, not with
// the population size alone: one very rare value among many near-equal
// frequent ones can produce a very large table. That is the intended
// trade-off of this method; construction cost is paid once to make every
// draw constant time.
//
// A group whose replica count floors to zero is permanently unreachable.
// This is an accepted approximation artifact of the rounding design, not an
// error; flooring such groups to one entry would silently change the
// represented distribution.
type twoTier[T comparable] struct {
	rng            *rng
	populationSize int
	groups         []weightGroup[T]
	table          [][]T
}

func newTwoTier[T comparable](entries []Entry[T], source Source) (*twoTier[T], error) {
	groups := buildWeightGroups(normalize(entries))

	tableLen := uint64(0)
	for _, group := range groups {
		// Bounding each group keeps the float product safe to truncate to an
		// integer before the total is checked.
		if group.weight*float64(len(group.values)) > math.MaxInt32 {
			return nil, errTableTooLarge
		}
		newLen, err := safemath.Add64(tableLen, replicas(group))
		if err != nil {
			return nil, errTableTooLarge
		}
		tableLen = newLen
	}
	switch {
	case tableLen > math.MaxInt32:
		return nil, errTableTooLarge
	case tableLen == 0:
		return nil, errEmptyTable
	}

	table := make([][]T, 0, tableLen)
	for _, group := range groups {
		for i := uint64(0); i < replicas(group); i++ {
			table = append(table, group.values)
		}
	}

	return &twoTier[T]{
		rng:            newRNG(source),
		populationSize: len(entries),
		groups:         groups,
		table:          table,
	}, nil
}

// replicas is the number of table entries [group] contributes. Truncation,
// not rounding: the fractional part of weight * len is dropped.
func replicas[T comparable](group weightGroup[T]) uint64 {
	return uint64(group.weight * float64(len(group.values)))
}

func (s *twoTier[T]) Sample() T {
	values := s.table[int(s.rng.Uint64Inclusive(uint64(len(s.table)-1)))]
	if len(values) == 1 {
		return values[0]
	}
	return values[int(s.rng.Uint64Inclusive(uint64(len(values)-1)))]
}

func (s *twoTier[T]) PopulationSize() int {
	return s.populationSize
}

func (s *twoTier[T]) TierOneSize() int {
	return len(s.groups)
}

func (s *twoTier[T]) TableSize() int {
	return len(s.table)
}
