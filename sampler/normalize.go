// Copyright (C) 2023-2026, Sammy Sousa Software, LLC. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"

	"github.com/sammysousa/dartboard/utils"
)

var _ utils.Sortable[weightedValue[int]] = weightedValue[int]{}

// weightedValue pairs a value's rounded normalized weight with the value's
// position in the original population. Breaking weight ties on position makes
// the ordering total, so constructing twice over the same input yields the
// same table.
type weightedValue[T comparable] struct {
	weight   float64
	position int
	value    T
}

func (v weightedValue[T]) Less(other weightedValue[T]) bool {
	if v.weight != other.weight {
		return v.weight < other.weight
	}
	return v.position < other.position
}

// roundingPrecision returns the power-of-ten precision kept when rounding
// normalized weights for a population of [size] entries.
//
// Larger populations keep fewer decimals: when the population is large there
// is little distinction between two nearby probabilities, and collapsing them
// into one weight bucket keeps the selection table bounded. Without rounding,
// near-continuous probability values would each demand their own table
// entries.
func roundingPrecision(size int) float64 {
	switch {
	case size < 1000:
		return 1e3
	case size < 100000:
		return 1e2
	default:
		return 1e1
	}
}

// normalize rescales every probability as a factor of the population minimum
// and rounds the result, returning the values sorted by ascending rounded
// weight.
//
// For example, probabilities of .25, .3, .2, .5 normalize against the minimum
// of .2 into weights of 1.25, 1.5, 1, and 2.5. Every weight is at least 1
// before rounding, which makes integer replication of the weights meaningful
// when the selection table is built.
func normalize[T comparable](entries []Entry[T]) []weightedValue[T] {
	minProb := entries[0].Probability
	for _, entry := range entries[1:] {
		if entry.Probability < minProb {
			minProb = entry.Probability
		}
	}
	normalizer := 1 / minProb

	precision := roundingPrecision(len(entries))
	weighted := make([]weightedValue[T], len(entries))
	for i, entry := range entries {
		weighted[i] = weightedValue[T]{
			weight:   math.Round(entry.Probability*normalizer*precision) / precision,
			position: i,
			value:    entry.Value,
		}
	}
	utils.Sort(weighted)
	return weighted
}

// weightGroup collects every value that shares one rounded normalized weight.
// The values slice is shared read-only by all selection table entries that
// reference the group.
type weightGroup[T comparable] struct {
	weight float64
	values []T
}

// buildWeightGroups collapses runs of equal weight in the sorted input into
// groups, in ascending weight order. One linear pass; the input is already
// sorted, so a run ends exactly where the weight changes.
func buildWeightGroups[T comparable](weighted []weightedValue[T]) []weightGroup[T] {
	var groups []weightGroup[T]
	for _, wv := range weighted {
		if n := len(groups); n > 0 && groups[n-1].weight == wv.weight {
			groups[n-1].values = append(groups[n-1].values, wv.value)
			continue
		}
		groups = append(groups, weightGroup[T]{
			weight: wv.weight,
			values: []T{wv.value},
		})
	}
	return groups
}
