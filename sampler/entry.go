// Copyright (C) 2023-2026, Sammy Sousa Software, LLC. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPopulation is returned when a sampler is constructed over zero
	// entries.
	ErrEmptyPopulation = errors.New("population is empty")
	// ErrDuplicateValue is returned when two entries share a value.
	ErrDuplicateValue = errors.New("duplicate value")
	// ErrInvalidProbability is returned when an entry's probability is 1.0 or
	// more.
	ErrInvalidProbability = errors.New("invalid probability")
)

// Entry pairs a value with its relative probability of occurrence.
//
// Probabilities must be in (0, 1). They are not required to sum to 1;
// normalization is relative to the population minimum, so only the ratios
// between probabilities matter.
type Entry[T comparable] struct {
	Value       T
	Probability float64
}

// validate rejects malformed populations. All validation happens at
// construction; a sampler that was successfully constructed never fails to
// draw.
func validate[T comparable](entries []Entry[T]) error {
	if len(entries) == 0 {
		return ErrEmptyPopulation
	}

	seen := make(map[T]int, len(entries))
	for i, entry := range entries {
		if first, ok := seen[entry.Value]; ok {
			return fmt.Errorf("%w: %v in position %d duplicates position %d",
				ErrDuplicateValue,
				entry.Value,
				i,
				first,
			)
		}
		seen[entry.Value] = i
	}

	for i, entry := range entries {
		if entry.Probability >= 1 {
			return fmt.Errorf("%w: %v in position %d is 1.0 or more",
				ErrInvalidProbability,
				entry.Probability,
				i,
			)
		}
	}
	return nil
}
