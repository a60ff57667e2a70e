// Copyright (C) 2023-2026, Sammy Sousa Software, LLC. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sampler draws values from a finite population according to
// prescribed, possibly highly skewed, relative probabilities.
//
// The default two-tier method pays a one-time table construction cost so
// that every subsequent draw is O(1), independent of population size.
package sampler

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sammysousa/dartboard/utils/logging"
)

// ErrInvalidMethod is returned when a sampler is constructed with an
// unrecognized method selector.
var ErrInvalidMethod = errors.New("invalid method")

// Method selects how a Sampler draws values.
type Method string

const (
	// TwoTier draws a weight group through a flat repetition-weighted table,
	// then a value within the group. O(1) per draw.
	TwoTier Method = "two-tier"
	// Simple draws through a cumulative weight search over the raw
	// probabilities. No table; O(log(n)) per draw.
	Simple Method = "simple"
)

// Sampler draws values from the fixed population supplied at construction,
// with each value's frequency of occurrence following its probability.
//
// The structures behind Sample are immutable after construction and may be
// shared read-only across goroutines. The generator backing the draws is
// internally synchronized, but callers wanting independent deterministic
// streams should construct one sampler per Source.
type Sampler[T comparable] interface {
	// Sample returns a value from the population. It never fails for a
	// successfully constructed sampler.
	Sample() T

	// PopulationSize returns the number of entries supplied at construction.
	PopulationSize() int
	// TierOneSize returns the number of distinct weight buckets after
	// normalization, or 0 for the simple method.
	TierOneSize() int
	// TableSize returns the length of the selection table, or 0 for the
	// simple method.
	TableSize() int
}

type Config struct {
	// Method defaults to TwoTier.
	Method Method
	// Source provides the randomness behind every draw. If nil, a fresh
	// time-seeded generator is created and owned by the sampler. Use
	// NewSource to draw reproducibly.
	Source Source
	// Log defaults to logging.NoLog.
	Log logging.Logger
}

// New returns a sampler over [entries] configured by [config].
//
// Every failure surfaces here: malformed populations and unrecognized
// methods are permanent errors for this construction attempt, reported with
// the offending position and value. A sampler that is returned without error
// always draws successfully.
func New[T comparable](entries []Entry[T], config Config) (Sampler[T], error) {
	log := config.Log
	if log == nil {
		log = logging.NoLog{}
	}
	method := config.Method
	if method == "" {
		method = TwoTier
	}

	if err := validate(entries); err != nil {
		return nil, err
	}

	switch method {
	case TwoTier:
		s, err := newTwoTier(entries, config.Source)
		if err != nil {
			return nil, err
		}
		log.Debug("constructed sampler",
			zap.String("method", string(TwoTier)),
			zap.Int("populationSize", s.PopulationSize()),
			zap.Int("tierOneSize", s.TierOneSize()),
			zap.Int("tableSize", s.TableSize()),
		)
		return s, nil
	case Simple:
		s := newSimple(entries, config.Source)
		log.Debug("constructed sampler",
			zap.String("method", string(Simple)),
			zap.Int("populationSize", s.PopulationSize()),
		)
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
}
