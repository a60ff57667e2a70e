// Copyright (C) 2023-2026, Sammy Sousa Software, LLC. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSourceDeterminism(t *testing.T) {
	require := require.New(t)

	first := NewSource(42)
	second := NewSource(42)
	for i := 0; i < 1000; i++ {
		require.Equal(first.Uint64(), second.Uint64())
	}

	third := NewSource(43)
	fourth := NewSource(42)
	equal := true
	for i := 0; i < 1000; i++ {
		if third.Uint64() != fourth.Uint64() {
			equal = false
			break
		}
	}
	require.False(equal)
}

func TestUint64InclusiveBounds(t *testing.T) {
	require := require.New(t)

	r := newRNG(NewSource(1))
	for _, n := range []uint64{0, 1, 2, 3, 7, 10, 100, 1<<32 - 1} {
		for i := 0; i < 100; i++ {
			require.LessOrEqual(r.Uint64Inclusive(n), n)
		}
	}
}

func TestUint64InclusiveZeroAlwaysZero(t *testing.T) {
	require := require.New(t)

	r := newRNG(NewSource(1))
	for i := 0; i < 100; i++ {
		require.Zero(r.Uint64Inclusive(0))
	}
}

func TestFloat64Range(t *testing.T) {
	require := require.New(t)

	r := newRNG(NewSource(1))
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		require.GreaterOrEqual(v, 0.0)
		require.Less(v, 1.0)
	}
}

func TestNewRNGNilSourceOwnsItsGenerator(t *testing.T) {
	require := require.New(t)

	first := newRNG(nil)
	second := newRNG(nil)
	require.NotSame(first.rng, second.rng)
}
