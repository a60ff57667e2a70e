// Copyright (C) 2023-2026, Sammy Sousa Software, LLC. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMeteredSampler(t *testing.T) {
	require := require.New(t)

	inner, err := New(testEntries(), Config{Source: NewSource(42)})
	require.NoError(err)

	registry := prometheus.NewRegistry()
	s, err := NewMetered(inner, "dartboard", registry)
	require.NoError(err)

	population := map[int]struct{}{
		1: {},
		2: {},
		7: {},
	}
	for i := 0; i < 25; i++ {
		require.Contains(population, s.Sample())
	}

	metered := s.(*meteredSampler[int])
	require.Equal(float64(25), testutil.ToFloat64(metered.draws))

	// Diagnostics pass through to the wrapped sampler.
	require.Equal(inner.PopulationSize(), s.PopulationSize())
	require.Equal(inner.TierOneSize(), s.TierOneSize())
	require.Equal(inner.TableSize(), s.TableSize())
}

func TestMeteredSamplerDuplicateRegistration(t *testing.T) {
	require := require.New(t)

	inner, err := New(testEntries(), Config{})
	require.NoError(err)

	registry := prometheus.NewRegistry()
	_, err = NewMetered(inner, "dartboard", registry)
	require.NoError(err)

	_, err = NewMetered(inner, "dartboard", registry)
	require.Error(err)
}
