// Copyright (C) 2023-2026, Sammy Sousa Software, LLC. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"
)

// SamplerBenchmark draws from [s] once per iteration.
func SamplerBenchmark(b *testing.B, s Sampler[int]) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Sample()
	}
}

func benchmarkEntries(size int) []Entry[int] {
	entries := make([]Entry[int], size)
	for i := range entries {
		entries[i] = Entry[int]{
			Value:       i,
			Probability: float64(i%9+1) / (10 * float64(size)),
		}
	}
	return entries
}

func BenchmarkTwoTierSample1000(b *testing.B) {
	s, err := New(benchmarkEntries(1000), Config{Source: NewSource(0)})
	if err != nil {
		b.Fatal(err)
	}
	SamplerBenchmark(b, s)
}

func BenchmarkSimpleSample1000(b *testing.B) {
	s, err := New(benchmarkEntries(1000), Config{
		Method: Simple,
		Source: NewSource(0),
	})
	if err != nil {
		b.Fatal(err)
	}
	SamplerBenchmark(b, s)
}

func BenchmarkTwoTierSample100000(b *testing.B) {
	s, err := New(benchmarkEntries(100000), Config{Source: NewSource(0)})
	if err != nil {
		b.Fatal(err)
	}
	SamplerBenchmark(b, s)
}

func BenchmarkSimpleSample100000(b *testing.B) {
	s, err := New(benchmarkEntries(100000), Config{
		Method: Simple,
		Source: NewSource(0),
	})
	if err != nil {
		b.Fatal(err)
	}
	SamplerBenchmark(b, s)
}
