// Copyright (C) 2023-2026, Sammy Sousa Software, LLC. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

type Sortable[T any] interface {
	Less(T) bool
}

// Sorts the elements of [s].
func Sort[T Sortable[T]](s []T) {
	slices.SortFunc(s, T.Less)
}

// Returns true iff the elements in [s] are sorted.
func IsSorted[T Sortable[T]](s []T) bool {
	for i := 0; i < len(s)-1; i++ {
		if s[i+1].Less(s[i]) {
			return false
		}
	}
	return true
}

// Returns true iff the elements in [s] are unique and sorted.
func IsSortedAndUniqueOrdered[T constraints.Ordered](s []T) bool {
	for i := 0; i < len(s)-1; i++ {
		if s[i] >= s[i+1] {
			return false
		}
	}
	return true
}
