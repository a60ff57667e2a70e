// Copyright (C) 2023-2026, Sammy Sousa Software, LLC. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, level := range []Level{Verbo, Debug, Trace, Info, Warn, Error, Fatal, Off} {
		parsed, err := ToLevel(level.String())
		require.NoError(err)
		require.Equal(level, parsed)
	}
}

func TestToLevelUnknown(t *testing.T) {
	_, err := ToLevel("loud")
	require.Error(t, err)
}
