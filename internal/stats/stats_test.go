// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmp/jcmp/internal/differ"
	"github.com/jcmp/jcmp/internal/jsonval"
)

func TestSummarize_CountsByKind(t *testing.T) {
	a, ok, err := jsonval.Decode(`{"keep": 1, "change": 2, "gone": 3}`)
	require.NoError(t, err)
	require.True(t, ok)
	b, ok, err := jsonval.Decode(`{"keep": 1, "change": 20, "new": 4}`)
	require.NoError(t, err)
	require.True(t, ok)

	s := Summarize(differ.Compare(a, b))
	assert.Equal(t, 1, s.Added)
	assert.Equal(t, 1, s.Removed)
	assert.Equal(t, 1, s.Modified)
	assert.Equal(t, 1, s.Equal)
	assert.Equal(t, 3, s.Changed())
	assert.Equal(t, 4, s.Total())
	assert.InDelta(t, 0.75, s.PctChanged(), 0.0001)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Total())
	assert.Equal(t, 0.0, s.PctChanged())
}

func TestFooter(t *testing.T) {
	s := Summary{Added: 1, Removed: 0, Modified: 2, Equal: 1, OldSize: 120, NewSize: 140}
	footer := s.Footer()
	assert.Contains(t, footer, "1 added")
	assert.Contains(t, footer, "2 modified")
	assert.Contains(t, footer, "75% changed")
}
