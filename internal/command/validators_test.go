// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputValidator_AcceptsKnownFormats(t *testing.T) {
	for _, v := range []string{"text", "json", "yaml", "unified"} {
		assert.NoError(t, OutputValidator(v), v)
	}
}

func TestOutputValidator_RejectsUnknownFormat(t *testing.T) {
	err := OutputValidator("xml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestOnlyValidator_AcceptsKindLists(t *testing.T) {
	assert.NoError(t, OnlyValidator(""))
	assert.NoError(t, OnlyValidator("added"))
	assert.NoError(t, OnlyValidator("added,removed,modified,equal"))
	assert.NoError(t, OnlyValidator("added, removed"))
}

func TestOnlyValidator_RejectsUnknownKind(t *testing.T) {
	err := OnlyValidator("added,bogus")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestFlagValidators_StopsAtFirstError(t *testing.T) {
	calls := 0
	failing := func(any) error { calls++; return assert.AnError }
	never := func(any) error { calls += 100; return nil }

	err := FlagValidators("x", failing, never)
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
