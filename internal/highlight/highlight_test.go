// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit_MiddleChange(t *testing.T) {
	oldSpans, newSpans := Split("abcXdef", "abcYdef")
	assert.Equal(t, Spans{Prefix: "abc", Middle: "X", Suffix: "def"}, oldSpans)
	assert.Equal(t, Spans{Prefix: "abc", Middle: "Y", Suffix: "def"}, newSpans)
}

func TestSplit_IdenticalStrings(t *testing.T) {
	oldSpans, newSpans := Split("hello", "hello")
	assert.Equal(t, Spans{Prefix: "hello", Middle: "", Suffix: ""}, oldSpans)
	assert.Equal(t, Spans{Prefix: "hello", Middle: "", Suffix: ""}, newSpans)
}

func TestSplit_EmptyOldString(t *testing.T) {
	oldSpans, newSpans := Split("", "abc")
	assert.Equal(t, Spans{Prefix: "", Middle: "", Suffix: ""}, oldSpans)
	assert.Equal(t, Spans{Prefix: "", Middle: "abc", Suffix: ""}, newSpans)
}

func TestSplit_BothEmpty(t *testing.T) {
	oldSpans, newSpans := Split("", "")
	assert.Equal(t, Spans{}, oldSpans)
	assert.Equal(t, Spans{}, newSpans)
}

func TestSplit_PrefixExtension(t *testing.T) {
	// The prefix claims shared characters first; the suffix must not overlap.
	oldSpans, newSpans := Split("ab", "abab")
	assert.Equal(t, Spans{Prefix: "ab", Middle: "", Suffix: ""}, oldSpans)
	assert.Equal(t, Spans{Prefix: "ab", Middle: "ab", Suffix: ""}, newSpans)
}

func TestSplit_WholeReplacement(t *testing.T) {
	oldSpans, newSpans := Split("xyz", "abc")
	assert.Equal(t, Spans{Prefix: "", Middle: "xyz", Suffix: ""}, oldSpans)
	assert.Equal(t, Spans{Prefix: "", Middle: "abc", Suffix: ""}, newSpans)
}

func TestSplit_MultiByteRunes(t *testing.T) {
	oldSpans, newSpans := Split("héllo wörld", "héllo wørld")
	assert.Equal(t, "héllo w", oldSpans.Prefix)
	assert.Equal(t, "ö", oldSpans.Middle)
	assert.Equal(t, "ø", newSpans.Middle)
	assert.Equal(t, "rld", oldSpans.Suffix)
}

func TestSplit_ReconstructionInvariant(t *testing.T) {
	pairs := [][2]string{
		{"abcXdef", "abcYdef"},
		{"", "abc"},
		{"abc", ""},
		{"same", "same"},
		{"ab", "abab"},
		{"abab", "ab"},
		{"日本語テスト", "日本語のテスト"},
		{"aXa", "aYa"},
	}
	for _, p := range pairs {
		oldSpans, newSpans := Split(p[0], p[1])
		assert.Equal(t, p[0], oldSpans.Prefix+oldSpans.Middle+oldSpans.Suffix, "old side of %q vs %q", p[0], p[1])
		assert.Equal(t, p[1], newSpans.Prefix+newSpans.Middle+newSpans.Suffix, "new side of %q vs %q", p[0], p[1])
		assert.Equal(t, oldSpans.Prefix, newSpans.Prefix)
		assert.Equal(t, oldSpans.Suffix, newSpans.Suffix)
	}
}
