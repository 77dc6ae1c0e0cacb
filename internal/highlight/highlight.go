// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package highlight isolates the changed middle segment of two strings by
// trimming their common prefix and suffix, for inline rendering of modified
// string values.
package highlight

// Spans is the three-part split of one side of a string pair. The invariant
// Prefix + Middle + Suffix == original holds for each side; Prefix and Suffix
// are shared between the two sides.
type Spans struct {
	Prefix string
	Middle string
	Suffix string
}

// Split computes the common leading and trailing spans of oldStr and newStr
// and returns each side's split. The suffix never overlaps the prefix, so a
// pure extension like ("ab", "abab") keeps one side's middle empty. The scan
// is by code point, so multi-byte text never splits mid-rune.
func Split(oldStr, newStr string) (Spans, Spans) {
	o := []rune(oldStr)
	n := []rune(newStr)

	minLen := len(o)
	if len(n) < minLen {
		minLen = len(n)
	}

	prefixLen := 0
	for prefixLen < minLen && o[prefixLen] == n[prefixLen] {
		prefixLen++
	}

	suffixLen := 0
	for suffixLen < minLen-prefixLen && o[len(o)-1-suffixLen] == n[len(n)-1-suffixLen] {
		suffixLen++
	}

	prefix := string(o[:prefixLen])
	suffix := string(o[len(o)-suffixLen:])

	oldSpans := Spans{
		Prefix: prefix,
		Middle: string(o[prefixLen : len(o)-suffixLen]),
		Suffix: suffix,
	}
	newSpans := Spans{
		Prefix: prefix,
		Middle: string(n[prefixLen : len(n)-suffixLen]),
		Suffix: suffix,
	}

	return oldSpans, newSpans
}
