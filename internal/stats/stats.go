// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package stats aggregates diff records into per-kind counts for footers,
// exit codes and machine output.
package stats

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/jcmp/jcmp/internal/differ"
)

// Summary holds per-kind record counts plus the byte sizes of the two input
// documents.
type Summary struct {
	Added    int `json:"added" yaml:"added"`
	Removed  int `json:"removed" yaml:"removed"`
	Modified int `json:"modified" yaml:"modified"`
	Equal    int `json:"equal" yaml:"equal"`

	OldSize int `json:"oldSize" yaml:"oldSize"`
	NewSize int `json:"newSize" yaml:"newSize"`
}

// Summarize counts records by kind. Input sizes are filled by the caller,
// which is the only place that still has the raw text.
func Summarize(records []differ.Record) Summary {
	var s Summary
	for _, r := range records {
		switch r.Kind {
		case differ.Added:
			s.Added++
		case differ.Removed:
			s.Removed++
		case differ.Modified:
			s.Modified++
		case differ.Equal:
			s.Equal++
		}
	}
	return s
}

// Changed returns the count of non-Equal records.
func (s Summary) Changed() int {
	return s.Added + s.Removed + s.Modified
}

// Total returns the count of all records.
func (s Summary) Total() int {
	return s.Changed() + s.Equal
}

// PctChanged returns the changed share of all records, 0 when there are no
// records at all.
func (s Summary) PctChanged() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.Changed()) / float64(total)
}

// Footer renders the one-line summary shown under text output.
func (s Summary) Footer() string {
	return fmt.Sprintf("%s added, %s removed, %s modified, %s equal (%.0f%% changed, %s vs %s)",
		humanize.Comma(int64(s.Added)),
		humanize.Comma(int64(s.Removed)),
		humanize.Comma(int64(s.Modified)),
		humanize.Comma(int64(s.Equal)),
		s.PctChanged()*100,
		humanize.Bytes(uint64(s.OldSize)),
		humanize.Bytes(uint64(s.NewSize)))
}
